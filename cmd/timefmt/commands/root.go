package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bytom/timefmt/calendar"
	cfg "github.com/bytom/timefmt/config"
	"github.com/bytom/timefmt/engine"
	"github.com/bytom/timefmt/errors"
	tflog "github.com/bytom/timefmt/log"
	"github.com/bytom/timefmt/timefmt"
)

const logModule = "cmd"

const (
	// Success indicates the command completed.
	Success = iota
	// ErrLocalExe indicates the command failed to run.
	ErrLocalExe
	// ErrLocalParse indicates the command could not encode its output.
	ErrLocalParse
)

var (
	config    = cfg.DefaultConfig()
	formatter = timefmt.Default()
)

// commandError is an error used to signal different error situations in command handling.
type commandError struct {
	s         string
	userError bool
}

func (c commandError) Error() string {
	return c.s
}

func (c commandError) isUserError() bool {
	return c.userError
}

func newUserError(a ...interface{}) commandError {
	return commandError{s: fmt.Sprintln(a...), userError: true}
}

// Catch some of the obvious user errors from Cobra.
var userErrorRegexp = regexp.MustCompile("argument|flag|shorthand")

func isUserError(err error) bool {
	if cErr, ok := err.(commandError); ok && cErr.isUserError() {
		return true
	}

	return userErrorRegexp.MatchString(err.Error())
}

// RootCmd is the timefmt root command.
var RootCmd = &cobra.Command{
	Use:               "timefmt",
	Short:             "Format UNIX timestamps with strftime patterns",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

func init() {
	RootCmd.PersistentFlags().String("home", cfg.DefaultDataDir(), "Directory holding config.toml and logs")
	RootCmd.PersistentFlags().String("engine", config.Format.Engine, "Rendering engine ("+strings.Join(engine.Names(), ", ")+")")
	RootCmd.PersistentFlags().String("timezone", config.Format.Timezone, "Timezone of the output (utc or local)")
	RootCmd.PersistentFlags().String("location", config.Format.Location, "Local timezone name, e.g. Europe/Berlin")
	RootCmd.PersistentFlags().String("log_level", config.LogLevel, "Select log level(trace, debug, info, warn, error or fatal)")
	RootCmd.PersistentFlags().Bool("log_to_file", config.LogToFile, "Write logs to rotated files under <home>/<log_file>")

	bindFlags(RootCmd.PersistentFlags(), map[string]string{
		"home":            "home",
		"format.engine":   "engine",
		"format.timezone": "timezone",
		"format.location": "location",
		"log_level":       "log_level",
		"log_to_file":     "log_to_file",
	})

	viper.SetDefault("log_file", config.LogFile)
	viper.SetDefault("format.preset", config.Format.Preset)
	viper.SetDefault("format.pattern_cache_size", config.Format.PatternCacheSize)

	viper.SetEnvPrefix("TIMEFMT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// bindFlags maps config keys to the flags that override them.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	AddCommands()

	if cmd, err := RootCmd.ExecuteC(); err != nil {
		jww.ERROR.Println(err)
		if isUserError(err) {
			cmd.Println(cmd.UsageString())
		}
		os.Exit(ErrLocalExe)
	}
}

// AddCommands adds child commands to the root command.
func AddCommands() {
	if RootCmd.HasSubCommands() {
		return
	}

	RootCmd.AddCommand(formatCmd)
	RootCmd.AddCommand(presetCmd)
	RootCmd.AddCommand(iso8601Cmd)
	RootCmd.AddCommand(componentsCmd)
	RootCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(nowCmd)
	RootCmd.AddCommand(enginesCmd)
	RootCmd.AddCommand(initFilesCmd)
	RootCmd.AddCommand(versionCmd)
}

func initConfig(cmd *cobra.Command, args []string) error {
	home, err := cfg.ExpandHome(viper.GetString("home"))
	if err != nil {
		return err
	}

	configFile := filepath.Join(home, cfg.FileName)
	if _, err := os.Stat(configFile); err == nil {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read %s", configFile)
		}
	}

	if err := viper.Unmarshal(config, viper.DecodeHook(cfg.DecodeHook())); err != nil {
		return err
	}
	config.SetRoot(home)
	if err := config.Validate(); err != nil {
		return err
	}

	if os.Getenv("TIMEFMT_DEBUG") == "" {
		if err := tflog.SetLevel(config.LogLevel); err != nil {
			return err
		}
	}
	if config.LogToFile {
		if err := tflog.InitLogFile(config); err != nil {
			return err
		}
	}

	f, err := newFormatter(config.Format)
	if err != nil {
		return err
	}
	formatter = f

	log.WithFields(log.Fields{
		"module":   logModule,
		"home":     config.RootDir,
		"engine":   f.Engine(),
		"timezone": config.Format.Timezone,
	}).Debug("loaded config")
	return nil
}

func newFormatter(fc *cfg.FormatConfig) (*timefmt.Formatter, error) {
	opts := []timefmt.Option{timefmt.WithLogger(log.WithField("module", "timefmt"))}
	if fc.Location != "" {
		loc, err := time.LoadLocation(fc.Location)
		if err != nil {
			return nil, errors.WithDetailf(cfg.ErrInvalidConfig, "location %q: %v", fc.Location, err)
		}
		opts = append(opts, timefmt.WithLocation(loc))
	}

	if strings.EqualFold(fc.Engine, engine.DefaultName) {
		opts = append(opts, timefmt.WithEngine(engine.NewLestrrat(fc.PatternCacheSize)))
		return timefmt.New(opts...), nil
	}
	return timefmt.NewWithEngine(fc.Engine, opts...)
}

func mode() calendar.Mode {
	if config.Format.UTC() {
		return calendar.UTC
	}
	return calendar.Local
}

// EngineName returns the name of the engine the commands render with.
func EngineName() string {
	return formatter.Engine()
}
