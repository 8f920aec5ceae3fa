package config

import (
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"

	"github.com/bytom/timefmt/errors"
	"github.com/bytom/timefmt/timefmt"
	"github.com/bytom/timefmt/version"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Top level options use an anonymous struct
	BaseConfig `mapstructure:",squash"`
	// Options for the formatter
	Format *FormatConfig `mapstructure:"format" toml:"format"`
}

// Default configurable parameters.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig: DefaultBaseConfig(),
		Format:     DefaultFormatConfig(),
	}
}

// Set the RootDir for all Config structs
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	return cfg
}

// Validate checks the field constraints and warns when the config file was
// written by an incompatible version.
func (cfg *Config) Validate() error {
	if err := newValidator().Struct(cfg); err != nil {
		return errors.Sub(ErrInvalidConfig, err)
	}

	if cfg.Version == "" {
		return nil
	}
	ok, err := version.CompatibleWith(cfg.Version)
	if err != nil {
		return errors.WithDetailf(ErrInvalidConfig, "version %q: %v", cfg.Version, err)
	}
	if !ok {
		log.WithFields(log.Fields{"module": logModule, "file": cfg.Version, "binary": version.Version}).Warn("config file written by an incompatible version")
		return nil
	}

	newer, err := version.Newer(cfg.Version)
	if err != nil {
		return errors.WithDetailf(ErrInvalidConfig, "version %q: %v", cfg.Version, err)
	}
	if newer {
		log.WithFields(log.Fields{"module": logModule, "file": cfg.Version, "binary": version.Version}).Warn("config file written by a newer version")
	}
	return nil
}

// newValidator returns a validator that also understands the "dateformat"
// tag, which accepts any name ParseDateFormat does.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
		_, err := timefmt.ParseDateFormat(fl.Field().String())
		return err == nil
	})
	return v
}

const logModule = "config"

//-----------------------------------------------------------------------------
// BaseConfig
type BaseConfig struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home" toml:"-"`

	//log level to set
	LogLevel string `mapstructure:"log_level" toml:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`

	// log directory, relative to the root
	LogFile string `mapstructure:"log_file" toml:"log_file" validate:"required"`

	// write logs to rotated files instead of stderr
	LogToFile bool `mapstructure:"log_to_file" toml:"log_to_file"`

	// version of the binary that wrote the config file
	Version string `mapstructure:"version" toml:"version"`
}

// Default configurable base parameters.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		LogLevel: "info",
		LogFile:  "log",
		Version:  version.Version,
	}
}

func (b BaseConfig) LogDir() string {
	return rootify(b.LogFile, b.RootDir)
}

// FormatConfig selects how timestamps are rendered.
type FormatConfig struct {
	// Rendering engine: lestrrat | fastly | jehiah | tebeka
	Engine string `mapstructure:"engine" toml:"engine" validate:"required,oneof=lestrrat fastly jehiah tebeka"`

	// Timezone used when a command does not say: utc | local
	Timezone string `mapstructure:"timezone" toml:"timezone" validate:"oneof=utc local"`

	// Location name for the local timezone, e.g. "Europe/Berlin". Empty
	// means the host's timezone.
	Location string `mapstructure:"location" toml:"location"`

	// Date format used by the preset command when none is given
	Preset string `mapstructure:"preset" toml:"preset" validate:"required,dateformat"`

	// Number of compiled patterns kept by the lestrrat engine
	PatternCacheSize int `mapstructure:"pattern_cache_size" toml:"pattern_cache_size" validate:"min=0"`
}

func DefaultFormatConfig() *FormatConfig {
	return &FormatConfig{
		Engine:           "lestrrat",
		Timezone:         "utc",
		Preset:           "RFC3339",
		PatternCacheSize: 256,
	}
}

// UTC reports whether commands default to UTC.
func (f *FormatConfig) UTC() bool {
	return f.Timezone == "utc"
}

// DecodeHook is used when unmarshaling viper settings into a Config. It
// trims surrounding blanks from strings.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(trimSpaceHook)
}

func trimSpaceHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.String {
		return data, nil
	}
	return strings.TrimSpace(data.(string)), nil
}

// helper function to make config creation independent of root dir
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// DefaultDataDir is the default home directory
func DefaultDataDir() string {
	// Try to place the data folder in the user's home dir
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return "./.timefmt"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Timefmt")
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "Timefmt")
	default:
		return filepath.Join(home, ".timefmt")
	}
}

// ExpandHome resolves a leading "~" in dir.
func ExpandHome(dir string) (string, error) {
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", errors.Wrapf(err, "expand %q", dir)
	}
	return expanded, nil
}
