package commands

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/bytom/timefmt/config"
)

var initFilesCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file to the home directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(cfg.EnsureRoot(config.RootDir))
		log.WithFields(log.Fields{"module": logModule, "config": filepath.Join(config.RootDir, cfg.FileName)}).Info("Initialized timefmt")
	},
}
