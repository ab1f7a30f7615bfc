package main

import (
	"github.com/juju/loggo/v2"
	"github.com/spf13/cobra"

	"github.com/honeybbq/serviceast/internal/config"
)

var logger = loggo.GetLogger("serviceast.cli")

var (
	configPath  string
	backendName string
	verbose     bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "serviceast",
	Short: "Build and render service definition trees",
	Long: `serviceast turns service documents (JSON or YAML) into a typed tree of
services, resources, functions and declarations, and renders that tree through
a backend.

Backends:
  - ballerina: Ballerina source
  - outline:   YAML outline of the tree`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "config file path")
	rootCmd.PersistentFlags().StringVarP(&backendName, "backend", "b", "", "backend name (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func setup(cmd *cobra.Command, _ []string) error {
	if verbose {
		if err := loggo.ConfigureLoggers("<root>=DEBUG"); err != nil {
			return err
		}
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("backend") {
		loaded.Backend = backendName
	}
	cfg = loaded
	logger.Debugf("config %s: backend=%s identifiers=%v", configPath, cfg.Backend, cfg.Merge.Identifiers)
	return nil
}
