package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/inovacc/gradients/internal/application"
	"github.com/inovacc/gradients/internal/config"
	"github.com/inovacc/gradients/internal/core"
	"github.com/inovacc/gradients/internal/model"
	"github.com/inovacc/gradients/internal/params"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFormat  string
	verbose    bool
	backend    string
	dataDir    string
)

var (
	cfg     model.Config
	logger  *slog.Logger
	gallery *core.Gallery
)

var rootCmd = &cobra.Command{
	Use:   application.AppExeName,
	Short: "A gradient gallery for the terminal",
	Long: `Gradients is a command-line gradient gallery.

Browse and filter a catalog of gradient presets, mark favorites, create your
own gradients, organize them into collections and export them as PNG, SVG or
CSS. Everything is saved to a local store after every change.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeGallery()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_ = closeGallery()

		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default is config.ini in the application directory)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&logFormat, "log-format", "", "Log format: text or json")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Shorthand for --log-level debug")
	flags.StringVar(&backend, "backend", "", "Storage backend: bolt or sqlite")
	flags.StringVar(&dataDir, "data-dir", "", "Directory holding the gallery store")
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return expandPath(configPath)
	}

	return params.ConfigPath()
}

func loadConfig(cmd *cobra.Command) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}

	if verbose {
		loaded.LogLevel = "debug"
	}

	if flags.Changed("log-format") {
		loaded.LogFormat = logFormat
	}

	if flags.Changed("backend") {
		loaded.Backend = backend
	}

	if flags.Changed("data-dir") {
		dir, err := expandPath(dataDir)
		if err != nil {
			return err
		}

		loaded.DataDir = dir
	}

	if err := config.Validate(loaded); err != nil {
		return err
	}

	cfg = loaded
	logger = config.NewLogger(cmd.ErrOrStderr(), cfg)

	logger.Debug("configuration loaded", "path", path, "backend", cfg.Backend, "data_dir", cfg.DataDir)

	return nil
}

// openGallery opens the store on first use. Commands that never touch the
// gallery leave it closed.
func openGallery() (*core.Gallery, error) {
	if gallery != nil {
		return gallery, nil
	}

	g, err := core.Open(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open gallery: %w", err)
	}

	gallery = g

	return gallery, nil
}

func closeGallery() error {
	if gallery == nil {
		return nil
	}

	err := gallery.Close()
	gallery = nil

	return err
}
