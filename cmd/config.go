package cmd

import (
	"fmt"

	"github.com/inovacc/gradients/internal/config"
	"github.com/inovacc/gradients/internal/encoding"
	"github.com/spf13/cobra"
)

var (
	configForce bool
	configJSON  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gradients configuration",
	Long: `Commands for managing gradients configuration.

Settings are read from the config file, then a .env file in the working
directory, then GRADIENTS_* environment variables, then command-line flags.

Available Commands:
  show    Print the effective configuration
  init    Write the effective configuration to the config file
  path    Print the config file path`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configJSON {
			data, err := encoding.ToJSONIndent(cfg)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return nil
		}

		printInfoBox(cmd.OutOrStdout(), "Current Configuration", map[string]string{
			"Data directory":   cfg.DataDir,
			"Backend":          cfg.Backend,
			"Export directory": cfg.ExportDir,
			"Export size":      fmt.Sprintf("%dx%d", cfg.ExportWidth, cfg.ExportHeight),
			"Log level":        cfg.LogLevel,
			"Log format":       cfg.LogFormat,
		}, []string{"Data directory", "Backend", "Export directory", "Export size", "Log level", "Log format"})

		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		if encoding.FileExists(path) && !configForce {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}

		if err := config.Save(path, cfg); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)

		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	configShowCmd.Flags().BoolVar(&configJSON, "json", false, "Print the configuration as JSON")
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
}
