package cmd

import (
	"fmt"

	"github.com/Rana718/distria-seed/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `
Print the configuration after defaults, the config file and SEED_*
environment overrides are applied. Fixture passwords are masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		out, err := yaml.Marshal(cfg.Masked())
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}

		w := cmd.OutOrStdout()
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(w, "# %s\n", used)
		}
		fmt.Fprint(w, string(out))

		if err := cfg.Validate(); err != nil {
			color.Yellow("⚠️  %v", err)
		}
		if _, err := cfg.DatabaseURL(); err != nil {
			color.Yellow("⚠️  %v", err)
		} else {
			color.Green("✅ %s is set", cfg.Database.URLEnv)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
