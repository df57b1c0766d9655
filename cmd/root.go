package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Rana718/distria-seed/internal/config"
	"github.com/Rana718/distria-seed/internal/database"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "distria-seed",
	Short: "Load synthetic fixture data into the DistrIA logistics database",
	Long: `
distria-seed truncates the DistrIA tables and fills them with a
self-consistent synthetic dataset: one administrator, delivery drivers,
customers located in Santa Cruz de la Sierra, products with inventory,
orders with line items and delivery routes.

The connection URL is read from the environment variable named by
database.url_env (DATABASE_URL by default). It is never stored in the
config file.

Database Support:
- PostgreSQL (pgx or lib/pq)
- MySQL
- SQLite`,

	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("distria-seed version %s\n", Version)
			return
		}
		cmd.Help()
	},
}

// Execute runs the CLI and prints any error with its class prefix.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

func printError(w io.Writer, err error) {
	red := color.New(color.FgRed)
	if database.IsDatabaseError(err) {
		red.Fprintf(w, "\n❌ Database error: %v\n", err)
		return
	}
	red.Fprintf(w, "\n❌ Unexpected error: %v\n", err)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./seed.config.yaml)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	godotenv.Load(".env")
	godotenv.Load(".env.local")

	config.Configure(viper.GetViper(), cfgFile)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			color.Yellow("⚠️  Could not read config file: %v", err)
		}
	}
}
