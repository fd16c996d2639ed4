package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"

	noClear  bool
	noVerify bool
)

var rootCmd = &cobra.Command{
	Use:   "semilla",
	Short: "Seed the bakery's remote tables from JSON data files",
	Long: `Semilla loads the bakery's JSON seed data and uploads it into the
managed database: categories and menu items from the data directory,
bread locations from a compiled-in list.

Running semilla with no arguments performs the full sequence for the
menu tables: clear existing rows, insert the seed data, and verify the
result with a per-category breakdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("semilla version %s\n", Version)
			return nil
		}
		return runMenuSeed()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./semilla.config.json)")
	rootCmd.PersistentFlags().BoolVar(&noClear, "no-clear", false, "Keep existing rows instead of clearing tables first")
	rootCmd.PersistentFlags().BoolVar(&noVerify, "no-verify", false, "Skip the verification pass after seeding")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("semilla.config")
	}

	viper.AutomaticEnv()
	viper.ReadInConfig()
}
