/*
Copyright © 2026 Lucas Chan
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/data"
	"github.com/ChanHengLucas/PotentialPokemonBattleAI/internal/parser"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "battlesim",
	Short: "Deterministic turn-based battle simulator",
	Long: `battlesim runs seeded, fully reproducible turn-based battles between
two rosters and records every state change as a flat, replayable log.

The same seed with the same rosters always produces the same battle,
which makes large self-play batches suitable as training data.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := zerolog.ParseLevel(viper.GetString("log_level"))
		if err != nil {
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.battlesim.yaml)")
	rootCmd.PersistentFlags().StringSliceP("data_dir", "d", nil, "content directory layered over the built-in tables (repeatable)")
	rootCmd.PersistentFlags().String("log_level", "info", "log level (trace, debug, info, warn, error)")

	viper.BindPFlag("data_dirs", rootCmd.PersistentFlags().Lookup("data_dir"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log_level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".battlesim")
	}

	viper.SetEnvPrefix("BATTLESIM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadDex builds the content layer from the configured data directories.
func loadDex() (*data.Dex, error) {
	return data.LoadDirs(viper.GetStringSlice("data_dirs"))
}

// loadRoster reads a roster file. YAML files use the structured roster
// format, anything else is treated as a team export paste.
func loadRoster(path string) (*data.Roster, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return data.LoadRoster(path)
	}
	return parser.ParseFile(path)
}
