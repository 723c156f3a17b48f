// Package cmd is for command line interactions with the clonelab application
package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "clonelab",
	Short: `Simulate restriction-enzyme cloning: find cut sites, digest sequences
into fragments, and predict the products of ligation reactions`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initSettings)
}

// initSettings reads the optional settings.yaml, from the working directory
// or ~/.clonelab. Defaults apply without one.
func initSettings() {
	viper.SetConfigName("settings")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".clonelab"))
	}
	viper.ReadInConfig()
}
