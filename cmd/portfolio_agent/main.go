// Package main provides the entry point for the portfolio generator CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-generator/internal/config"
)

var (
	configPath string

	// fileConfig supplies defaults for flags the user did not set
	fileConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "portfolio_agent",
	Short: "Portfolio Generator CLI and API server",
	Long:  "Portfolio Generator builds deployable single-page portfolio websites from a guided draft, with AI content enhancement and selectable templates.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if configPath == "" {
			return nil
		}
		cfg, err := loadFileConfig(configPath)
		if err != nil {
			return err
		}
		fileConfig = cfg.MergeWithDefaults(config.Config{
			Port:      8080,
			BaseURL:   "http://localhost:8080",
			OutputDir: ".",
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
}

func loadFileConfig(path string) (config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
