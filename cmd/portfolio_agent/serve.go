package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-generator/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for content enhancement, portfolio generation and archive download.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("port") && fileConfig.Port != 0 {
		servePort = fileConfig.Port
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		databaseURL = fileConfig.DatabaseURL
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set in the environment or config file")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = fileConfig.APIKey
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY must be set in the environment or config file")
	}

	originList := os.Getenv("CORS_ORIGINS")
	if originList == "" {
		originList = fileConfig.CORSOrigins
	}
	var corsOrigins []string
	if originList != "" && originList != "*" {
		for _, origin := range strings.Split(originList, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				corsOrigins = append(corsOrigins, origin)
			}
		}
	}

	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
		APIKey:      apiKey,
		CORSOrigins: corsOrigins,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
