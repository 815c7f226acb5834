package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-generator/internal/apiclient"
	"github.com/jonathan/portfolio-generator/internal/download"
	"github.com/jonathan/portfolio-generator/internal/draft"
	"github.com/jonathan/portfolio-generator/internal/enhance"
	"github.com/jonathan/portfolio-generator/internal/generate"
	"github.com/jonathan/portfolio-generator/internal/schemas"
	"github.com/jonathan/portfolio-generator/internal/types"
)

var (
	generateDraftPath string
	generateTemplate  string
	generateBaseURL   string
	generateOutputDir string
	generateEnhance   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a portfolio from a draft file",
	Long: `Validate a portfolio draft JSON file, optionally enhance its content with AI,
then generate the portfolio and download the deployable archive in one shot.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateDraftPath, "draft", "d", "", "Path to the portfolio draft JSON file (required)")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "Template ID")
	generateCmd.Flags().StringVar(&generateBaseURL, "base-url", "http://localhost:8080", "Portfolio API base URL")
	generateCmd.Flags().StringVarP(&generateOutputDir, "output", "o", ".", "Directory to save the downloaded archive")
	generateCmd.Flags().BoolVar(&generateEnhance, "enhance", false, "Enhance content with AI before generating")
	_ = generateCmd.MarkFlagRequired("draft")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if !cmd.Flags().Changed("template") && generateTemplate == "" {
		generateTemplate = fileConfig.Template
	}
	if !cmd.Flags().Changed("base-url") && fileConfig.BaseURL != "" {
		generateBaseURL = fileConfig.BaseURL
	}
	if !cmd.Flags().Changed("output") && fileConfig.OutputDir != "" {
		generateOutputDir = fileConfig.OutputDir
	}

	data, err := os.ReadFile(generateDraftPath)
	if err != nil {
		return fmt.Errorf("failed to read draft file: %w", err)
	}
	if err := schemas.ValidatePortfolioDraft(data); err != nil {
		return fmt.Errorf("invalid draft: %w", err)
	}

	var doc types.PortfolioDraft
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse draft file: %w", err)
	}

	client := apiclient.New(generateBaseURL)
	store := draft.NewStoreFrom(doc)

	if generateEnhance {
		fmt.Println("Enhancing content...")
		suggestions, err := enhance.NewCoordinator(client).Enhance(ctx, store)
		if err != nil {
			return fmt.Errorf("enhancement failed: %w", err)
		}
		for _, suggestion := range suggestions {
			fmt.Printf("  Suggestion: %s\n", suggestion)
		}
	}

	bundle, message, err := generate.NewCoordinator(client).Generate(ctx, store, generateTemplate)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	fmt.Println(message)

	path, err := download.NewDownloader(client, generateOutputDir).Download(ctx, bundle.Result.ArtifactID, bundle.Draft.Name)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}

	fmt.Printf("Saved %s\n", path)
	return nil
}
