package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/portfolio-generator/internal/rendering"
	"github.com/jonathan/portfolio-generator/internal/schemas"
	"github.com/jonathan/portfolio-generator/internal/template"
	"github.com/jonathan/portfolio-generator/internal/types"
)

var (
	previewDraftPath string
	previewOutputDir string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a draft locally with every template",
	Long: `Render a portfolio draft JSON file with each available template and write the
HTML pages to a directory, without contacting the API server. Useful for
comparing templates before generating.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewDraftPath, "draft", "d", "", "Path to the portfolio draft JSON file (required)")
	previewCmd.Flags().StringVarP(&previewOutputDir, "output", "o", "preview", "Directory to write rendered pages")
	_ = previewCmd.MarkFlagRequired("draft")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(previewDraftPath)
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

	if err := os.MkdirAll(previewOutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var g errgroup.Group
	for _, t := range template.Catalog() {
		g.Go(func() error {
			html, err := rendering.RenderHTML(&doc, t.ID)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", t.ID, err)
			}
			path := filepath.Join(previewOutputDir, t.ID+".html")
			if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Printf("Rendered %s\n", path)
			return nil
		})
	}

	return g.Wait()
}
