// Package rendering turns a portfolio document into a deployable static site.
package rendering

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/jonathan/portfolio-generator/internal/types"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// Style holds the per-template presentation knobs. All three templates share
// one layout and differ only in these values.
type Style struct {
	FontFamily         template.CSS
	SkillTagBackground template.CSS
}

var styles = map[string]Style{
	"minimal-professional": {
		FontFamily:         `-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif`,
		SkillTagBackground: `#000`,
	},
	"creative-bold": {
		FontFamily:         `-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif`,
		SkillTagBackground: `linear-gradient(135deg, #667eea 0%, #764ba2 100%)`,
	},
	"tech-modern": {
		FontFamily:         `"SF Mono", "Monaco", "Inconsolata", "Roboto Mono", monospace`,
		SkillTagBackground: `#000`,
	},
}

// templateData is the document handed to the HTML template
type templateData struct {
	types.PortfolioDraft
	Style         Style
	CopyrightYear int
}

var portfolioTmpl = template.Must(
	template.ParseFS(templateFiles, "templates/portfolio.html.tmpl"),
)

// StyleFor returns the presentation style for a template ID, defaulting to
// minimal-professional for unknown IDs.
func StyleFor(templateID string) Style {
	if style, ok := styles[templateID]; ok {
		return style
	}
	return styles["minimal-professional"]
}

// RenderHTML renders the portfolio as a single self-contained HTML page
func RenderHTML(draft *types.PortfolioDraft, templateID string) (string, error) {
	data := templateData{
		PortfolioDraft: *draft,
		Style:          StyleFor(templateID),
		CopyrightYear:  time.Now().Year(),
	}

	var result strings.Builder
	if err := portfolioTmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute portfolio template",
			Cause:   err,
		}
	}

	return result.String(), nil
}
