// Package generate submits a finished draft and chosen template for
// server-side portfolio generation.
package generate

import (
	"context"
	"fmt"

	"github.com/jonathan/portfolio-generator/internal/draft"
	"github.com/jonathan/portfolio-generator/internal/template"
	"github.com/jonathan/portfolio-generator/internal/types"
)

// Service is the generation endpoint contract
type Service interface {
	GeneratePortfolio(ctx context.Context, req types.GenerateRequest) (*types.GenerateResponse, error)
}

// Result is the artifact handle produced by a successful generation. It is
// consumed exactly once by the downloader and not retained afterwards.
type Result struct {
	ArtifactID string
	Ready      bool
}

// Bundle is the handoff carried from generation into the preview/download
// context: the draft as generated, the chosen template, and the artifact
// handle. It is a value handed over, not shared mutable state.
type Bundle struct {
	Draft    types.PortfolioDraft
	Template template.Template
	Result   Result
}

// Valid reports whether the bundle can enter the download context. An invalid
// bundle sends the user back to the wizard instead of erroring.
func (b *Bundle) Valid() bool {
	return b != nil && b.Result.ArtifactID != ""
}

// NoTemplateSelectedError blocks generation before any network call is made
type NoTemplateSelectedError struct{}

func (e *NoTemplateSelectedError) Error() string {
	return "no template selected"
}

// UnknownTemplateError indicates a template id missing from the catalog
type UnknownTemplateError struct {
	ID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template: %s", e.ID)
}

// Coordinator drives the generation handshake
type Coordinator struct {
	svc Service
}

// NewCoordinator creates a coordinator backed by the given service
func NewCoordinator(svc Service) *Coordinator {
	return &Coordinator{svc: svc}
}

// Generate submits the store's current snapshot with the selected template.
// Each successful call produces a fresh server-side artifact; no idempotency
// key is sent, so retries may leave duplicates behind on the server.
func (c *Coordinator) Generate(ctx context.Context, store *draft.Store, templateID string) (*Bundle, string, error) {
	if templateID == "" {
		return nil, "", &NoTemplateSelectedError{}
	}
	tpl, ok := template.Lookup(templateID)
	if !ok {
		return nil, "", &UnknownTemplateError{ID: templateID}
	}

	snap := store.Snapshot()
	resp, err := c.svc.GeneratePortfolio(ctx, types.GenerateRequest{Data: snap, Template: tpl.ID})
	if err != nil {
		return nil, "", err
	}

	bundle := &Bundle{
		Draft:    snap,
		Template: tpl,
		Result:   Result{ArtifactID: resp.PortfolioID, Ready: resp.DownloadReady},
	}
	return bundle, resp.Message, nil
}
