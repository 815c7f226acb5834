// Package enhance coordinates content-enhancement calls against the draft store.
package enhance

import (
	"context"

	"github.com/jonathan/portfolio-generator/internal/draft"
	"github.com/jonathan/portfolio-generator/internal/types"
)

// Service is the enhancement endpoint contract
type Service interface {
	EnhanceContent(ctx context.Context, req types.EnhanceRequest) (*types.EnhanceResponse, error)
}

// Coordinator issues enhancement requests and merges results into the store.
// It deliberately does not serialize concurrent calls: two in-flight requests
// apply in resolution order, and disabling re-entry is the caller's concern.
type Coordinator struct {
	svc Service
}

// NewCoordinator creates a coordinator backed by the given service
func NewCoordinator(svc Service) *Coordinator {
	return &Coordinator{svc: svc}
}

// Enhance sends the draft's textual content to the enhancement service and
// merges the returned fields back into the store under the replace-if-present
// policy. The returned suggestions are informational only. On any failure the
// draft is left exactly as it was and the call may be retried freely.
func (c *Coordinator) Enhance(ctx context.Context, store *draft.Store) ([]string, error) {
	req := types.EnhanceRequestFromDraft(store.Snapshot())

	resp, err := c.svc.EnhanceContent(ctx, req)
	if err != nil {
		return nil, err
	}

	store.MergeEnhanced(resp.Enhanced)
	return resp.Suggestions, nil
}
