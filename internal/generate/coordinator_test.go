package generate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-generator/internal/draft"
	"github.com/jonathan/portfolio-generator/internal/types"
)

type fakeService struct {
	resp  *types.GenerateResponse
	err   error
	calls int
	got   types.GenerateRequest
}

func (f *fakeService) GeneratePortfolio(_ context.Context, req types.GenerateRequest) (*types.GenerateResponse, error) {
	f.calls++
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestGenerate_NoTemplateSelected(t *testing.T) {
	svc := &fakeService{}
	c := NewCoordinator(svc)

	bundle, _, err := c.Generate(context.Background(), draft.NewStore(), "")

	var gateErr *NoTemplateSelectedError
	require.ErrorAs(t, err, &gateErr)
	assert.Nil(t, bundle)
	assert.Zero(t, svc.calls, "no network call may be made before the gate")
}

func TestGenerate_UnknownTemplate(t *testing.T) {
	svc := &fakeService{}

	bundle, _, err := NewCoordinator(svc).Generate(context.Background(), draft.NewStore(), "nonexistent")

	var unknownErr *UnknownTemplateError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "nonexistent", unknownErr.ID)
	assert.Nil(t, bundle)
	assert.Zero(t, svc.calls)
}

func TestGenerate_Success(t *testing.T) {
	svc := &fakeService{resp: &types.GenerateResponse{
		Success:       true,
		PortfolioID:   "pf_123",
		DownloadReady: true,
		Message:       "Portfolio generated successfully",
	}}

	s := draft.NewStore()
	require.NoError(t, s.UpdateScalar("name", "Ava Lin"))

	bundle, message, err := NewCoordinator(svc).Generate(context.Background(), s, "minimal-professional")
	require.NoError(t, err)

	assert.Equal(t, "Portfolio generated successfully", message)
	require.True(t, bundle.Valid())
	assert.Equal(t, "pf_123", bundle.Result.ArtifactID)
	assert.True(t, bundle.Result.Ready)
	assert.Equal(t, "minimal-professional", bundle.Template.ID)
	assert.Equal(t, "Ava Lin", bundle.Draft.Name)

	// The request carried the snapshot at call time.
	assert.Equal(t, "Ava Lin", svc.got.Data.Name)
	assert.Equal(t, "minimal-professional", svc.got.Template)
}

func TestGenerate_BundleIsSnapshotNotLiveDraft(t *testing.T) {
	svc := &fakeService{resp: &types.GenerateResponse{Success: true, PortfolioID: "pf_1"}}
	s := draft.NewStore()
	require.NoError(t, s.UpdateScalar("name", "Before"))

	bundle, _, err := NewCoordinator(svc).Generate(context.Background(), s, "tech-modern")
	require.NoError(t, err)

	require.NoError(t, s.UpdateScalar("name", "After"))
	assert.Equal(t, "Before", bundle.Draft.Name)
}

func TestGenerate_FailureProducesNoBundle(t *testing.T) {
	svc := &fakeService{err: errors.New("service unavailable")}

	bundle, _, err := NewCoordinator(svc).Generate(context.Background(), draft.NewStore(), "creative-bold")
	require.Error(t, err)
	assert.Nil(t, bundle)
	assert.False(t, bundle.Valid())
}

func TestGenerate_RetryIsIndependent(t *testing.T) {
	svc := &fakeService{err: errors.New("down")}
	c := NewCoordinator(svc)
	s := draft.NewStore()

	_, _, err := c.Generate(context.Background(), s, "tech-modern")
	require.Error(t, err)

	svc.err = nil
	svc.resp = &types.GenerateResponse{Success: true, PortfolioID: "pf_2"}

	bundle, _, err := c.Generate(context.Background(), s, "tech-modern")
	require.NoError(t, err)
	assert.Equal(t, 2, svc.calls)
	assert.Equal(t, "pf_2", bundle.Result.ArtifactID)
}

func TestBundle_Valid(t *testing.T) {
	var nilBundle *Bundle
	assert.False(t, nilBundle.Valid())
	assert.False(t, (&Bundle{}).Valid())
	assert.True(t, (&Bundle{Result: Result{ArtifactID: "pf_9"}}).Valid())
}
