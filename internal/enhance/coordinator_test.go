package enhance

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
	resp  *types.EnhanceResponse
	err   error
	calls int
	got   types.EnhanceRequest
}

func (f *fakeService) EnhanceContent(_ context.Context, req types.EnhanceRequest) (*types.EnhanceResponse, error) {
	f.calls++
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func seededStore(t *testing.T) *draft.Store {
	t.Helper()
	s := draft.NewStore()
	require.NoError(t, s.UpdateScalar("name", "Ava Lin"))
	require.NoError(t, s.UpdateScalar("title", "Engineer"))
	require.NoError(t, s.UpdateScalar("about", "A"))
	require.NoError(t, s.UpdateField(draft.CollectionSkills, 0, "name", "Go"))
	return s
}

func TestEnhance_MergePrecedence(t *testing.T) {
	s := seededStore(t)
	better := "B"
	svc := &fakeService{resp: &types.EnhanceResponse{
		Success: true,
		Enhanced: types.EnhancedContent{
			About:  &better,
			Skills: []types.SkillEntry{{Name: "Go", Description: "Proficient in Go"}},
		},
		Suggestions: []string{"Add metrics", "Mention scale"},
	}}

	suggestions, err := NewCoordinator(svc).Enhance(context.Background(), s)
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, "B", snap.About)
	require.Len(t, snap.Skills, 1)
	assert.Equal(t, "Proficient in Go", snap.Skills[0].Description)
	assert.Equal(t, []string{"Add metrics", "Mention scale"}, suggestions)
}

func TestEnhance_AbsentFieldsLeaveDraftUntouched(t *testing.T) {
	s := seededStore(t)
	svc := &fakeService{resp: &types.EnhanceResponse{Success: true}}

	_, err := NewCoordinator(svc).Enhance(context.Background(), s)
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, "A", snap.About)
	assert.Equal(t, "Go", snap.Skills[0].Name)
}

func TestEnhance_RequestCarriesTextualContentOnly(t *testing.T) {
	s := seededStore(t)
	svc := &fakeService{resp: &types.EnhanceResponse{Success: true}}

	_, err := NewCoordinator(svc).Enhance(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, "Ava Lin", svc.got.Name)
	assert.Equal(t, "Engineer", svc.got.Title)
	assert.Equal(t, "A", svc.got.About)
	require.Len(t, svc.got.Skills, 1)
	require.Len(t, svc.got.Projects, 1)
	require.Len(t, svc.got.Experience, 1)
}

func TestEnhance_FailureLeavesDraftUnmodified(t *testing.T) {
	s := seededStore(t)
	before := s.Snapshot()
	svc := &fakeService{err: errors.New("connection refused")}

	suggestions, err := NewCoordinator(svc).Enhance(context.Background(), s)
	require.Error(t, err)
	assert.Nil(t, suggestions)
	assert.Equal(t, before, s.Snapshot())
}

func TestEnhance_RetryIssuesFreshRequest(t *testing.T) {
	s := seededStore(t)
	svc := &fakeService{err: errors.New("timeout")}
	c := NewCoordinator(svc)

	_, err := c.Enhance(context.Background(), s)
	require.Error(t, err)

	better := "B"
	svc.err = nil
	svc.resp = &types.EnhanceResponse{Success: true, Enhanced: types.EnhancedContent{About: &better}}

	_, err = c.Enhance(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 2, svc.calls)
	assert.Equal(t, "B", s.Snapshot().About)
}
