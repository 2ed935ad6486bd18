package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
)

type fakeResearchStore struct {
	projects []model.ResearchProject
	metadata map[int64]model.RepoMetadata
	listErr  error
}

func (f *fakeResearchStore) Create(_ context.Context, p model.ResearchProject) (model.ResearchProject, error) {
	return p, nil
}

func (f *fakeResearchStore) Get(context.Context, int64) (*model.ResearchProject, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeResearchStore) List(context.Context) ([]model.ResearchProject, error) {
	return f.projects, f.listErr
}

func (f *fakeResearchStore) Update(_ context.Context, p model.ResearchProject) (model.ResearchProject, error) {
	return p, nil
}

func (f *fakeResearchStore) UpdateMetadata(_ context.Context, id int64, meta model.RepoMetadata) error {
	if f.metadata == nil {
		f.metadata = make(map[int64]model.RepoMetadata)
	}
	f.metadata[id] = meta
	return nil
}

func (f *fakeResearchStore) Delete(context.Context, int64) error { return nil }

type fakeRepoClient struct {
	repos map[string]model.RepoMetadata
}

func (f *fakeRepoClient) FetchRepo(_ context.Context, owner, name string) (*model.RepoMetadata, error) {
	meta, ok := f.repos[owner+"/"+name]
	if !ok {
		return nil, errors.New("repo not found")
	}
	return &meta, nil
}

func TestProjectSyncService_Refresh(t *testing.T) {
	pushed := time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)
	store := &fakeResearchStore{
		projects: []model.ResearchProject{
			{ID: 1, Title: "spectral", ProjectURL: "https://github.com/octocat/spectral"},
			{ID: 2, Title: "offsite", ProjectURL: "https://example.com/offsite"},
		},
	}
	client := &fakeRepoClient{repos: map[string]model.RepoMetadata{
		"octocat/spectral": {Owner: "octocat", Name: "spectral", Stars: 42, LastPushedAt: pushed},
	}}

	svc := NewProjectSyncService(client, store, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Start(ctx)

	require.NoError(t, svc.Refresh(ctx))

	meta, ok := store.metadata[1]
	require.True(t, ok, "github-hosted project should be enriched")
	assert.Equal(t, 42, meta.Stars)
	assert.True(t, meta.LastPushedAt.Equal(pushed))

	_, ok = store.metadata[2]
	assert.False(t, ok, "non-github project should be skipped")
}

func TestProjectSyncService_SyncAll_CountsFailures(t *testing.T) {
	store := &fakeResearchStore{
		projects: []model.ResearchProject{
			{ID: 1, ProjectURL: "https://github.com/octocat/known"},
			{ID: 2, ProjectURL: "https://github.com/octocat/missing"},
			{ID: 3, ProjectURL: "https://example.com/elsewhere"},
		},
	}
	client := &fakeRepoClient{repos: map[string]model.RepoMetadata{
		"octocat/known": {Owner: "octocat", Name: "known", Stars: 7},
	}}

	svc := NewProjectSyncService(client, store, time.Hour)

	stats, err := svc.syncAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Synced)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.Failed)
}

func TestProjectSyncService_DisabledWithoutClient(t *testing.T) {
	svc := NewProjectSyncService(nil, &fakeResearchStore{}, time.Hour)

	// Start returns immediately and Refresh is a no-op.
	svc.Start(context.Background())
	assert.NoError(t, svc.Refresh(context.Background()))
}

func TestResearchProject_GitHubRepo(t *testing.T) {
	tests := []struct {
		url       string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{"https://github.com/octocat/spectral", "octocat", "spectral", true},
		{"https://github.com/octocat/spectral.git", "octocat", "spectral", true},
		{"https://www.github.com/octocat/spectral/tree/main", "octocat", "spectral", true},
		{"https://gitlab.com/octocat/spectral", "", "", false},
		{"https://github.com/octocat", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		p := model.ResearchProject{ProjectURL: tt.url}
		owner, repo, ok := p.GitHubRepo()
		assert.Equal(t, tt.wantOK, ok, "url %q", tt.url)
		assert.Equal(t, tt.wantOwner, owner, "url %q", tt.url)
		assert.Equal(t, tt.wantRepo, repo, "url %q", tt.url)
	}
}
