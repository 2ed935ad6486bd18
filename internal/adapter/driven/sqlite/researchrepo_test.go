package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
	"github.com/ericfisherdev/portfolio-api/internal/domain/port/driven"
)

func makeResearchProject(title string, position int) model.ResearchProject {
	return model.ResearchProject{
		Title:        title,
		Description:  "a research project",
		ProjectURL:   "https://github.com/octocat/" + title,
		Technologies: "go,sqlite",
		Status:       "Active",
		StartDate:    "2025-09",
		Position:     position,
	}
}

func TestResearchRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResearchRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, makeResearchProject("spectral", 1))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "spectral", got.Title)
	assert.Equal(t, "Active", got.Status)
	assert.Nil(t, got.Stars)
	assert.Nil(t, got.LastPushedAt)
}

func TestResearchRepo_Create_DefaultStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResearchRepo(db)
	ctx := context.Background()

	project := makeResearchProject("spectral", 1)
	project.Status = ""

	created, err := repo.Create(ctx, project)
	require.NoError(t, err)
	assert.Equal(t, "Completed", created.Status)
}

func TestResearchRepo_List_ByPosition(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResearchRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, makeResearchProject("second", 2))
	require.NoError(t, err)
	_, err = repo.Create(ctx, makeResearchProject("first", 1))
	require.NoError(t, err)

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "first", projects[0].Title)
	assert.Equal(t, "second", projects[1].Title)
}

func TestResearchRepo_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResearchRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, makeResearchProject("spectral", 1))
	require.NoError(t, err)

	created.Description = "revised description"
	created.Status = "Completed"

	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "revised description", updated.Description)
	assert.Equal(t, "Completed", updated.Status)
}

func TestResearchRepo_Update_PreservesMetadata(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResearchRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, makeResearchProject("spectral", 1))
	require.NoError(t, err)

	pushed := time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateMetadata(ctx, created.ID, model.RepoMetadata{
		Owner: "octocat", Name: "spectral", Stars: 42, LastPushedAt: pushed,
	}))

	created.Description = "edited after sync"
	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)

	require.NotNil(t, updated.Stars)
	assert.Equal(t, 42, *updated.Stars)
	require.NotNil(t, updated.LastPushedAt)
	assert.True(t, updated.LastPushedAt.Equal(pushed))
}

func TestResearchRepo_UpdateMetadata_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResearchRepo(db)

	err := repo.UpdateMetadata(context.Background(), 999, model.RepoMetadata{Stars: 1})
	assert.ErrorIs(t, err, driven.ErrResearchProjectNotFound)
}

func TestResearchRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResearchRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, makeResearchProject("spectral", 1))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.Get(ctx, created.ID)
	assert.ErrorIs(t, err, driven.ErrResearchProjectNotFound)
}
