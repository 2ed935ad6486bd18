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

func makeBlogPost(title string, published bool) model.BlogPost {
	return model.BlogPost{
		Title:     title,
		Content:   "# " + title + "\n\nsome markdown body",
		Excerpt:   "short excerpt",
		Author:    "Eric",
		Published: published,
		Tags:      "go,sqlite",
	}
}

func TestBlogRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, makeBlogPost("First Post", true))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "First Post", got.Title)
	assert.Equal(t, "Eric", got.Author)
	assert.True(t, got.Published)
	assert.Equal(t, "go,sqlite", got.Tags)
	assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Second)
}

func TestBlogRepo_Get_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepo(db)

	_, err := repo.Get(context.Background(), 999)
	assert.ErrorIs(t, err, driven.ErrBlogPostNotFound)
}

func TestBlogRepo_List_OnlyPublished(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepo(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, makeBlogPost("Published", true))
	require.NoError(t, err)
	_, err = repo.Create(ctx, makeBlogPost("Draft", false))
	require.NoError(t, err)

	posts, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Published", posts[0].Title)
}

func TestBlogRepo_List_NewestFirstWithPaging(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		post := makeBlogPost(title, true)
		post.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		_, err := repo.Create(ctx, post)
		require.NoError(t, err)
	}

	posts, err := repo.List(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "newest", posts[0].Title)
	assert.Equal(t, "middle", posts[1].Title)

	rest, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "oldest", rest[0].Title)
}

func TestBlogRepo_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, makeBlogPost("Original", true))
	require.NoError(t, err)

	created.Title = "Revised"
	created.Published = false

	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Revised", updated.Title)
	assert.False(t, updated.Published)
	assert.False(t, updated.UpdatedAt.Before(created.CreatedAt))
}

func TestBlogRepo_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepo(db)

	post := makeBlogPost("Ghost", true)
	post.ID = 404

	_, err := repo.Update(context.Background(), post)
	assert.ErrorIs(t, err, driven.ErrBlogPostNotFound)
}

func TestBlogRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBlogRepo(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, makeBlogPost("Doomed", true))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.Get(ctx, created.ID)
	assert.ErrorIs(t, err, driven.ErrBlogPostNotFound)

	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, driven.ErrBlogPostNotFound)
}
