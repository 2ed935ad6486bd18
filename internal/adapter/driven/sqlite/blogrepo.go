package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
	"github.com/ericfisherdev/portfolio-api/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.BlogStore = (*BlogRepo)(nil)

// BlogRepo is the SQLite implementation of the BlogStore port interface.
type BlogRepo struct {
	db *DB
}

// NewBlogRepo creates a new BlogRepo backed by the given DB.
func NewBlogRepo(db *DB) *BlogRepo {
	return &BlogRepo{db: db}
}

// Create inserts a new blog post and returns it with the assigned id.
// Zero timestamps are defaulted to now.
func (r *BlogRepo) Create(ctx context.Context, post model.BlogPost) (model.BlogPost, error) {
	const query = `INSERT INTO blog_posts (title, content, excerpt, author, created_at, updated_at, published, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	if post.UpdatedAt.IsZero() {
		post.UpdatedAt = post.CreatedAt
	}

	result, err := r.db.Writer.ExecContext(ctx, query,
		post.Title, post.Content, post.Excerpt, post.Author,
		formatTime(post.CreatedAt), formatTime(post.UpdatedAt), post.Published, post.Tags)
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("create blog post: %w", err)
	}

	post.ID, err = result.LastInsertId()
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("blog post insert id: %w", err)
	}

	return post, nil
}

// Get retrieves a blog post by id, published or not.
func (r *BlogRepo) Get(ctx context.Context, id int64) (*model.BlogPost, error) {
	const query = `SELECT id, title, content, excerpt, author, created_at, updated_at, published, tags
		FROM blog_posts WHERE id = ?`

	post, err := scanBlogPost(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get blog post %d: %w", id, driven.ErrBlogPostNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get blog post %d: %w", id, err)
	}

	return post, nil
}

// List returns published blog posts, newest first. A non-positive limit
// defaults to 10.
func (r *BlogRepo) List(ctx context.Context, skip, limit int) ([]model.BlogPost, error) {
	const query = `SELECT id, title, content, excerpt, author, created_at, updated_at, published, tags
		FROM blog_posts WHERE published = 1 ORDER BY created_at DESC LIMIT ? OFFSET ?`

	if limit <= 0 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}

	rows, err := r.db.Reader.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var posts []model.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		posts = append(posts, *post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blog posts: %w", err)
	}

	return posts, nil
}

// Update replaces the mutable fields of a blog post and bumps updated_at.
func (r *BlogRepo) Update(ctx context.Context, post model.BlogPost) (model.BlogPost, error) {
	const query = `UPDATE blog_posts
		SET title = ?, content = ?, excerpt = ?, author = ?, updated_at = ?, published = ?, tags = ?
		WHERE id = ?`

	post.UpdatedAt = time.Now().UTC()

	result, err := r.db.Writer.ExecContext(ctx, query,
		post.Title, post.Content, post.Excerpt, post.Author,
		formatTime(post.UpdatedAt), post.Published, post.Tags, post.ID)
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("update blog post %d: %w", post.ID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return model.BlogPost{}, fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return model.BlogPost{}, fmt.Errorf("update blog post %d: %w", post.ID, driven.ErrBlogPostNotFound)
	}

	updated, err := r.Get(ctx, post.ID)
	if err != nil {
		return model.BlogPost{}, err
	}

	return *updated, nil
}

// Delete removes a blog post by id.
func (r *BlogRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM blog_posts WHERE id = ?`

	result, err := r.db.Writer.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete blog post %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete blog post %d: %w", id, driven.ErrBlogPostNotFound)
	}

	return nil
}

func scanBlogPost(s scanner) (*model.BlogPost, error) {
	var post model.BlogPost
	var createdAt, updatedAt string

	err := s.Scan(&post.ID, &post.Title, &post.Content, &post.Excerpt, &post.Author,
		&createdAt, &updatedAt, &post.Published, &post.Tags)
	if err != nil {
		return nil, err
	}

	post.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	post.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return &post, nil
}
