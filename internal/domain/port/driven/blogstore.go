// Package driven defines the driven ports (persistence and outbound clients)
// of the portfolio API. Adapters implement these interfaces; the application
// layer depends only on them.
package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
)

// ErrBlogPostNotFound indicates the requested blog post does not exist.
var ErrBlogPostNotFound = errors.New("blog post not found")

// BlogStore defines the driven port for blog post persistence.
// Get, Update, and Delete return ErrBlogPostNotFound when no post has the
// given id. List returns only published posts, newest first.
type BlogStore interface {
	Create(ctx context.Context, post model.BlogPost) (model.BlogPost, error)
	Get(ctx context.Context, id int64) (*model.BlogPost, error)
	List(ctx context.Context, skip, limit int) ([]model.BlogPost, error)
	Update(ctx context.Context, post model.BlogPost) (model.BlogPost, error)
	Delete(ctx context.Context, id int64) error
}
