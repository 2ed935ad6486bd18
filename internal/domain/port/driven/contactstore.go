package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
)

// ErrContactMessageNotFound indicates the requested contact message does not exist.
var ErrContactMessageNotFound = errors.New("contact message not found")

// ContactStore defines the driven port for contact message persistence.
// List returns messages newest first. Get, Delete, and MarkRead return
// ErrContactMessageNotFound when no message has the given id.
type ContactStore interface {
	Create(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error)
	Get(ctx context.Context, id int64) (*model.ContactMessage, error)
	List(ctx context.Context, skip, limit int) ([]model.ContactMessage, error)
	Delete(ctx context.Context, id int64) error
	MarkRead(ctx context.Context, id int64) error
}
