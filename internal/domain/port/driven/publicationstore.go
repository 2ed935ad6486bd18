package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
)

// ErrPublicationNotFound indicates the requested publication does not exist.
var ErrPublicationNotFound = errors.New("publication not found")

// PublicationStore defines the driven port for publication persistence.
// List returns publications ordered by year descending, then position.
type PublicationStore interface {
	Create(ctx context.Context, pub model.Publication) (model.Publication, error)
	Get(ctx context.Context, id int64) (*model.Publication, error)
	List(ctx context.Context) ([]model.Publication, error)
	Update(ctx context.Context, pub model.Publication) (model.Publication, error)
	Delete(ctx context.Context, id int64) error
}
