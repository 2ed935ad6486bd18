package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
)

// ErrResearchProjectNotFound indicates the requested research project does not exist.
var ErrResearchProjectNotFound = errors.New("research project not found")

// ResearchStore defines the driven port for research project persistence.
// List returns projects ordered by position. UpdateMetadata only touches the
// GitHub enrichment columns so the sync loop cannot clobber manual edits.
type ResearchStore interface {
	Create(ctx context.Context, project model.ResearchProject) (model.ResearchProject, error)
	Get(ctx context.Context, id int64) (*model.ResearchProject, error)
	List(ctx context.Context) ([]model.ResearchProject, error)
	Update(ctx context.Context, project model.ResearchProject) (model.ResearchProject, error)
	UpdateMetadata(ctx context.Context, id int64, meta model.RepoMetadata) error
	Delete(ctx context.Context, id int64) error
}
