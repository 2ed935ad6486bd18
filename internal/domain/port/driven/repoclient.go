package driven

import (
	"context"

	"github.com/ericfisherdev/portfolio-api/internal/domain/model"
)

// RepoMetadataClient defines the driven port for fetching public repository
// metadata used to enrich research project cards.
type RepoMetadataClient interface {
	FetchRepo(ctx context.Context, owner, repo string) (*model.RepoMetadata, error)
}
