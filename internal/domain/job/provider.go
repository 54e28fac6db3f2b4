package job

import (
	"context"

	"github.com/careersg/mycf-widgets/internal/domain"
)

// Provider represents an external job data source
type Provider interface {
	// e.g. "mycareersfuture"
	Name() string

	// Search returns normalized jobs plus the upstream-reported total for
	// a single query. Implementations issue exactly one upstream request.
	Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error)
}
