package job

import (
	"context"
	"fmt"
	"strings"

	"github.com/careersg/mycf-widgets/internal/domain"
)

const (
	// DefaultLimit applies when the caller does not set a page size
	DefaultLimit = 20
	// MaxLimit bounds the number of jobs returned per invocation
	MaxLimit = 50
	// MaxPage bounds how deep into the upstream result set a caller may page
	MaxPage = 50
)

type Service interface {
	Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	provider Provider
}

// WithProvider sets the job provider
func WithProvider(provider Provider) Option {
	return func(c *config) {
		c.provider = provider
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.provider == nil {
		return nil, fmt.Errorf("job.Service: provider is required")
	}

	return &service{provider: cfg.provider}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(provider Provider) (Service, error) {
	return NewService(WithProvider(provider))
}

type service struct {
	provider Provider
}

// Search validates the query and issues exactly one provider call. Zero
// matches is a success outcome; only validation and upstream faults fail.
func (s *service) Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	term := strings.TrimSpace(query.Term)
	if term == "" {
		return domain.SearchResult{}, fmt.Errorf("search term must not be empty: %w", domain.ErrInvalidInput)
	}

	if query.Limit < 0 || query.Limit > MaxLimit {
		return domain.SearchResult{}, fmt.Errorf("limit must be between 1 and %d: %w", MaxLimit, domain.ErrInvalidInput)
	}
	if query.Page < 0 || query.Page > MaxPage {
		return domain.SearchResult{}, fmt.Errorf("page must be between 0 and %d: %w", MaxPage, domain.ErrInvalidInput)
	}

	query.Term = term
	if query.Limit == 0 {
		query.Limit = DefaultLimit
	}

	result, err := s.provider.Search(ctx, query)
	if err != nil {
		return domain.SearchResult{}, err
	}

	result.SearchTerm = term
	if result.Jobs == nil {
		result.Jobs = []domain.Job{}
	}
	if result.Total < len(result.Jobs) {
		result.Total = len(result.Jobs)
	}

	return result, nil
}
