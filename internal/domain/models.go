package domain

// Job is the canonical job posting entity. Optional fields stay nil when the
// upstream record omits them; fallback labels belong to the presentation
// layer, not here.
type Job struct {
	ID              string
	Title           string
	Company         *string
	URL             *string
	Salary          *string
	Location        *string
	Region          *string
	Categories      []string
	EmploymentTypes []string
	Skills          []string
	// Upstream-supplied timestamps, passed through without reformatting
	UpdatedAt *string
	PostedAt  *string
	Score     *float64
	Lat       *float64
	Lng       *float64
}

// SearchQuery describes one caller search request
type SearchQuery struct {
	Term  string
	Limit int // 0 means the service default
	Page  int // zero-based
	// Filters the upstream query shape does not support; carried so the
	// contract can grow without breaking callers
	Location       string
	EmploymentType string
}

// SearchResult wraps job search output. Total is the upstream-reported match
// count and may exceed len(Jobs).
type SearchResult struct {
	SearchTerm string
	Total      int
	Jobs       []Job
}
