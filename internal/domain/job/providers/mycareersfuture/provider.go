package mycareersfuture

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/careersg/mycf-widgets/internal/domain"
	jobdomain "github.com/careersg/mycf-widgets/internal/domain/job"
	"github.com/careersg/mycf-widgets/pkg/mycf"
)

// fallbackTitle labels the rare posting that arrives without one. Title is
// the only field the canonical Job requires.
const fallbackTitle = "Untitled role"

// searchClient describes the subset of the MyCareersFuture client used by the provider.
type searchClient interface {
	Search(ctx context.Context, term string, params mycf.SearchParams) (mycf.SearchResult, error)
}

// Provider implements job.Provider using the MyCareersFuture API
type Provider struct {
	client searchClient
}

// NewProvider builds a MyCareersFuture provider
func NewProvider(client searchClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("mycareersfuture provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "mycareersfuture"
}

// Search issues one upstream request and normalizes every returned record.
// Any client failure becomes domain.ErrUpstreamUnavailable; normalization
// itself has no failure path.
func (p *Provider) Search(ctx context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	if p == nil || p.client == nil {
		return domain.SearchResult{}, fmt.Errorf("mycareersfuture provider: client is nil")
	}

	params := mycf.SearchParams{
		Limit: query.Limit,
		Page:  query.Page,
	}

	resp, err := p.client.Search(ctx, query.Term, params)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("mycareersfuture search (%s): %w", err, domain.ErrUpstreamUnavailable)
	}

	jobs := make([]domain.Job, 0, len(resp.Results))
	for _, posting := range resp.Results {
		jobs = append(jobs, mapPosting(posting))
	}

	return domain.SearchResult{
		SearchTerm: query.Term,
		Total:      resp.Total,
		Jobs:       jobs,
	}, nil
}

var _ jobdomain.Provider = (*Provider)(nil)

func mapPosting(posting mycf.Posting) domain.Job {
	job := domain.Job{
		ID:              postingID(posting),
		Title:           posting.Title,
		Categories:      categoryNames(posting.Categories),
		EmploymentTypes: employmentTypeNames(posting.EmploymentTypes),
		Skills:          skillNames(posting.Skills),
		Salary:          formatSalary(posting.Salary),
		Score:           posting.Score,
	}

	if job.Title == "" {
		job.Title = fallbackTitle
	}

	if posting.PostedCompany != nil && posting.PostedCompany.Name != "" {
		job.Company = strPtr(posting.PostedCompany.Name)
	}

	if posting.Metadata.JobDetailsURL != "" {
		job.URL = strPtr(posting.Metadata.JobDetailsURL)
	}
	if posting.Metadata.UpdatedAt != "" {
		job.UpdatedAt = strPtr(posting.Metadata.UpdatedAt)
	}
	if posting.Metadata.NewPostingDate != "" {
		job.PostedAt = strPtr(posting.Metadata.NewPostingDate)
	}

	if addr := posting.Address; addr != nil {
		var primary mycf.DistrictEntry
		if len(addr.Districts) > 0 {
			primary = addr.Districts[0]
		}

		switch {
		case addr.Street != "":
			job.Location = strPtr(addr.Street)
		case primary.Location != "":
			job.Location = strPtr(primary.Location)
		case addr.District != "":
			job.Location = strPtr(addr.District)
		}

		if primary.Region != "" {
			job.Region = strPtr(primary.Region)
		}

		job.Lat = addr.Lat
		job.Lng = addr.Lng
	}

	return job
}

func postingID(posting mycf.Posting) string {
	if id := posting.Metadata.JobPostID; id != "" {
		return id
	}
	if posting.UUID != "" {
		return posting.UUID
	}
	return uuid.NewString()
}

func categoryNames(entries []mycf.CategoryEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Category != "" {
			out = append(out, e.Category)
		}
	}
	return out
}

func employmentTypeNames(entries []mycf.EmploymentTypeEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.EmploymentType != "" {
			out = append(out, e.EmploymentType)
		}
	}
	return out
}

func skillNames(entries []mycf.SkillEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Skill != "" {
			out = append(out, e.Skill)
		}
	}
	return out
}

// formatSalary renders the structured salary block as a free-form display
// string, e.g. "$5,000 – $8,000 Monthly". Returns nil when upstream gives
// neither bound.
func formatSalary(raw *mycf.SalaryInfo) *string {
	if raw == nil || (raw.Minimum == nil && raw.Maximum == nil) {
		return nil
	}

	var salaryRange string
	if raw.Minimum != nil && raw.Maximum != nil && *raw.Minimum != *raw.Maximum {
		salaryRange = fmt.Sprintf("$%s – $%s", groupThousands(*raw.Minimum), groupThousands(*raw.Maximum))
	} else {
		value := raw.Minimum
		if value == nil {
			value = raw.Maximum
		}
		salaryRange = "$" + groupThousands(*value)
	}

	if t := raw.Type.SalaryType; t != "" {
		salaryRange += " " + titleCase(t)
	}

	return strPtr(salaryRange)
}

func groupThousands(v float64) string {
	s := strconv.FormatInt(int64(math.Round(v)), 10)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func titleCase(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func strPtr(s string) *string {
	return &s
}
