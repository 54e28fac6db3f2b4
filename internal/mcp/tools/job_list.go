package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careersg/mycf-widgets/internal/domain"
	"github.com/careersg/mycf-widgets/internal/domain/job"
	"github.com/careersg/mycf-widgets/internal/widget"
	"github.com/careersg/mycf-widgets/pkg/logging"
)

const (
	// JobListToolName identifies the single tool this server exposes
	JobListToolName = "mycf-job-list"

	// JobListToolTitle is the human-facing tool and widget title
	JobListToolTitle = "MyCareersFuture job list"

	// JobListWidgetDescription describes the widget for rendering hosts
	JobListWidgetDescription = "Displays a horizontal carousel of job listings from MyCareersFuture with " +
		"details like salary, location, and company."
)

// JobListParams defines the arguments for the mycf-job-list tool
type JobListParams struct {
	SearchTerm     string `json:"searchTerm" jsonschema:"Phrase to search for on MyCareersFuture"`
	Limit          int    `json:"limit,omitempty" jsonschema:"Maximum number of results to return (1-50)"`
	Page           int    `json:"page,omitempty" jsonschema:"Zero-based page index on MyCareersFuture"`
	Location       string `json:"location,omitempty" jsonschema:"Preferred location filter; ignored when the upstream query shape does not support it"`
	EmploymentType string `json:"employmentType,omitempty" jsonschema:"Preferred employment type filter; ignored when the upstream query shape does not support it"`
}

// JobView is the structured-content shape of one job. Every key is always
// present; optional fields encode as null so consumers can apply their own
// fallback labels at display time.
type JobView struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         *string  `json:"company"`
	JobURL          *string  `json:"jobUrl"`
	Salary          *string  `json:"salary"`
	Location        *string  `json:"location"`
	Region          *string  `json:"region"`
	Categories      []string `json:"categories"`
	EmploymentTypes []string `json:"employmentTypes"`
	Skills          []string `json:"skills"`
	UpdatedAt       *string  `json:"updatedAt"`
	PostedAt        *string  `json:"postedAt"`
	Score           *float64 `json:"score"`
	Lat             *float64 `json:"lat"`
	Lng             *float64 `json:"lng"`
}

// JobListResponse is the structured payload returned alongside the text
// summary and the widget reference.
type JobListResponse struct {
	SearchTerm string    `json:"searchTerm"`
	Total      int       `json:"total"`
	Jobs       []JobView `json:"jobs"`
}

type jobListHandler struct {
	svc    job.Service
	ref    widget.Ref
	logger *logging.Logger
}

// RegisterJobTools wires the job search tool into the MCP server. The widget
// mapping must exist up front; a missing one is a startup defect, not a
// per-request error.
func RegisterJobTools(server *sdkmcp.Server, svc job.Service, widgets *widget.Registry, logger *logging.Logger) error {
	if svc == nil {
		return fmt.Errorf("tools: job service is required")
	}

	ref, ok := widgets.Resolve(JobListToolName)
	if !ok {
		return fmt.Errorf("tools: no widget registered for tool %q", JobListToolName)
	}

	h := &jobListHandler{
		svc:    svc,
		ref:    ref,
		logger: logger.Named("tools"),
	}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        JobListToolName,
		Title:       JobListToolTitle,
		Description: "Search for jobs on MyCareersFuture and return an interactive carousel of results.",
		Meta:        widget.Meta(ref),
	}, h.handle)

	return nil
}

func (h *jobListHandler) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *JobListParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	start := time.Now()

	result, err := h.svc.Search(ctx, domain.SearchQuery{
		Term:           params.SearchTerm,
		Limit:          params.Limit,
		Page:           params.Page,
		Location:       params.Location,
		EmploymentType: params.EmploymentType,
	})

	if err != nil {
		elapsed := time.Since(start)

		if errors.Is(err, domain.ErrInvalidInput) {
			h.logger.Warn("job search rejected",
				"term", params.SearchTerm, "outcome", "invalid_input", "err", err, "elapsed", elapsed)
			return errorResult(fmt.Sprintf("Input validation error: %v", err)), nil, nil
		}

		h.logger.Error("job search failed",
			"term", params.SearchTerm, "outcome", "error", "err", err, "elapsed", elapsed)
		return errorResult(fmt.Sprintf("Unable to fetch jobs from MyCareersFuture: %v", err)), nil, nil
	}

	outcome := "success"
	if len(result.Jobs) == 0 {
		outcome = "empty"
	}
	h.logger.Info("job search completed",
		"term", result.SearchTerm,
		"total", result.Total,
		"returned", len(result.Jobs),
		"outcome", outcome,
		"elapsed", time.Since(start),
	)

	payload := buildResponse(result)

	res := textResult(summaryText(result))
	res.Meta = widget.Meta(h.ref)

	return res, payload, nil
}

// summaryText derives the headline from total and returned count alone, so
// the text-only consumer and the widget consumer agree on the facts.
func summaryText(result domain.SearchResult) string {
	if len(result.Jobs) == 0 {
		return fmt.Sprintf("No jobs found for '%s'. Try a broader search.", result.SearchTerm)
	}
	return fmt.Sprintf("Found %s jobs for '%s'. Showing top %d results in the carousel.",
		groupThousands(result.Total), result.SearchTerm, len(result.Jobs))
}

func buildResponse(result domain.SearchResult) JobListResponse {
	jobs := make([]JobView, 0, len(result.Jobs))
	for _, j := range result.Jobs {
		jobs = append(jobs, JobView{
			ID:              j.ID,
			Title:           j.Title,
			Company:         j.Company,
			JobURL:          j.URL,
			Salary:          j.Salary,
			Location:        j.Location,
			Region:          j.Region,
			Categories:      emptyIfNil(j.Categories),
			EmploymentTypes: emptyIfNil(j.EmploymentTypes),
			Skills:          emptyIfNil(j.Skills),
			UpdatedAt:       j.UpdatedAt,
			PostedAt:        j.PostedAt,
			Score:           j.Score,
			Lat:             j.Lat,
			Lng:             j.Lng,
		})
	}

	return JobListResponse{
		SearchTerm: result.SearchTerm,
		Total:      result.Total,
		Jobs:       jobs,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func groupThousands(n int) string {
	s := fmt.Sprint(n)
	if len(s) <= 3 {
		return s
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
