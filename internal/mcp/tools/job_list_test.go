package tools

import (
	"context"
	"fmt"
	"sync"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careersg/mycf-widgets/internal/domain"
	"github.com/careersg/mycf-widgets/internal/widget"
	"github.com/careersg/mycf-widgets/pkg/logging"
)

type stubService struct {
	result func(query domain.SearchQuery) (domain.SearchResult, error)
}

func (s *stubService) Search(_ context.Context, query domain.SearchQuery) (domain.SearchResult, error) {
	return s.result(query)
}

func strPtr(s string) *string { return &s }

func testRef() widget.Ref {
	return widget.Ref{
		URI:         "ui://widget/mycf-job-list.html",
		MIMEType:    widget.MIMEType,
		Title:       JobListToolTitle,
		Description: JobListWidgetDescription,
	}
}

func newHandler(svc *stubService) *jobListHandler {
	return &jobListHandler{
		svc:    svc,
		ref:    testRef(),
		logger: logging.New("error"),
	}
}

func resultText(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleSuccess(t *testing.T) {
	svc := &stubService{result: func(query domain.SearchQuery) (domain.SearchResult, error) {
		return domain.SearchResult{
			SearchTerm: query.Term,
			Total:      57,
			Jobs: []domain.Job{
				{ID: "MCF-1", Title: "Software Engineer", Company: strPtr("Acme"), Skills: []string{"Go"}},
				{ID: "MCF-2", Title: "Platform Engineer"},
				{ID: "MCF-3", Title: "SRE", Salary: strPtr("$6,000 Monthly")},
			},
		}, nil
	}}

	res, out, err := newHandler(svc).handle(context.Background(), nil, &JobListParams{SearchTerm: "software engineer"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.IsError)

	assert.Equal(t, "Found 57 jobs for 'software engineer'. Showing top 3 results in the carousel.", resultText(t, res))
	assert.Equal(t, "ui://widget/mycf-job-list.html", res.Meta["openai/outputTemplate"])

	payload, ok := out.(JobListResponse)
	require.True(t, ok)
	assert.Equal(t, "software engineer", payload.SearchTerm)
	assert.Equal(t, 57, payload.Total)
	require.Len(t, payload.Jobs, 3)

	first := payload.Jobs[0]
	assert.Equal(t, "MCF-1", first.ID)
	require.NotNil(t, first.Company)
	assert.Equal(t, "Acme", *first.Company)
	assert.Equal(t, []string{"Go"}, first.Skills)

	second := payload.Jobs[1]
	assert.Nil(t, second.Company, "absent company stays null in structured content")
	assert.NotNil(t, second.Skills, "sequences encode as empty arrays, not null")
}

func TestHandleZeroMatchesIsSuccess(t *testing.T) {
	svc := &stubService{result: func(query domain.SearchQuery) (domain.SearchResult, error) {
		return domain.SearchResult{SearchTerm: query.Term, Total: 0, Jobs: []domain.Job{}}, nil
	}}

	res, out, err := newHandler(svc).handle(context.Background(), nil, &JobListParams{SearchTerm: "zeppelin pilot"})
	require.NoError(t, err)
	assert.False(t, res.IsError, "zero matches is valid information, not an error")

	assert.Equal(t, "No jobs found for 'zeppelin pilot'. Try a broader search.", resultText(t, res))

	payload, ok := out.(JobListResponse)
	require.True(t, ok)
	assert.Equal(t, 0, payload.Total)
	assert.NotNil(t, payload.Jobs)
	assert.Empty(t, payload.Jobs)
}

func TestHandleInvalidInput(t *testing.T) {
	svc := &stubService{result: func(query domain.SearchQuery) (domain.SearchResult, error) {
		return domain.SearchResult{}, fmt.Errorf("search term must not be empty: %w", domain.ErrInvalidInput)
	}}

	res, out, err := newHandler(svc).handle(context.Background(), nil, &JobListParams{SearchTerm: "   "})
	require.NoError(t, err, "rejection is a structured tool result, not a protocol error")
	require.NotNil(t, res)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Input validation error")
	assert.Nil(t, out)
}

func TestHandleUpstreamFailure(t *testing.T) {
	svc := &stubService{result: func(domain.SearchQuery) (domain.SearchResult, error) {
		return domain.SearchResult{}, fmt.Errorf("mycf: API error (502): %w", domain.ErrUpstreamUnavailable)
	}}

	res, out, err := newHandler(svc).handle(context.Background(), nil, &JobListParams{SearchTerm: "software engineer"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Unable to fetch jobs from MyCareersFuture")
	assert.Nil(t, out, "all-or-nothing: no partial jobs on upstream failure")
}

func TestHandleConcurrentInvocations(t *testing.T) {
	svc := &stubService{result: func(query domain.SearchQuery) (domain.SearchResult, error) {
		return domain.SearchResult{
			SearchTerm: query.Term,
			Total:      1,
			Jobs:       []domain.Job{{ID: query.Term, Title: query.Term}},
		}, nil
	}}
	h := newHandler(svc)

	const n = 8
	var wg sync.WaitGroup
	outs := make([]any, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			term := fmt.Sprintf("term-%d", i)
			_, out, _ := h.handle(context.Background(), nil, &JobListParams{SearchTerm: term})
			outs[i] = out
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		payload, ok := outs[i].(JobListResponse)
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("term-%d", i), payload.SearchTerm)
	}
}

func TestSummaryTextGroupsThousands(t *testing.T) {
	result := domain.SearchResult{
		SearchTerm: "engineer",
		Total:      12345,
		Jobs:       []domain.Job{{ID: "a", Title: "A"}},
	}
	assert.Equal(t, "Found 12,345 jobs for 'engineer'. Showing top 1 results in the carousel.", summaryText(result))
}
