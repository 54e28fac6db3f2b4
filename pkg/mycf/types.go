package mycf

import (
	"net/http"
	"time"
)

// Config defines MyCareersFuture API client settings
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	PageSize   int
	// Outbound requests per second against the public API; <= 0 disables limiting
	RatePerSec float64
	RateBurst  int
}

// Client queries the public MyCareersFuture search API
type Client struct {
	baseURL    string
	httpClient *http.Client
	pageSize   int
	limiter    *rateLimiter
}

// SearchParams describe pagination for a search request
type SearchParams struct {
	Limit int // results per page, clamped to [1, maxPageSize]
	Page  int // zero-based page index, clamped to [0, maxPage]
}

// SearchResult carries the raw upstream postings plus the reported total,
// which may exceed len(Results).
type SearchResult struct {
	Total   int
	Results []Posting
}

type searchResponse struct {
	Total   int       `json:"total"`
	Results []Posting `json:"results"`
}

// Posting mirrors one raw job record as the upstream API returns it.
// Optional objects stay nil when absent; normalization happens downstream.
type Posting struct {
	UUID            string                `json:"uuid"`
	Title           string                `json:"title"`
	Score           *float64              `json:"score"`
	PostedCompany   *CompanySummary       `json:"postedCompany"`
	Metadata        PostingMetadata       `json:"metadata"`
	Address         *PostingAddress       `json:"address"`
	Categories      []CategoryEntry       `json:"categories"`
	EmploymentTypes []EmploymentTypeEntry `json:"employmentTypes"`
	Skills          []SkillEntry          `json:"skills"`
	Salary          *SalaryInfo           `json:"salary"`
}

type CompanySummary struct {
	Name string `json:"name"`
}

type PostingMetadata struct {
	JobPostID      string `json:"jobPostId"`
	JobDetailsURL  string `json:"jobDetailsUrl"`
	UpdatedAt      string `json:"updatedAt"`
	NewPostingDate string `json:"newPostingDate"`
}

type PostingAddress struct {
	Street    string          `json:"street"`
	District  string          `json:"district"`
	Lat       *float64        `json:"lat"`
	Lng       *float64        `json:"lng"`
	Districts []DistrictEntry `json:"districts"`
}

type DistrictEntry struct {
	Location string `json:"location"`
	Region   string `json:"region"`
}

type CategoryEntry struct {
	Category string `json:"category"`
}

type EmploymentTypeEntry struct {
	EmploymentType string `json:"employmentType"`
}

type SkillEntry struct {
	Skill string `json:"skill"`
}

// SalaryInfo is the structured salary block; either bound may be missing.
type SalaryInfo struct {
	Minimum *float64   `json:"minimum"`
	Maximum *float64   `json:"maximum"`
	Type    SalaryType `json:"type"`
}

type SalaryType struct {
	SalaryType string `json:"salaryType"`
}
