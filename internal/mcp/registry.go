package mcp

import (
	"github.com/careersg/mycf-widgets/internal/domain/job"
	"github.com/careersg/mycf-widgets/internal/widget"
)

// Resources holds everything the MCP server needs at request time. The
// widget registry is the only state shared across invocations and it is
// read-only after construction.
type Resources struct {
	JobService job.Service
	Widgets    *widget.Registry
}
