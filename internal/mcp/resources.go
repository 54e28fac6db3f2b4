package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careersg/mycf-widgets/internal/widget"
	"github.com/careersg/mycf-widgets/pkg/logging"
)

// registerWidgetResources exposes every registered widget bundle as a
// readable MCP resource, so rendering hosts can fetch and embed the markup.
func registerWidgetResources(server *sdkmcp.Server, widgets *widget.Registry, logger *logging.Logger) error {
	for _, toolName := range widgets.Tools() {
		ref, ok := widgets.Resolve(toolName)
		if !ok {
			return fmt.Errorf("mcp: widget registry returned unknown tool %q", toolName)
		}

		html, ok := widgets.HTML(toolName)
		if !ok {
			return fmt.Errorf("mcp: no bundle loaded for tool %q", toolName)
		}

		server.AddResource(&sdkmcp.Resource{
			Name:        toolName,
			Title:       ref.Title,
			URI:         ref.URI,
			Description: ref.Description,
			MIMEType:    ref.MIMEType,
			Meta:        widget.ResourceMeta(ref),
		}, widgetReadHandler(ref, html, logger))

		logger.Info("registered widget resource", "uri", ref.URI, "bytes", len(html))
	}

	return nil
}

func widgetReadHandler(ref widget.Ref, html string, logger *logging.Logger) sdkmcp.ResourceHandler {
	return func(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		_ = ctx

		if req.Params.URI != ref.URI {
			logger.Warn("unknown widget resource requested", "uri", req.Params.URI)
			return nil, fmt.Errorf("unknown resource: %s", req.Params.URI)
		}

		logger.Debug("serving widget resource", "uri", ref.URI, "bytes", len(html))

		return &sdkmcp.ReadResourceResult{
			Contents: []*sdkmcp.ResourceContents{
				{
					URI:      ref.URI,
					MIMEType: ref.MIMEType,
					Text:     html,
					Meta:     widget.ResourceMeta(ref),
				},
			},
		}, nil
	}
}
