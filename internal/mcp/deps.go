package mcp

import (
	"github.com/careersg/mycf-widgets/internal/config"
	"github.com/careersg/mycf-widgets/internal/domain/job"
	mycfProvider "github.com/careersg/mycf-widgets/internal/domain/job/providers/mycareersfuture"
	"github.com/careersg/mycf-widgets/internal/mcp/tools"
	"github.com/careersg/mycf-widgets/internal/widget"
	"github.com/careersg/mycf-widgets/pkg/logging"
	"github.com/careersg/mycf-widgets/pkg/mycf"
)

// BuildResources constructs the full resource graph by hand. Kept alongside
// the Wire variant so the server builds without code generation.
func BuildResources(cfg config.Config, logger *logging.Logger) (*Resources, error) {
	client, err := mycf.NewClient(provideMCFConfig(cfg))
	if err != nil {
		return nil, err
	}

	provider, err := mycfProvider.NewProvider(client)
	if err != nil {
		return nil, err
	}

	svc, err := job.NewService(job.WithProvider(provider))
	if err != nil {
		return nil, err
	}

	widgets, err := widget.NewRegistry(cfg.Widget.AssetsDir, provideWidgetDescriptors(), logger)
	if err != nil {
		return nil, err
	}

	logger.Info("MyCareersFuture provider initialized", "base_url", cfg.MCF.BaseURL)

	return &Resources{
		JobService: svc,
		Widgets:    widgets,
	}, nil
}

// provideMCFConfig extracts upstream client config from main config
func provideMCFConfig(cfg config.Config) mycf.Config {
	return mycf.Config{
		BaseURL:    cfg.MCF.BaseURL,
		Timeout:    cfg.MCF.Timeout,
		RatePerSec: cfg.MCF.RatePerSec,
	}
}

// provideWidgetDescriptors is the startup manifest of widget-backed tools.
// The registry fails construction if any entry cannot be mapped.
func provideWidgetDescriptors() []widget.Descriptor {
	return []widget.Descriptor{
		{
			ToolName:    tools.JobListToolName,
			Title:       tools.JobListToolTitle,
			Description: tools.JobListWidgetDescription,
			AssetGlob:   "mycareersfuture-*.html",
		},
	}
}
