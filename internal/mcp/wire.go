//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/careersg/mycf-widgets/internal/config"
	"github.com/careersg/mycf-widgets/internal/domain/job"
	mycfProvider "github.com/careersg/mycf-widgets/internal/domain/job/providers/mycareersfuture"
	"github.com/careersg/mycf-widgets/internal/widget"
	"github.com/careersg/mycf-widgets/pkg/logging"
	"github.com/careersg/mycf-widgets/pkg/mycf"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Infrastructure - MyCareersFuture
		provideMCFConfig,
		mycf.NewClient,

		// Providers
		provideMCFProvider,
		wire.Bind(new(job.Provider), new(*mycfProvider.Provider)),

		// Services
		job.NewServiceWithDeps,

		// Widgets
		provideWidgetDescriptors,
		provideWidgetRegistry,

		newResources,
	)

	return &Resources{}, nil
}

// provideMCFProvider creates a provider from the concrete client
func provideMCFProvider(client *mycf.Client) (*mycfProvider.Provider, error) {
	return mycfProvider.NewProvider(client)
}

// provideWidgetRegistry builds the immutable tool-to-widget mapping
func provideWidgetRegistry(cfg config.Config, descriptors []widget.Descriptor, logger *logging.Logger) (*widget.Registry, error) {
	return widget.NewRegistry(cfg.Widget.AssetsDir, descriptors, logger)
}

// newResources creates Resources struct
func newResources(jobService job.Service, widgets *widget.Registry) *Resources {
	return &Resources{
		JobService: jobService,
		Widgets:    widgets,
	}
}
