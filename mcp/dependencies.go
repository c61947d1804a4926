package mcp

import (
	"github.com/pdgclone/pdgclone/app"
	"github.com/pdgclone/pdgclone/domain"
	"github.com/pdgclone/pdgclone/internal/pdgio"
	"github.com/pdgclone/pdgclone/service"
)

// Dependencies wires the concrete adapters an MCP tool handler needs: a
// PDG loader and the clone-detection service, plus the output formatter
// and configuration loader that only BuildCloneUseCase passes on.
type Dependencies struct {
	loader       domain.PDGLoader
	service      domain.CloneService
	formatter    domain.CloneOutputFormatter
	configLoader domain.CloneConfigurationLoader
}

// NewDependencies creates the default production Dependencies.
func NewDependencies() *Dependencies {
	return &Dependencies{
		loader:       pdgio.NewLoader(),
		service:      service.NewCloneService(),
		formatter:    service.NewCloneOutputFormatter(),
		configLoader: service.NewCloneConfigurationLoader(),
	}
}

// BuildCloneUseCase constructs a CloneUseCase over d's adapters. The MCP
// server never writes to stdout, so callers should override the use
// case's output writer before calling Execute.
func (d *Dependencies) BuildCloneUseCase() *app.CloneUseCase {
	return app.NewCloneUseCase(d.loader, d.service, d.formatter, d.configLoader)
}

// BuildBatchRunner constructs a BatchRunner over d's adapters.
func (d *Dependencies) BuildBatchRunner() *service.BatchRunner {
	return service.NewBatchRunner(d.loader, d.service, service.NewNoOpBatchProgressReporter())
}
