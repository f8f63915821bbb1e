package mcp

import (
	"github.com/rootline/research-sources/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Newspapers provides historic newspaper search.
	Newspapers driving.NewspaperService

	// Tree provides collaborative-tree search and profiles.
	Tree driving.TreeService

	// Archive provides European civil-record search.
	Archive driving.ArchiveService

	// Research provides the cross-source orchestration.
	Research driving.ResearchService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Research == nil {
		return ErrMissingResearchService
	}
	// Per-source services are optional: their tools are only
	// registered when the service is present.
	return nil
}
