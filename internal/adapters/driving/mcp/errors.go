// Package mcp provides the MCP (Model Context Protocol) server adapter
// for the research sources. It exposes each research operation as a
// named tool with a typed input schema.
package mcp

import "errors"

// ErrMissingResearchService is returned when the research service is not provided.
var ErrMissingResearchService = errors.New("mcp: research service is required")
