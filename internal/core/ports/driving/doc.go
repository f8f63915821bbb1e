// Package driving defines the inbound port interfaces exposed to the
// CLI and MCP adapters. Implementations live in internal/core/services.
package driving
