// Package domain defines the core business entities for the research
// sources server.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PersonQuery: The shared input describing a person to research
//   - SourceSelector: Which external sources a request targets
//   - Match: A cached mention of a person in an external source
//   - AggregateReport: The assembled outcome of a cross-source search
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
