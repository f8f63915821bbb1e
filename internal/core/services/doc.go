// Package services implements the driving ports on top of the provider
// connectors and the match cache. Each per-source service performs the
// provider call and the cache writes for direct searches; the research
// service orchestrates the concurrent cross-source fan-out.
package services
