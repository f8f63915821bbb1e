// Package driven defines the outbound port interfaces the core
// services depend on: the external record providers and the persistent
// match cache. Adapters under internal/connectors and
// internal/adapters/driven implement these interfaces.
package driven
