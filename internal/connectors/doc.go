// Package connectors provides the HTTP clients for the external record
// providers. Each subpackage maps one provider's request/response shape
// onto the domain types; all of them share the rate limiter defined here.
//
// Connectors are pure and stateless: they hold no cache handle and fail
// independently of each other.
package connectors
