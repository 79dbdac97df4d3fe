// Package mcpfinder harvests MCP server definitions from web pages.
// It fetches a curated list of source URLs, runs a cascade of extraction
// heuristics over each response body (raw JSON, embedded script tags,
// fenced code blocks, free-text key search, npx command phrases), and
// accumulates the discovered definitions into a deduplicated persisted
// collection.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or concern
// (e.g., http/, sqlite/, extract/).
package mcpfinder
