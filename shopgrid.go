// Package shopgrid extracts product catalogs from collection-grid HTML.
// It locates embedded JSON product payloads in already-retrieved documents,
// parses the labeled sections of each product description, normalizes the
// result into a canonical record, deduplicates across documents, and exports
// the aggregated catalog as CSV, an XML feed, or per-product markdown sheets.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, etree/).
package shopgrid
