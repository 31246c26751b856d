// Package sitebind turns a scattered, multi-page documentation website into
// a locally aggregated, ordered document set. It discovers same-host pages
// from a seed URL, retrieves their markup through a fallback chain of fetch
// strategies, isolates the substantive content from site chrome, and emits
// cleaned documents ready for binding into a single output.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package sitebind
