// Package scrapeview submits URLs to a section extraction service, tracks
// the single in-flight request, and renders or exports the structured result.
// It also ships the extraction service itself.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, rod/, sqlite/).
package scrapeview
