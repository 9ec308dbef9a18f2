// Package revlens extracts customer reviews from e-commerce product pages,
// strips them of boilerplate noise, and prepares them for structured
// summarization (pros/cons/sentiment) by a model backend.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/).
package revlens
