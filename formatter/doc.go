// Package formatter renders parsed itineraries and fare estimates.
//
// This package is organized into:
// - text.go: one summary line plus one segment line per itinerary
// - json.go: JSON serialization with durations in PT<H>H<M>M form
// - dump.go: go-spew dump of the parsed model, for debugging payloads
// - estimate.go: month calendar table for best fare estimates
package formatter
