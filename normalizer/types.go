package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/jetblue-fares/model"
)

// StatusPolicy decides what happens to a fare whose status is not recognized
type StatusPolicy string

const (
	// StatusStrict fails the parse with *model.UnknownFareStatusError
	StatusStrict StatusPolicy = "strict"
	// StatusDegrade treats the fare as unknown, which drops it, and records a warning
	StatusDegrade StatusPolicy = "degrade"
)

// ParseStatusPolicy maps a config value to a StatusPolicy. Empty means strict.
func ParseStatusPolicy(s string) (StatusPolicy, error) {
	switch StatusPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatusStrict:
		return StatusStrict, nil
	case StatusDegrade:
		return StatusDegrade, nil
	}
	return "", fmt.Errorf("unsupported unknown status policy: %q", s)
}

// Options contains the knobs of a parse.
// The zero value is strict.
type Options struct {
	UnknownStatus StatusPolicy
}

// Result is the output of one Parse call
type Result struct {
	Currency             string
	CountryCode          string
	IsTransatlanticRoute bool

	// Itineraries in payload order, each with at least one available fare.
	Itineraries []model.Itinerary

	Warnings *WarningAggregator
}

// FareError locates a bundle that could not be decoded
type FareError struct {
	Group  int
	Bundle int
	Err    error
}

func (e *FareError) Error() string {
	return fmt.Sprintf("fareGroup[%d].bundleList[%d]: %v", e.Group, e.Bundle, e.Err)
}

func (e *FareError) Unwrap() error { return e.Err }

// ItineraryError locates an itinerary record that could not be decoded
type ItineraryError struct {
	Index int
	ID    string
	Err   error
}

func (e *ItineraryError) Error() string {
	return fmt.Sprintf("itinerary[%d] (id %s): %v", e.Index, e.ID, e.Err)
}

func (e *ItineraryError) Unwrap() error { return e.Err }

// IsItineraryError checks if an error is an ItineraryError
func IsItineraryError(err error) bool {
	var target *ItineraryError
	return errors.As(err, &target)
}
