package model

import (
	"errors"
	"fmt"
	"strings"
)

// FareStatus is the availability of a fare bundle
type FareStatus int

const (
	FareStatusUnknown FareStatus = iota
	FareStatusNotOffered
	FareStatusAvailable
	FareStatusSoldOut
)

var fareStatusNames = [...]string{
	FareStatusUnknown:    "unknown",
	FareStatusNotOffered: "not_offered",
	FareStatusAvailable:  "available",
	FareStatusSoldOut:    "sold_out",
}

func (s FareStatus) String() string {
	if s < 0 || int(s) >= len(fareStatusNames) {
		return fmt.Sprintf("FareStatus(%d)", int(s))
	}
	return fareStatusNames[s]
}

// MarshalText renders the status by name.
func (s FareStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnknownFareStatusError reports a status value outside the FareStatus set.
type UnknownFareStatusError struct {
	Value       string
	ItineraryID string
}

func (e *UnknownFareStatusError) Error() string {
	if e.ItineraryID == "" {
		return fmt.Sprintf("unrecognized fare status %q", e.Value)
	}
	return fmt.Sprintf("unrecognized fare status %q for itinerary %s", e.Value, e.ItineraryID)
}

// IsUnknownFareStatus checks if an error is an UnknownFareStatusError
func IsUnknownFareStatus(err error) bool {
	var target *UnknownFareStatusError
	return errors.As(err, &target)
}

// ParseFareStatus looks up raw by name, ignoring case. A missing status is
// FareStatusUnknown; an unrecognized one returns *UnknownFareStatusError.
func ParseFareStatus(raw *string) (FareStatus, error) {
	if raw == nil || *raw == "" {
		return FareStatusUnknown, nil
	}
	name := strings.ToLower(*raw)
	for i, n := range fareStatusNames {
		if n == name {
			return FareStatus(i), nil
		}
	}
	return FareStatusUnknown, &UnknownFareStatusError{Value: *raw}
}
