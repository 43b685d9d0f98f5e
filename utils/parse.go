package utils

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// OffsetTimestampLayout is the LFS timestamp layout, e.g. 2022-06-02T08:00:00-04:00
const OffsetTimestampLayout = "2006-01-02T15:04:05-07:00"

var durationPattern = regexp.MustCompile(`^PT(\d+)H(\d+)M`)

// MalformedTimestampError reports a timestamp field that is present but does not
// follow OffsetTimestampLayout.
type MalformedTimestampError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedTimestampError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed timestamp %q", e.Value)
	}
	return fmt.Sprintf("malformed timestamp in %s: %q", e.Field, e.Value)
}

func (e *MalformedTimestampError) Unwrap() error { return e.Err }

// IsMalformedTimestamp checks if an error is a MalformedTimestampError
func IsMalformedTimestamp(err error) bool {
	var target *MalformedTimestampError
	return errors.As(err, &target)
}

// ParsePrice returns nil when raw is missing, empty or not a finite decimal number.
func ParsePrice(raw *string) *float64 {
	if raw == nil {
		return nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParseDuration parses the hours and minutes form PT<H>H<M>M.
func ParseDuration(raw *string) *time.Duration {
	if raw == nil {
		return nil
	}
	m := durationPattern.FindStringSubmatch(*raw)
	if m == nil {
		return nil
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}
	d := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	return &d
}

// ParseOffsetTimestamp returns nil, nil for a missing or empty value. A non-empty
// value must match OffsetTimestampLayout exactly.
func ParseOffsetTimestamp(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(OffsetTimestampLayout, *raw)
	if err != nil {
		return nil, &MalformedTimestampError{Value: *raw, Err: err}
	}
	return &t, nil
}

// ParseCabinClass drops the "n/a" placeholder. An empty string is kept as is.
func ParseCabinClass(raw *string) *string {
	if raw == nil || strings.EqualFold(*raw, "n/a") {
		return nil
	}
	v := *raw
	return &v
}

// ParseRefundable reports whether raw is "true", ignoring case.
func ParseRefundable(raw *string) bool {
	return ParseFlag(raw)
}

// ParseFlag is the generic boolean coercion used for refundable and overnight flags.
func ParseFlag(raw *string) bool {
	return raw != nil && strings.EqualFold(*raw, "true")
}

// ParseStops defaults to 0 when the stop count is missing or not an integer.
func ParseStops(raw *string) int {
	if raw == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return 0
	}
	return n
}

// Deref returns the pointed-to string or "" for nil.
func Deref(raw *string) string {
	if raw == nil {
		return ""
	}
	return *raw
}
