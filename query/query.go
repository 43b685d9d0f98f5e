// Package query selects and orders parsed itineraries for presentation.
package query

import (
	"sort"
	"strconv"
	"time"

	"github.com/theoremus-urban-solutions/jetblue-fares/model"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// HourWindow keeps itineraries whose hour of day lies within [After, Before].
// A nil bound is open.
type HourWindow struct {
	After  *int
	Before *int
}

// Hour is a helper for building windows inline.
func Hour(h int) *int { return &h }

// Validate checks both bounds are hours of the day and ordered.
func (w HourWindow) Validate(name string) error {
	for _, b := range []*int{w.After, w.Before} {
		if b != nil && (*b < 0 || *b > 23) {
			return &QueryError{Msg: name + " hour must be between 0 and 23, got " + strconv.Itoa(*b)}
		}
	}
	if w.After != nil && w.Before != nil && *w.Before < *w.After {
		return &QueryError{Msg: name + "-before hour cannot be before " + name + "-after hour."}
	}
	return nil
}

// Open reports whether the window has no bounds.
func (w HourWindow) Open() bool { return w.After == nil && w.Before == nil }

// Contains reports whether t falls inside the window. A missing time only
// satisfies an open window.
func (w HourWindow) Contains(t *time.Time) bool {
	if w.Open() {
		return true
	}
	if t == nil {
		return false
	}
	h := t.Hour()
	if w.After != nil && h < *w.After {
		return false
	}
	if w.Before != nil && h > *w.Before {
		return false
	}
	return true
}

// Selection holds the hour windows of a round trip: outbound itineraries are
// matched on departure, inbound ones on arrival.
type Selection struct {
	Depart HourWindow
	Return HourWindow
}

// Validate checks both windows.
func (s Selection) Validate() error {
	if err := s.Depart.Validate("depart"); err != nil {
		return err
	}
	return s.Return.Validate("return")
}

// Apply filters both directions and sorts each by departure.
func (s Selection) Apply(rt model.RoundTrip) model.RoundTrip {
	return model.RoundTrip{
		Outbound: SortByDepart(FilterByDepart(rt.Outbound, s.Depart)),
		Inbound:  SortByDepart(FilterByArrive(rt.Inbound, s.Return)),
	}
}

// FilterByDepart keeps itineraries departing inside w.
func FilterByDepart(its []model.Itinerary, w HourWindow) []model.Itinerary {
	return filter(its, func(it model.Itinerary) bool { return w.Contains(it.Depart) })
}

// FilterByArrive keeps itineraries arriving inside w.
func FilterByArrive(its []model.Itinerary, w HourWindow) []model.Itinerary {
	return filter(its, func(it model.Itinerary) bool { return w.Contains(it.Arrive) })
}

func filter(its []model.Itinerary, keep func(model.Itinerary) bool) []model.Itinerary {
	out := make([]model.Itinerary, 0, len(its))
	for _, it := range its {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// SortByDepart returns a copy ordered by departure time. Ties keep payload
// order and itineraries without a departure go last.
func SortByDepart(its []model.Itinerary) []model.Itinerary {
	out := make([]model.Itinerary, len(its))
	copy(out, its)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Depart, out[j].Depart
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return a.Before(*b)
	})
	return out
}
