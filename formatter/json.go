package formatter

import (
	"encoding/json"
	"time"

	"github.com/theoremus-urban-solutions/jetblue-fares/model"
	"github.com/theoremus-urban-solutions/jetblue-fares/utils"
)

type jsonSegment struct {
	model.Segment
	Duration *string `json:"duration,omitempty"`
	Layover  *string `json:"layover,omitempty"`
}

type jsonItinerary struct {
	model.Itinerary
	Segments []jsonSegment `json:"segments"`
}

type jsonRoundTrip struct {
	Outbound []jsonItinerary `json:"outbound"`
	Inbound  []jsonItinerary `json:"inbound"`
}

// BuildJSON serializes both directions with durations in PT<H>H<M>M form
func BuildJSON(rt model.RoundTrip) ([]byte, error) {
	return json.MarshalIndent(jsonRoundTrip{
		Outbound: toJSONItineraries(rt.Outbound),
		Inbound:  toJSONItineraries(rt.Inbound),
	}, "", "  ")
}

func toJSONItineraries(its []model.Itinerary) []jsonItinerary {
	out := make([]jsonItinerary, 0, len(its))
	for _, it := range its {
		segs := make([]jsonSegment, 0, len(it.Segments))
		for _, s := range it.Segments {
			segs = append(segs, jsonSegment{
				Segment:  s,
				Duration: isoDuration(s.Duration),
				Layover:  isoDuration(s.Layover),
			})
		}
		out = append(out, jsonItinerary{Itinerary: it, Segments: segs})
	}
	return out
}

func isoDuration(d *time.Duration) *string {
	if d == nil {
		return nil
	}
	s := utils.FormatISODuration(*d)
	return &s
}
