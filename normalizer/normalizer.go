package normalizer

import (
	"errors"
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/jetblue-fares/jetblue"
	"github.com/theoremus-urban-solutions/jetblue-fares/model"
	"github.com/theoremus-urban-solutions/jetblue-fares/utils"
)

// Parse normalizes one direction of a search response.
func Parse(payload *jetblue.RawPayload, opts Options) (*Result, error) {
	if payload == nil {
		return nil, &jetblue.ShapeError{Path: "$", Message: "nil payload"}
	}
	warnings := NewWarningAggregator()

	idx, err := BuildFareIndex(payload.FareGroup, opts, warnings)
	if err != nil {
		return nil, err
	}

	itineraries := make([]model.Itinerary, 0, idx.Len())
	seen := make(map[string]struct{}, len(payload.Itinerary))
	for i, raw := range payload.Itinerary {
		id := raw.ID.String()
		fares, ok := idx.Lookup(id)
		if !ok {
			continue // not purchasable
		}
		it, err := buildItinerary(i, raw, fares)
		if err != nil {
			return nil, &ItineraryError{Index: i, ID: id, Err: err}
		}
		if _, dup := seen[id]; dup {
			warnings.Add(WarningDuplicateItinerary, id)
		}
		seen[id] = struct{}{}
		if len(it.Segments) == 0 {
			warnings.Add(WarningNoSegments, id)
		}
		itineraries = append(itineraries, it)
	}

	return &Result{
		Currency:             payload.Currency.String(),
		CountryCode:          payload.CountryCode.String(),
		IsTransatlanticRoute: utils.ParseFlag(payload.IsTransatlanticRoute.Ptr()),
		Itineraries:          itineraries,
		Warnings:             warnings,
	}, nil
}

func buildItinerary(i int, raw jetblue.RawItinerary, fares []model.FareInfo) (model.Itinerary, error) {
	path := fmt.Sprintf("itinerary[%d]", i)
	depart, err := parseTimestamp(path+".depart", raw.Depart)
	if err != nil {
		return model.Itinerary{}, err
	}
	arrive, err := parseTimestamp(path+".arrive", raw.Arrive)
	if err != nil {
		return model.Itinerary{}, err
	}

	segments := make([]model.Segment, 0, len(raw.Segments))
	for j, rs := range raw.Segments {
		seg, err := buildSegment(fmt.Sprintf("%s.segments[%d]", path, j), rs)
		if err != nil {
			return model.Itinerary{}, err
		}
		segments = append(segments, seg)
	}

	return model.Itinerary{
		ID:                raw.ID.String(),
		Source:            raw.From.String(),
		Destination:       raw.To.String(),
		Depart:            depart,
		Arrive:            arrive,
		IsOvernightFlight: utils.ParseFlag(raw.IsOverNightFlight.Ptr()),
		Segments:          segments,
		Fares:             fares,
	}, nil
}

func buildSegment(path string, raw jetblue.RawSegment) (model.Segment, error) {
	depart, err := parseTimestamp(path+".depart", raw.Depart)
	if err != nil {
		return model.Segment{}, err
	}
	arrive, err := parseTimestamp(path+".arrive", raw.Arrive)
	if err != nil {
		return model.Segment{}, err
	}

	legs := make([]model.FlightLeg, 0, len(raw.ThroughFlightLegs))
	for _, l := range raw.ThroughFlightLegs {
		legs = append(legs, model.FlightLeg{
			DepartureAirport:  l.DepartureAirport.String(),
			ArrivalAirport:    l.ArrivalAirport.String(),
			DepartureTerminal: l.DepartureTerminal.String(),
			ArrivalTerminal:   l.ArrivalTerminal.String(),
		})
	}

	return model.Segment{
		ID:                   raw.ID.String(),
		Source:               raw.From.String(),
		Destination:          raw.To.String(),
		Aircraft:             raw.Aircraft.String(),
		AircraftCode:         raw.AircraftCode.String(),
		Stops:                utils.ParseStops(raw.Stops.Ptr()),
		Depart:               depart,
		Arrive:               arrive,
		Duration:             utils.ParseDuration(raw.Duration.Ptr()),
		Layover:              utils.ParseDuration(raw.Layover.Ptr()),
		FlightNumber:         raw.FlightNo.String(),
		OperatingAirlineCode: raw.OperatingAirlineCode.String(),
		OperatingAirlineName: raw.OperatingAirlineName.String(),
		ThroughFlightLegs:    legs,
	}, nil
}

func parseTimestamp(path string, raw jetblue.Scalar) (*time.Time, error) {
	t, err := utils.ParseOffsetTimestamp(raw.Ptr())
	if err != nil {
		var malformed *utils.MalformedTimestampError
		if errors.As(err, &malformed) {
			malformed.Field = path
		}
		return nil, err
	}
	return t, nil
}
