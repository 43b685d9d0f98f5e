package model

import "time"

// FareInfo is one fare bundle offered against an itinerary
type FareInfo struct {
	ItineraryID string     `json:"itineraryID"`
	Price       *float64   `json:"price,omitempty"`
	Code        string     `json:"code"`
	CabinClass  *string    `json:"cabinClass,omitempty"`
	Refundable  bool       `json:"refundable"`
	Status      FareStatus `json:"status"`
}

// FlightLeg carries terminal detail for a through flight
type FlightLeg struct {
	DepartureAirport  string `json:"departureAirport"`
	ArrivalAirport    string `json:"arrivalAirport"`
	DepartureTerminal string `json:"departureTerminal"`
	ArrivalTerminal   string `json:"arrivalTerminal"`
}

// Segment is one flown flight number within an itinerary
type Segment struct {
	ID                   string         `json:"id"`
	Source               string         `json:"source"`
	Destination          string         `json:"destination"`
	Aircraft             string         `json:"aircraft"`
	AircraftCode         string         `json:"aircraftCode"`
	Stops                int            `json:"stops"`
	Depart               *time.Time     `json:"depart,omitempty"`
	Arrive               *time.Time     `json:"arrive,omitempty"`
	Duration             *time.Duration `json:"duration,omitempty"`
	Layover              *time.Duration `json:"layover,omitempty"` // time on the ground before the next segment
	FlightNumber         string         `json:"flightNumber"`
	OperatingAirlineCode string         `json:"operatingAirlineCode"`
	OperatingAirlineName string         `json:"operatingAirlineName"`
	ThroughFlightLegs    []FlightLeg    `json:"throughFlightLegs"`
}

// Itinerary is one purchasable directional routing
type Itinerary struct {
	ID                string     `json:"id"`
	Source            string     `json:"source"`
	Destination       string     `json:"destination"`
	Depart            *time.Time `json:"depart,omitempty"`
	Arrive            *time.Time `json:"arrive,omitempty"`
	IsOvernightFlight bool       `json:"isOvernightFlight"`
	Segments          []Segment  `json:"segments"`
	Fares             []FareInfo `json:"fares"`
}

// TotalElapsed sums segment durations and layovers. Missing values count as zero.
func (it Itinerary) TotalElapsed() time.Duration {
	var total time.Duration
	for _, s := range it.Segments {
		if s.Duration != nil {
			total += *s.Duration
		}
		if s.Layover != nil {
			total += *s.Layover
		}
	}
	return total
}

// LowestPrice returns the cheapest priced fare, or nil when no fare carries a price.
func (it Itinerary) LowestPrice() *float64 {
	var lowest *float64
	for i := range it.Fares {
		p := it.Fares[i].Price
		if p == nil {
			continue
		}
		if lowest == nil || *p < *lowest {
			v := *p
			lowest = &v
		}
	}
	return lowest
}

// RoundTrip holds the parsed itineraries of both directions of one search
type RoundTrip struct {
	Outbound []Itinerary `json:"outbound"`
	Inbound  []Itinerary `json:"inbound"`
}
