package jetblue

import "encoding/json"

// RawPayload is one direction of a low fare search response
type RawPayload struct {
	Currency             Scalar         `json:"currency"`
	CountryCode          Scalar         `json:"countryCode"` // missing from inbound
	FareGroup            []RawFareGroup `json:"fareGroup"`
	Itinerary            []RawItinerary `json:"itinerary"`
	IsTransatlanticRoute Scalar         `json:"isTransatlanticRoute"`

	// Present on the wire but unused.
	DateGroup   json.RawMessage `json:"dategroup,omitempty"`
	StopsFilter json.RawMessage `json:"stopsFilter,omitempty"`
	ProgramName json.RawMessage `json:"programName,omitempty"`
	SessionID   json.RawMessage `json:"sessionId,omitempty"`
}

// RawFareGroup groups bundles sharing a fare code
type RawFareGroup struct {
	FareCode   Scalar      `json:"fareCode"`
	BundleList []RawBundle `json:"bundleList"`
}

// RawBundle is one fare bundle offered against an itinerary
type RawBundle struct {
	ItineraryID Scalar `json:"itineraryID"`
	Status      Scalar `json:"status"`
	Price       Scalar `json:"price"`
	Code        Scalar `json:"code"`
	CabinClass  Scalar `json:"cabinclass"`
	Refundable  Scalar `json:"refundable"`
}

// RawItinerary is one itinerary record
type RawItinerary struct {
	ID                Scalar       `json:"id"`
	From              Scalar       `json:"from"`
	To                Scalar       `json:"to"`
	Depart            Scalar       `json:"depart"`
	Arrive            Scalar       `json:"arrive"`
	IsOverNightFlight Scalar       `json:"isOverNightFlight"`
	Segments          []RawSegment `json:"segments"`
}

// RawSegment is one flown segment of an itinerary
type RawSegment struct {
	ID                   Scalar         `json:"id"`
	From                 Scalar         `json:"from"`
	To                   Scalar         `json:"to"`
	Aircraft             Scalar         `json:"aircraft"`
	AircraftCode         Scalar         `json:"aircraftCode"`
	Stops                Scalar         `json:"stops"`
	Depart               Scalar         `json:"depart"`
	Arrive               Scalar         `json:"arrive"`
	Duration             Scalar         `json:"duration"`
	Layover              Scalar         `json:"layover"`
	FlightNo             Scalar         `json:"flightno"`
	OperatingAirlineCode Scalar         `json:"operatingAirlineCode"`
	OperatingAirlineName Scalar         `json:"operatingAirlineName"`
	ThroughFlightLegs    []RawFlightLeg `json:"throughFlightLegs"`
}

// RawFlightLeg is through-flight terminal detail
type RawFlightLeg struct {
	DepartureAirport  Scalar `json:"departureAirport"`
	ArrivalAirport    Scalar `json:"arrivalAirport"`
	DepartureTerminal Scalar `json:"departureTerminal"`
	ArrivalTerminal   Scalar `json:"arrivalTerminal"`
}

// PuppetResponse pairs the outbound and inbound payloads of a round trip search
type PuppetResponse struct {
	Outbound *RawPayload `json:"outbound"`
	Inbound  *RawPayload `json:"inbound"`
}
