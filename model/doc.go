// Package model defines the typed fare search model produced by the normalizer.
//
// The main types are:
//   - Itinerary: one purchasable directional routing with its segments and fares
//   - Segment: one flown flight number within an itinerary
//   - FlightLeg: through-flight leg detail attached to a segment
//   - FareInfo: a priced fare bundle offered against an itinerary
//   - FareStatus: availability of a fare bundle
//
// Values that may be absent in the raw payload are pointers, so a missing price
// is never confused with a zero price and a missing cabin class is never confused
// with an empty one.
package model
