// Package jetblue handles the raw JetBlue booking API shapes.
//
// It covers three things:
//   - Low fare search (LFS) payloads: the outboundLFS and inboundLFS response
//     bodies captured from the booking page, decoded into RawPayload
//   - Booking page URLs built from a SearchQuery
//   - The best fares month estimate endpoint, via EstimateClient
//
// RawPayload is deliberately loose: scalar fields are kept as Scalar so that
// strings, numbers, booleans and null all survive decoding. The normalizer
// package turns a RawPayload into the typed model.
package jetblue
