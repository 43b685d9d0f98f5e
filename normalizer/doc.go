// Package normalizer turns a raw low fare search payload into purchasable itineraries.
//
// # Overview
//
// Parse runs a single pass over one jetblue.RawPayload:
//   - every bundle of every fare group is decoded into a model.FareInfo; bundles
//     whose status is not available are discarded on the spot
//   - retained fares are collected into a FareIndex keyed by itinerary id, keeping
//     the order in which they were encountered
//   - itinerary records are walked in payload order; records without an indexed
//     fare are dropped, the rest get their timestamps, segments and fares
//
// # Usage
//
//	raw, err := jetblue.Decode(body)
//	if err != nil {
//	    return err
//	}
//	res, err := normalizer.Parse(raw, normalizer.Options{})
//	if err != nil {
//	    return err
//	}
//	for _, it := range res.Itineraries {
//	    fmt.Println(it.ID, len(it.Fares))
//	}
//
// # Errors
//
// Missing or malformed scalar fields never fail a parse. Two conditions do:
//   - a fare status outside the known set (*model.UnknownFareStatusError wrapped in
//     *FareError), unless Options.UnknownStatus is StatusDegrade
//   - a timestamp that is present but malformed (*utils.MalformedTimestampError
//     wrapped in *ItineraryError)
//
// Parse performs no I/O. Soft issues are collected in Result.Warnings for the
// caller to log.
package normalizer
