package normalizer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/theoremus-urban-solutions/jetblue-fares/jetblue"
	"github.com/theoremus-urban-solutions/jetblue-fares/model"
)

// RoundTripResult holds both parsed directions
type RoundTripResult struct {
	Outbound *Result
	Inbound  *Result
}

// Itineraries returns the itineraries of both directions.
func (r *RoundTripResult) Itineraries() model.RoundTrip {
	return model.RoundTrip{Outbound: r.Outbound.Itineraries, Inbound: r.Inbound.Itineraries}
}

// ParseRoundTrip parses the outbound and inbound payloads concurrently. Each
// direction is parsed independently, so the output equals two Parse calls.
func ParseRoundTrip(ctx context.Context, resp *jetblue.PuppetResponse, opts Options) (*RoundTripResult, error) {
	if resp == nil {
		return nil, &jetblue.ShapeError{Path: "$", Message: "nil response"}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &RoundTripResult{}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := Parse(resp.Outbound, opts)
		if err != nil {
			return fmt.Errorf("outbound: %w", err)
		}
		out.Outbound = r
		return nil
	})
	g.Go(func() error {
		r, err := Parse(resp.Inbound, opts)
		if err != nil {
			return fmt.Errorf("inbound: %w", err)
		}
		out.Inbound = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
