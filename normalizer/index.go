package normalizer

import (
	"errors"
	"fmt"

	"github.com/theoremus-urban-solutions/jetblue-fares/jetblue"
	"github.com/theoremus-urban-solutions/jetblue-fares/model"
	"github.com/theoremus-urban-solutions/jetblue-fares/utils"
)

// FareIndex maps itinerary ids to their available fares in encounter order.
// It is read-only once built.
type FareIndex struct {
	fares map[string][]model.FareInfo
	ids   []string // first-seen order
}

// FareIndexBuilder accumulates fares until Freeze is called
type FareIndexBuilder struct {
	idx *FareIndex
}

// NewFareIndexBuilder creates an empty builder
func NewFareIndexBuilder() *FareIndexBuilder {
	return &FareIndexBuilder{idx: &FareIndex{fares: map[string][]model.FareInfo{}}}
}

// Add appends f under f.ItineraryID. Adding after Freeze panics.
func (b *FareIndexBuilder) Add(f model.FareInfo) {
	if b.idx == nil {
		panic("normalizer: FareIndexBuilder used after Freeze")
	}
	if _, ok := b.idx.fares[f.ItineraryID]; !ok {
		b.idx.ids = append(b.idx.ids, f.ItineraryID)
	}
	b.idx.fares[f.ItineraryID] = append(b.idx.fares[f.ItineraryID], f)
}

// Freeze returns the built index and invalidates the builder.
func (b *FareIndexBuilder) Freeze() *FareIndex {
	idx := b.idx
	b.idx = nil
	return idx
}

// Lookup returns a copy of the fares for id. ok is false when id has none.
func (x *FareIndex) Lookup(id string) ([]model.FareInfo, bool) {
	fares, ok := x.fares[id]
	if !ok || len(fares) == 0 {
		return nil, false
	}
	out := make([]model.FareInfo, len(fares))
	copy(out, fares)
	return out, true
}

// Len returns the number of itinerary ids with at least one fare.
func (x *FareIndex) Len() int { return len(x.ids) }

// IDs returns the indexed itinerary ids in first-seen order.
func (x *FareIndex) IDs() []string {
	out := make([]string, len(x.ids))
	copy(out, x.ids)
	return out
}

// BuildFareIndex flattens the fare groups and indexes available fares.
func BuildFareIndex(groups []jetblue.RawFareGroup, opts Options, warnings *WarningAggregator) (*FareIndex, error) {
	b := NewFareIndexBuilder()
	for g, group := range groups {
		for i, bundle := range group.BundleList {
			fare, ok, err := decodeFare(bundle, opts, warnings)
			if err != nil {
				return nil, &FareError{Group: g, Bundle: i, Err: err}
			}
			if !ok {
				continue
			}
			b.Add(fare)
		}
	}
	return b.Freeze(), nil
}

// decodeFare reports ok=false for bundles that are not purchasable.
func decodeFare(bundle jetblue.RawBundle, opts Options, warnings *WarningAggregator) (model.FareInfo, bool, error) {
	id := bundle.ItineraryID.String()
	status, err := model.ParseFareStatus(bundle.Status.Ptr())
	if err != nil {
		var unknown *model.UnknownFareStatusError
		if !errors.As(err, &unknown) {
			return model.FareInfo{}, false, err
		}
		unknown.ItineraryID = id
		if opts.UnknownStatus != StatusDegrade {
			return model.FareInfo{}, false, unknown
		}
		warnings.Add(WarningUnknownFareStatus, fmt.Sprintf("%s=%s", id, unknown.Value))
		status = model.FareStatusUnknown
	}
	if status != model.FareStatusAvailable {
		return model.FareInfo{}, false, nil
	}

	fare := model.FareInfo{
		ItineraryID: id,
		Price:       utils.ParsePrice(bundle.Price.Ptr()),
		Code:        bundle.Code.String(),
		CabinClass:  utils.ParseCabinClass(bundle.CabinClass.Ptr()),
		Refundable:  utils.ParseRefundable(bundle.Refundable.Ptr()),
		Status:      status,
	}
	if fare.Price == nil {
		warnings.Add(WarningNoPrice, id)
	}
	return fare, true, nil
}
