package normalizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Warning type constants
const (
	WarningUnknownFareStatus  = "unknown_fare_status"
	WarningNoPrice            = "no_price"
	WarningDuplicateItinerary = "duplicate_itinerary_id"
	WarningNoSegments         = "no_segments"
)

const maxWarningExamples = 3

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects soft issues found during a parse
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID. A nil aggregator discards it.
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w == nil {
		return
	}
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, maxWarningExamples),
		}
	}

	info := w.warnings[warningType]
	info.count++
	if len(info.examples) < maxWarningExamples {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns how many times warningType was recorded.
func (w *WarningAggregator) Count(warningType string) int {
	if w == nil || w.warnings[warningType] == nil {
		return 0
	}
	return w.warnings[warningType].count
}

// Examples returns up to three example ids recorded for warningType.
func (w *WarningAggregator) Examples(warningType string) []string {
	if w == nil || w.warnings[warningType] == nil {
		return nil
	}
	return append([]string(nil), w.warnings[warningType].examples...)
}

// Types returns the recorded warning types, sorted.
func (w *WarningAggregator) Types() []string {
	if w == nil {
		return nil
	}
	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Empty reports whether nothing was recorded.
func (w *WarningAggregator) Empty() bool {
	return w == nil || len(w.warnings) == 0
}

// LogAll outputs one consolidated entry per warning type
func (w *WarningAggregator) LogAll(logger logrus.FieldLogger, direction string) {
	for _, warningType := range w.Types() {
		info := w.warnings[warningType]
		logger.WithFields(logrus.Fields{
			"direction": direction,
			"warning":   warningType,
			"count":     info.count,
		}).Warn(w.formatWarningMessage(warningType, direction, info))
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType, direction string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningUnknownFareStatus:
		description = "fare bundles with an unrecognized status"
		action = "Treating them as unknown and dropping them"
	case WarningNoPrice:
		description = "available fares with no numeric price"
		action = "Keeping them without a price"
	case WarningDuplicateItinerary:
		description = "itinerary ids appearing more than once"
		action = "Keeping every occurrence"
	case WarningNoSegments:
		description = "itineraries with no segment detail"
		action = "Keeping them with an empty segment list"
	default:
		description = "unknown issue"
		action = "Continuing with fallback behavior"
	}

	return fmt.Sprintf("%s payload has %s (%d occurrences). %s. Examples: %s",
		direction, description, info.count, action, strings.Join(info.examples, ", "))
}
