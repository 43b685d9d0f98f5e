package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/jetblue-fares/model"
	"github.com/theoremus-urban-solutions/jetblue-fares/utils"
)

const airplane = "✈"

// WriteText prints the outbound itineraries, a blank line, then the inbound ones.
func WriteText(w io.Writer, rt model.RoundTrip) error {
	if err := writeItineraries(w, rt.Outbound); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return writeItineraries(w, rt.Inbound)
}

func writeItineraries(w io.Writer, its []model.Itinerary) error {
	for _, it := range its {
		if _, err := fmt.Fprintln(w, SummaryLine(it)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "\t"+SegmentLine(it)); err != nil {
			return err
		}
	}
	return nil
}

// SummaryLine renders the itinerary endpoints, total elapsed time and one note per fare.
func SummaryLine(it model.Itinerary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s %s %s %s %s",
		it.Source,
		utils.FormatTime(it.Depart, utils.HourMinuteLayout),
		airplane, utils.FormatElapsed(it.TotalElapsed()), airplane,
		it.Destination,
		utils.FormatTime(it.Arrive, utils.HourMinuteLayout))
	for _, f := range it.Fares {
		b.WriteString(" ")
		b.WriteString(FareNote(f))
	}
	return b.String()
}

// FareNote renders a fare as [ $price code REFUNDABLE].
func FareNote(f model.FareInfo) string {
	return fmt.Sprintf("[ $%s %s %s]", formatPrice(f.Price), f.Code, utils.Ternary(f.Refundable, "REFUNDABLE", ""))
}

// SegmentLine renders every segment with its times, duration and following layover.
// The first departure and the final arrival carry the date, as does any arrival
// on a later day than its departure.
func SegmentLine(it model.Itinerary) string {
	parts := make([]string, 0, len(it.Segments))
	last := len(it.Segments) - 1
	for i, s := range it.Segments {
		departLayout := utils.Ternary(i == 0, utils.DateClockLayout, utils.ClockLayout)
		arriveLayout := utils.Ternary(i == last || !utils.SameDay(s.Depart, s.Arrive), utils.DateClockLayout, utils.ClockLayout)

		var b strings.Builder
		if i == 0 {
			b.WriteString(s.Source + " ")
		}
		fmt.Fprintf(&b, "%s %s %s %s %s %s",
			utils.FormatTime(s.Depart, departLayout),
			airplane, formatDuration(s.Duration), airplane,
			utils.FormatTime(s.Arrive, arriveLayout),
			s.Destination)
		if s.Layover != nil {
			fmt.Fprintf(&b, " [ %s ]", utils.FormatElapsed(*s.Layover))
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " ")
}

func formatPrice(p *float64) string {
	if p == nil {
		return "--"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func formatDuration(d *time.Duration) string {
	if d == nil {
		return "--"
	}
	return utils.FormatElapsed(*d)
}
