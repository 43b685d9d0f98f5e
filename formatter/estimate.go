package formatter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/theoremus-urban-solutions/jetblue-fares/jetblue"
	"github.com/theoremus-urban-solutions/jetblue-fares/utils"
)

// WriteEstimate prints one row per outbound day with the inbound fare for the
// same day, or -- when there is none.
func WriteEstimate(w io.Writer, resp *jetblue.EstimateResponse) error {
	inbound := make(map[string]jetblue.FareEstimate, len(resp.InboundFares))
	for _, f := range resp.InboundFares {
		inbound[f.Date.Format(utils.DateLayout)] = f
	}
	if _, err := fmt.Fprintln(w, "date \toutbound \tinbound"); err != nil {
		return err
	}
	for _, f := range resp.OutboundFares {
		day := f.Date.Format(utils.DateLayout)
		in := "--"
		if v, ok := inbound[day]; ok {
			in = "$" + formatAmount(v.Amount)
		}
		if _, err := fmt.Fprintf(w, "%s \t$%s \t%s\n", day, formatAmount(f.Amount), in); err != nil {
			return err
		}
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
