package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/theoremus-urban-solutions/jetblue-fares/model"
)

// Format selects an output rendering
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatDump Format = "dump"
)

// ParseFormat maps a flag or config value to a Format. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatDump:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format: %q (want text|json|dump)", s)
}

// Write renders rt to w in the given format.
func Write(w io.Writer, format Format, rt model.RoundTrip) error {
	switch format {
	case FormatText, "":
		return WriteText(w, rt)
	case FormatJSON:
		b, err := BuildJSON(rt)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatDump:
		Dump(w, rt)
		return nil
	}
	return fmt.Errorf("unsupported format: %q", format)
}
