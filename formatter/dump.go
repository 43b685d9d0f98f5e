package formatter

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes a go-spew rendering of v.
func Dump(w io.Writer, v any) {
	dumpConfig.Fdump(w, v)
}

// Sdump returns the go-spew rendering of v.
func Sdump(v any) string {
	return dumpConfig.Sdump(v)
}
