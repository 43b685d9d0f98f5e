package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/jetblue-fares/jetblue"
	"github.com/theoremus-urban-solutions/jetblue-fares/model"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: " JSON ", want: FormatJSON},
		{in: "dump", want: FormatDump},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildJSON(t *testing.T) {
	b, err := BuildJSON(model.RoundTrip{Outbound: []model.Itinerary{connection()}})
	require.NoError(t, err)

	var doc struct {
		Outbound []map[string]any `json:"outbound"`
		Inbound  []map[string]any `json:"inbound"`
	}
	require.NoError(t, json.Unmarshal(b, &doc))
	require.Len(t, doc.Outbound, 1)
	assert.NotNil(t, doc.Inbound)
	assert.Empty(t, doc.Inbound)

	it := doc.Outbound[0]
	assert.Equal(t, "IT2", it["id"])
	assert.Equal(t, "2022-06-02T22:00:00-04:00", it["depart"])

	segs := it["segments"].([]any)
	require.Len(t, segs, 2)
	first := segs[0].(map[string]any)
	assert.Equal(t, "PT1H15M", first["duration"])
	assert.Equal(t, "PT1H30M", first["layover"])
	_, hasLayover := segs[1].(map[string]any)["layover"]
	assert.False(t, hasLayover)

	fare := it["fares"].([]any)[0].(map[string]any)
	assert.Equal(t, "available", fare["status"])
	_, hasPrice := fare["price"]
	assert.False(t, hasPrice, "missing price is omitted")
}

func TestWriteFormats(t *testing.T) {
	rt := model.RoundTrip{Outbound: []model.Itinerary{nonstop()}}

	var text bytes.Buffer
	require.NoError(t, Write(&text, FormatText, rt))
	assert.True(t, strings.HasPrefix(text.String(), "JFK 08:00 ✈ 3:00 ✈ MIA 11:00"))

	var js bytes.Buffer
	require.NoError(t, Write(&js, FormatJSON, rt))
	assert.True(t, json.Valid(js.Bytes()))

	var dump bytes.Buffer
	require.NoError(t, Write(&dump, FormatDump, rt))
	assert.Contains(t, dump.String(), `ID: (string) (len=3) "IT1"`)
	assert.Contains(t, dump.String(), "available")

	assert.Error(t, Write(&text, Format("yaml"), rt))
}

func TestSdump(t *testing.T) {
	out := Sdump(model.FareInfo{Code: "BLUE"})
	assert.Contains(t, out, `Code: (string) (len=4) "BLUE"`)
	assert.Contains(t, out, "Price: (*float64)(<nil>)")
	assert.NotContains(t, out, "0xc", "pointer addresses are hidden")
}

func TestWriteEstimate(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2022, 6, d, 0, 0, 0, 0, time.UTC) }
	resp := &jetblue.EstimateResponse{
		CurrencyCode: "USD",
		OutboundFares: []jetblue.FareEstimate{
			{Date: day(1), Amount: 89},
			{Date: day(2), Amount: 104.5},
		},
		InboundFares: []jetblue.FareEstimate{
			{Date: day(2), Amount: 99},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteEstimate(&buf, resp))
	assert.Equal(t,
		"date \toutbound \tinbound\n"+
			"2022-06-01 \t$89 \t--\n"+
			"2022-06-02 \t$104.5 \t$99\n",
		buf.String())
}
