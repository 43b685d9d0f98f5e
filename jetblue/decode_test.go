package jetblue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("..", "testdata", name))
	require.NoError(t, err)
	return b
}

func TestDecodeFixture(t *testing.T) {
	p, err := Decode(readFixture(t, "outbound.json"))
	require.NoError(t, err)

	assert.Equal(t, "USD", p.Currency.String())
	assert.Equal(t, "US", p.CountryCode.String())
	assert.Equal(t, "false", p.IsTransatlanticRoute.String())
	require.Len(t, p.FareGroup, 2)
	assert.Len(t, p.FareGroup[0].BundleList, 4)
	require.Len(t, p.Itinerary, 4)

	seg := p.Itinerary[0].Segments[0]
	assert.Equal(t, "0", seg.Stops.String(), "numeric stops keep their text")
	assert.Equal(t, "PT3H0M", seg.Duration.String())
	assert.False(t, seg.Layover.IsSet())
	assert.NotEmpty(t, p.StopsFilter)
}

func TestDecodeInboundWithoutCountryCode(t *testing.T) {
	p, err := Decode(readFixture(t, "inbound.json"))
	require.NoError(t, err)
	assert.False(t, p.CountryCode.IsSet())
	assert.Equal(t, "180", p.FareGroup[0].BundleList[0].Price.String())
}

func TestDecodeShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		path string
	}{
		{
			name: "not an object",
			body: `[1, 2]`,
			path: "$",
		},
		{
			name: "invalid json",
			body: `{"currency":`,
			path: "$",
		},
		{
			name: "missing fareGroup",
			body: `{"currency":"USD","itinerary":[],"isTransatlanticRoute":false}`,
			path: "$.fareGroup",
		},
		{
			name: "null itinerary",
			body: `{"currency":"USD","fareGroup":[],"itinerary":null,"isTransatlanticRoute":false}`,
			path: "$.itinerary",
		},
		{
			name: "missing currency",
			body: `{"fareGroup":[],"itinerary":[],"isTransatlanticRoute":false}`,
			path: "$.currency",
		},
		{
			name: "fareGroup is an object",
			body: `{"currency":"USD","fareGroup":{},"itinerary":[],"isTransatlanticRoute":false}`,
			path: "$.fareGroup",
		},
		{
			name: "bundleList is a string",
			body: `{"currency":"USD","fareGroup":[{"bundleList":"nope"}],"itinerary":[],"isTransatlanticRoute":false}`,
			path: "$.fareGroup.bundleList",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.body))
			require.Error(t, err)
			assert.True(t, IsShape(err))
			var shape *ShapeError
			require.ErrorAs(t, err, &shape)
			assert.Equal(t, tt.path, shape.Path)
		})
	}
}

func TestDecodeIgnoresUnknownAndOptionalFields(t *testing.T) {
	body := `{"currency":"USD","fareGroup":[],"itinerary":[{"id":"X","extra":{"a":1}}],"isTransatlanticRoute":true,"brandNew":42}`
	p, err := Decode([]byte(body))
	require.NoError(t, err)
	require.Len(t, p.Itinerary, 1)
	assert.Equal(t, "X", p.Itinerary[0].ID.String())
	assert.False(t, p.CountryCode.IsSet())
}

func TestDecodePuppetResponse(t *testing.T) {
	body := `{"outbound":` + string(readFixture(t, "outbound.json")) + `,"inbound":` + string(readFixture(t, "inbound.json")) + `}`
	resp, err := DecodePuppetResponse([]byte(body))
	require.NoError(t, err)
	assert.Len(t, resp.Outbound.Itinerary, 4)
	assert.Len(t, resp.Inbound.Itinerary, 2)

	_, err = DecodePuppetResponse([]byte(`{"outbound":` + string(readFixture(t, "outbound.json")) + `}`))
	var shape *ShapeError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "$.inbound", shape.Path)

	_, err = DecodePuppetResponse([]byte(`{"outbound":{"currency":"USD"},"inbound":{}}`))
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "$.outbound.fareGroup", shape.Path)
}

func TestPretty(t *testing.T) {
	out, err := Pretty([]byte(`{"b":1,"a":{"d":2,"c":3}}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"a\": {\n        \"c\": 3,\n        \"d\": 2\n    },\n    \"b\": 1\n}", string(out))

	_, err = Pretty([]byte(`{`))
	assert.Error(t, err)
}
