package jetblue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		set  bool
		want string
	}{
		{name: "string", json: `"210.50"`, set: true, want: "210.50"},
		{name: "empty string", json: `""`, set: true, want: ""},
		{name: "number", json: `180`, set: true, want: "180"},
		{name: "negative float", json: `-1.5`, set: true, want: "-1.5"},
		{name: "true", json: `true`, set: true, want: "true"},
		{name: "false", json: `false`, set: true, want: "false"},
		{name: "null", json: `null`},
		{name: "object", json: `{"a":1}`},
		{name: "array", json: `[1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				F Scalar `json:"f"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"f":`+tt.json+`}`), &v))
			assert.Equal(t, tt.set, v.F.IsSet())
			assert.Equal(t, tt.want, v.F.String())
			if !tt.set {
				assert.Nil(t, v.F.Ptr())
			}
		})
	}
}

func TestScalarMissingField(t *testing.T) {
	var v struct {
		F Scalar `json:"f"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &v))
	assert.False(t, v.F.IsSet())
}

func TestScalarMarshal(t *testing.T) {
	b, err := json.Marshal(struct {
		A Scalar `json:"a"`
		B Scalar `json:"b"`
	}{A: S("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x","b":null}`, string(b))
}
