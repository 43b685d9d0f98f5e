package jetblue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ShapeError reports a payload whose structure cannot be normalized
type ShapeError struct {
	Path    string
	Message string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("payload shape error at %s: %s", e.Path, e.Message)
}

// IsShape checks if an error is a ShapeError
func IsShape(err error) bool {
	var target *ShapeError
	return errors.As(err, &target)
}

// presence mirrors the required top-level keys of RawPayload
type presence struct {
	Currency             *json.RawMessage `json:"currency" validate:"required"`
	FareGroup            *json.RawMessage `json:"fareGroup" validate:"required"`
	Itinerary            *json.RawMessage `json:"itinerary" validate:"required"`
	IsTransatlanticRoute *json.RawMessage `json:"isTransatlanticRoute" validate:"required"`
}

var shapeValidator = newShapeValidator()

func newShapeValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode parses one LFS response body. Unknown fields are ignored; missing
// required keys and wrongly typed sequences are reported as *ShapeError.
func Decode(body []byte) (*RawPayload, error) {
	return decodeAt("$", body)
}

// DecodePuppetResponse parses a document of the form {"outbound": ..., "inbound": ...}.
func DecodePuppetResponse(body []byte) (*PuppetResponse, error) {
	var parts map[string]json.RawMessage
	if err := json.Unmarshal(body, &parts); err != nil {
		return nil, &ShapeError{Path: "$", Message: "expected a JSON object"}
	}
	resp := &PuppetResponse{}
	for _, dir := range []string{"outbound", "inbound"} {
		raw, ok := parts[dir]
		if !ok || isNull(raw) {
			return nil, &ShapeError{Path: "$." + dir, Message: "missing required field"}
		}
		p, err := decodeAt("$."+dir, raw)
		if err != nil {
			return nil, err
		}
		if dir == "outbound" {
			resp.Outbound = p
		} else {
			resp.Inbound = p
		}
	}
	return resp, nil
}

func decodeAt(root string, body []byte) (*RawPayload, error) {
	var keys presence
	if err := json.Unmarshal(body, &keys); err != nil {
		return nil, shapeFromJSON(root, err)
	}
	if err := shapeValidator.Struct(keys); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, &ShapeError{Path: root + "." + verrs[0].Field(), Message: "missing required field"}
		}
		return nil, &ShapeError{Path: root, Message: err.Error()}
	}
	if !isArray(*keys.FareGroup) {
		return nil, &ShapeError{Path: root + ".fareGroup", Message: "expected an array"}
	}
	if !isArray(*keys.Itinerary) {
		return nil, &ShapeError{Path: root + ".itinerary", Message: "expected an array"}
	}

	var p RawPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, shapeFromJSON(root, err)
	}
	return &p, nil
}

func shapeFromJSON(root string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return &ShapeError{Path: root, Message: "expected a JSON object, got " + typeErr.Value}
		}
		return &ShapeError{Path: root + "." + typeErr.Field, Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ShapeError{Path: root, Message: fmt.Sprintf("invalid JSON at offset %d: %v", syntaxErr.Offset, err)}
	}
	return &ShapeError{Path: root, Message: "expected a JSON object"}
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Pretty re-indents a captured body with sorted keys, the format used when
// saving outbound.json and inbound.json.
func Pretty(body []byte) ([]byte, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("failed to decode body: %w", err)
	}
	return json.MarshalIndent(v, "", "    ")
}
