package septa

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mini-septa/poller/internal/septa/decode"
)

const (
	northboundKey = "Northbound"
	southboundKey = "Southbound"
)

// DecodeArrivals normalizes an Arrivals payload. The upstream wraps the
// result in an object whose only key is a human-readable title; its value
// is a list whose elements are either a {"Northbound": [...]} or
// {"Southbound": [...]} object, or an empty array standing in for a
// direction with no departures.
func DecodeArrivals(data []byte) (ArrivalsResult, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return ArrivalsResult{}, fmt.Errorf("failed to parse arrivals payload: %w", err)
	}
	if len(top) != 1 {
		return ArrivalsResult{}, &EnvelopeError{Kind: ErrTitleKeyCount, Detail: fmt.Sprintf("found %d keys", len(top))}
	}

	result := ArrivalsResult{
		Northbound: []Arrival{},
		Southbound: []Arrival{},
	}
	var body json.RawMessage
	for title, value := range top {
		result.Title = title
		body = value
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil || elements == nil {
		return ArrivalsResult{}, &EnvelopeError{Kind: ErrElementShape, Detail: "title value is not an array", Err: err}
	}

	var haveNorth, haveSouth bool
	for i, element := range elements {
		// The array check must come first: an empty array is the "no data"
		// sentinel and would otherwise be reported as a malformed object.
		if isArray(element) {
			var inner []json.RawMessage
			if err := json.Unmarshal(element, &inner); err != nil {
				return ArrivalsResult{}, &EnvelopeError{Kind: ErrElementShape, Detail: fmt.Sprintf("element %d", i), Err: err}
			}
			if len(inner) > 0 {
				return ArrivalsResult{}, &EnvelopeError{Kind: ErrElementShape, Detail: fmt.Sprintf("element %d is a non-empty array", i)}
			}
			continue
		}

		if !isObject(element) {
			return ArrivalsResult{}, &EnvelopeError{Kind: ErrElementShape, Detail: fmt.Sprintf("element %d is neither an array nor an object", i)}
		}

		var directions map[string]json.RawMessage
		if err := json.Unmarshal(element, &directions); err != nil {
			return ArrivalsResult{}, &EnvelopeError{Kind: ErrElementShape, Detail: fmt.Sprintf("element %d", i), Err: err}
		}

		if raw, ok := directions[northboundKey]; ok {
			if haveNorth {
				return ArrivalsResult{}, &EnvelopeError{Kind: ErrDuplicateDirection, Detail: northboundKey}
			}
			haveNorth = true
			arrivals, err := decodeList[Arrival](raw)
			if err != nil {
				return ArrivalsResult{}, decode.WithField(northboundKey, err)
			}
			result.Northbound = append(result.Northbound, arrivals...)
		}

		if raw, ok := directions[southboundKey]; ok {
			if haveSouth {
				return ArrivalsResult{}, &EnvelopeError{Kind: ErrDuplicateDirection, Detail: southboundKey}
			}
			haveSouth = true
			arrivals, err := decodeList[Arrival](raw)
			if err != nil {
				return ArrivalsResult{}, decode.WithField(southboundKey, err)
			}
			result.Southbound = append(result.Southbound, arrivals...)
		}
	}

	return result, nil
}

// decodeList decodes a JSON array element by element so a failure names
// the index it occurred at. Null decodes as an empty list.
func decodeList[T any](data []byte) ([]T, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, &decode.Error{Value: abbreviate(data), Expected: "an array", Err: err}
	}

	out := make([]T, 0, len(elements))
	for i, element := range elements {
		var v T
		if err := json.Unmarshal(element, &v); err != nil {
			return nil, decode.WithField(fmt.Sprintf("[%d]", i), err)
		}
		out = append(out, v)
	}
	return out, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func abbreviate(data []byte) string {
	const limit = 64
	s := string(bytes.TrimSpace(data))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
