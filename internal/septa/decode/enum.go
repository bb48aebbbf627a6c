package decode

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Table maps the accepted spellings of a closed vocabulary to its values.
// Names are compared after trimming and ignoring letter case; when two values
// register the same name, the one added first wins.
//
// A Table is built once and only read afterwards, so it is safe for
// concurrent use once construction has finished.
type Table[T any] struct {
	index  map[string]T
	values []T
}

// NewTable returns an empty Table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{index: make(map[string]T)}
}

// Add registers value under each of names.
func (t *Table[T]) Add(value T, names ...string) *Table[T] {
	t.values = append(t.values, value)
	for _, name := range names {
		key := normalize(name)
		if _, exists := t.index[key]; !exists {
			t.index[key] = value
		}
	}
	return t
}

// Lookup resolves text to a value.
func (t *Table[T]) Lookup(text string) (T, bool) {
	v, ok := t.index[normalize(text)]
	return v, ok
}

// Values returns the registered values in declaration order.
func (t *Table[T]) Values() []T {
	out := make([]T, len(t.values))
	copy(out, t.values)
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Enum decodes text against table. When nothing matches, fallback receives
// the trimmed text and supplies the value; a nil fallback turns unmatched
// text into an *Error.
func Enum[T any](text string, table *Table[T], fallback func(string) T) (T, error) {
	if v, ok := table.Lookup(text); ok {
		return v, nil
	}
	if fallback != nil {
		return fallback(strings.TrimSpace(text)), nil
	}

	var zero T
	return zero, &Error{Value: text, Expected: "a known enumeration value"}
}

// OptionalEnum decodes a raw JSON field that may be null or missing. Both
// yield a nil value; anything else must be a JSON string decodable by Enum.
func OptionalEnum[T any](raw json.RawMessage, table *Table[T], fallback func(string) T) (*T, error) {
	if IsNull(raw) {
		return nil, nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil, &Error{Value: string(raw), Expected: "a string or null", Err: err}
	}

	v, err := Enum(text, table, fallback)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// IsNull reports whether raw is absent or the JSON literal null.
func IsNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
