package septa

import (
	"encoding/json"
	"time"

	"github.com/mini-septa/poller/internal/septa/catalog"
	"github.com/mini-septa/poller/internal/septa/decode"
)

// fields reads one JSON object field by field. The first failure is kept
// and every later read becomes a no-op, so a record decoder can read all of
// its fields and check err once at the end.
type fields struct {
	raw map[string]json.RawMessage
	err error
}

func newFields(data []byte) (*fields, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, &decode.Error{Value: "null", Expected: "an object"}
	}
	return &fields{raw: raw}, nil
}

func (f *fields) fail(key string, err error) {
	if f.err == nil {
		f.err = decode.WithField(key, err)
	}
}

func (f *fields) required(key string) (json.RawMessage, bool) {
	if f.err != nil {
		return nil, false
	}
	raw, ok := f.raw[key]
	if !ok {
		f.err = decode.Missing(key)
		return nil, false
	}
	return raw, true
}

func (f *fields) str(key string) string {
	raw, ok := f.required(key)
	if !ok {
		return ""
	}
	var s string
	if decode.IsNull(raw) {
		f.fail(key, &decode.Error{Value: "null", Expected: "a string"})
	} else if err := json.Unmarshal(raw, &s); err != nil {
		f.fail(key, &decode.Error{Value: string(raw), Expected: "a string", Err: err})
	}
	return s
}

// optStr accepts a string, null or a missing key.
func (f *fields) optStr(key string) *string {
	if f.err != nil || decode.IsNull(f.raw[key]) {
		return nil
	}
	var s string
	if err := json.Unmarshal(f.raw[key], &s); err != nil {
		f.fail(key, &decode.Error{Value: string(f.raw[key]), Expected: "a string or null", Err: err})
		return nil
	}
	return &s
}

// parsed reads a string field and converts it with parse.
func parsed[T any](f *fields, key string, parse func(string) (T, error)) T {
	var zero T
	s := f.str(key)
	if f.err != nil {
		return zero
	}
	v, err := parse(s)
	if err != nil {
		f.fail(key, err)
		return zero
	}
	return v
}

func (f *fields) stop(key string) catalog.Stop {
	return catalog.ResolveStop(f.str(key))
}

// optStop yields nil for null or a missing key.
func (f *fields) optStop(key string) *catalog.Stop {
	if f.err != nil {
		return nil
	}
	stop, err := catalog.DecodeOptionalStop(f.raw[key])
	if err != nil {
		f.fail(key, err)
		return nil
	}
	return stop
}

func (f *fields) line(key string) catalog.Line {
	return parsed(f, key, catalog.ParseLine)
}

func (f *fields) service(key string) catalog.ServiceType {
	return catalog.ParseServiceType(f.str(key))
}

func (f *fields) dateTime(key string) time.Time {
	return parsed(f, key, decode.ParseDateTime)
}

// optNumber decodes a JSON number into T. Null and a
// missing key leave the result nil.
func optNumber[T int | float64](f *fields, key string) *T {
	if f.err != nil || decode.IsNull(f.raw[key]) {
		return nil
	}
	var v T
	if err := json.Unmarshal(f.raw[key], &v); err != nil {
		f.fail(key, &decode.Error{Value: string(f.raw[key]), Expected: "a number", Err: err})
		return nil
	}
	return &v
}
