package tabular

import (
	"bytes"
	"encoding/json"
)

// Stream is one discoverable, readable sheet. It owns the clean sheet's
// headers and rows, computes its schema once at construction and produces
// records on demand.
type Stream struct {
	name    string
	headers []string
	rows    [][]any
	schema  Schema
}

// NewStream wraps a normalized sheet under the given stream name.
func NewStream(name string, sheet CleanSheet) *Stream {
	return &Stream{
		name:    name,
		headers: sheet.Headers,
		rows:    sheet.Rows,
		schema:  InferSchema(sheet.Headers, sheet.Rows),
	}
}

func (s *Stream) Name() string {
	return s.name
}

// Schema returns the schema inferred at construction.
func (s *Stream) Schema() Schema {
	return s.schema
}

// ReadRecords invokes fn for every row in order, building each record on
// demand. Rows shorter than the header list read as absent in the missing
// positions. Iteration stops at the first error from fn.
func (s *Stream) ReadRecords(fn func(Record) error) error {
	for _, row := range s.rows {
		values := make(map[string]any, len(s.headers))

		for i, header := range s.headers {
			var v any
			if i < len(row) {
				v = row[i]
			}

			values[header] = Encode(v)
		}

		if err := fn(Record{keys: s.headers, values: values}); err != nil {
			return err
		}
	}

	return nil
}

// Record is one emitted row: a mapping from header to JSON-safe value that
// marshals in header order.
type Record struct {
	keys   []string
	values map[string]any
}

// Get returns the value stored under key, and whether the key is present.
func (r Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the record's keys in header order.
func (r Record) Keys() []string {
	return r.keys
}

// MarshalJSON writes the record as a JSON object whose members appear in
// header order. encoding/json marshals maps with sorted keys, so the ordering
// has to be done by hand.
func (r Record) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer

	b.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			b.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}

		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')

	return b.Bytes(), nil
}

// Logf is the observer hook handed to BuildStreams. The orchestrator reports
// skipped sheets and per-stream shape through it rather than through any
// process-wide logger.
type Logf func(format string, args ...any)

// BuildStreams runs every raw sheet through normalization, in the order
// supplied, and constructs one Stream per surviving sheet. Sheets that
// normalize to nothing are logged and excluded. When convertNames is set the
// stream name is the normalized sheet name, otherwise the display name is
// used verbatim.
func BuildStreams(sheets []RawSheet, convertNames bool, logf Logf) []*Stream {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	streams := make([]*Stream, 0, len(sheets))

	for _, raw := range sheets {
		clean, ok := NormalizeSheet(raw, convertNames)
		if !ok {
			logf("skipping sheet '%s': no usable header row", raw.Name)
			continue
		}

		name := clean.Name
		if convertNames {
			name = NormalizeName(name)
		}

		streams = append(streams, NewStream(name, clean))

		logf("stream '%s': %d columns, %d rows", name, len(clean.Headers), len(clean.Rows))
	}

	return streams
}
