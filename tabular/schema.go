package tabular

// SchemaSampleSize caps the number of rows examined per column during schema
// inference. Rows beyond the cap never influence the inferred types.
const SchemaSampleSize = 1000

const draft07 = "http://json-schema.org/draft-07/schema#"

// Property is the inferred JSON Schema fragment for a single column. Type
// always carries a trailing "null" arm - any cell may be absent regardless of
// the observed type.
type Property struct {
	Type   []string `json:"type"`
	Format string   `json:"format,omitempty"`
}

// Schema is a JSON-Schema draft-07 shaped document describing one stream's
// records.
type Schema struct {
	URI        string              `json:"$schema"`
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
}

// InferSchema builds a per-column schema from at most SchemaSampleSize rows.
// A column with a single observed JSON type keeps that type plus the last
// format tag seen; a column with no non-absent values, or with more than one
// observed type, falls back to a plain nullable string with no format.
func InferSchema(headers []string, rows [][]any) Schema {
	sample := rows
	if len(sample) > SchemaSampleSize {
		sample = sample[:SchemaSampleSize]
	}

	properties := make(map[string]Property, len(headers))

	for col, header := range headers {
		seen := map[string]bool{}
		format := ""

		for _, row := range sample {
			var v any
			if col < len(row) {
				v = row[col]
			}

			if v == nil {
				continue
			}

			t, f := Classify(v)
			seen[t] = true
			if f != "" {
				format = f
			}
		}

		properties[header] = property(seen, format)
	}

	return Schema{
		URI:        draft07,
		Type:       "object",
		Properties: properties,
	}
}

func property(seen map[string]bool, format string) Property {
	if len(seen) != 1 {
		// nothing observed, or mixed types - either way a nullable string
		// with no format hint
		return Property{Type: []string{TypeString, "null"}}
	}

	for t := range seen {
		return Property{Type: []string{t, "null"}, Format: format}
	}

	return Property{}
}
