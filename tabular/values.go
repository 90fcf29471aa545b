package tabular

import (
	"fmt"
	"time"
)

// Cells are plain Go values: nil marks an absent cell, and bool, int, int64,
// float64, string, Date, Clock and time.Time are the recognised kinds. A
// time.Time cell is a full datetime; Date and Clock carry the date-only and
// time-of-day variants that spreadsheet backends distinguish.
type (
	// Date is a calendar date with no time component.
	Date time.Time

	// Clock is a time of day with no date component.
	Clock time.Time
)

// JSON Schema primitive types assigned by Classify.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// JSON Schema format tags for temporal cells.
const (
	FormatDate     = "date"
	FormatTime     = "time"
	FormatDateTime = "date-time"
)

// Encode maps a cell value to its JSON-safe form. Absent cells become JSON
// null, temporal cells become their ISO-8601 text (no timezone offset), and
// booleans, integers, floats and strings pass through unchanged. Anything
// else is rendered as its display string.
func Encode(v any) any {
	switch cell := v.(type) {
	case nil:
		return nil
	case Date:
		return time.Time(cell).Format("2006-01-02")
	case Clock:
		return time.Time(cell).Format("15:04:05")
	case time.Time:
		return cell.Format("2006-01-02T15:04:05")
	case bool, int, int64, float64, string:
		return cell
	default:
		return fmt.Sprintf("%v", cell)
	}
}

// Classify maps a cell value to its JSON Schema type and optional format tag.
// Absent cells classify as string so that missing data never forces a column
// type. The boolean case is ordered ahead of the numeric ones: source type
// systems routinely model booleans as integers and the classification must
// not collapse them.
func Classify(v any) (jsonType string, format string) {
	switch v.(type) {
	case nil:
		return TypeString, ""
	case bool:
		return TypeBoolean, ""
	case int, int64:
		return TypeInteger, ""
	case float64:
		return TypeNumber, ""
	case Date:
		return TypeString, FormatDate
	case Clock:
		return TypeString, FormatTime
	case time.Time:
		return TypeString, FormatDateTime
	default:
		return TypeString, ""
	}
}
