// Package tabular normalizes raw spreadsheet data - ragged rows, blank
// trailing columns, duplicate or accented headers, mixed cell types - into
// streams of JSON-safe records with an inferred schema.
package tabular

import (
	"fmt"
	"strings"
)

// RawSheet is unnormalized tabular data as handed off by a document backend:
// the sheet name, the first row as raw header cells and the remaining rows as
// cell-value arrays of possibly uneven length. Backends hand these off fully
// materialized; the core never mutates them.
type RawSheet struct {
	Name   string
	Header []any
	Rows   [][]any
}

// CleanSheet is normalized tabular data ready for streaming. Headers are
// unique and non-empty; rows may still be shorter than the header list, in
// which case the missing cells read as absent.
type CleanSheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// TrimTrailingColumns removes trailing columns where the header is blank and
// every row is absent at that index, scanning from the last column backward
// and stopping at the first column that fails either condition. Rows are
// truncated to the kept width. An empty header list is returned unchanged.
func TrimTrailingColumns(headers []string, rows [][]any) ([]string, [][]any) {
	if len(headers) == 0 {
		return headers, rows
	}

	last := len(headers) - 1
	for last >= 0 {
		if strings.TrimSpace(headers[last]) != "" {
			break
		}

		blank := true
		for _, row := range rows {
			if last < len(row) && row[last] != nil {
				blank = false
				break
			}
		}

		if !blank {
			break
		}

		last--
	}

	// rows are always truncated to the kept width - the backends can hand
	// off ragged rows longer than the header row
	cut := last + 1

	trimmed := make([][]any, len(rows))
	for i, row := range rows {
		if len(row) > cut {
			trimmed[i] = row[:cut]
		} else {
			trimmed[i] = row
		}
	}

	return headers[:cut], trimmed
}

// FilterEmptyRows keeps a row iff at least one of its cells is non-absent.
// Order is preserved.
func FilterEmptyRows(rows [][]any) [][]any {
	filtered := make([][]any, 0, len(rows))

	for _, row := range rows {
		for _, v := range row {
			if v != nil {
				filtered = append(filtered, row)
				break
			}
		}
	}

	return filtered
}

// NormalizeSheet turns one raw sheet into a CleanSheet: the header row is
// coerced to strings (absent cells read as ""), trailing blank columns are
// trimmed, fully-empty rows are dropped, headers are optionally run through
// NormalizeName and always deduplicated last so suffixes are computed on the
// final identifier form. The sheet's display name is carried over untouched.
//
// ok is false when the trimmed header list is empty - the sheet contributes
// no stream.
func NormalizeSheet(raw RawSheet, convertNames bool) (sheet CleanSheet, ok bool) {
	headers := make([]string, len(raw.Header))
	for i, v := range raw.Header {
		headers[i] = headerText(v)
	}

	headers, rows := TrimTrailingColumns(headers, raw.Rows)
	if len(headers) == 0 {
		return CleanSheet{}, false
	}

	rows = FilterEmptyRows(rows)

	if convertNames {
		for i, h := range headers {
			headers[i] = NormalizeName(h)
		}
	}

	return CleanSheet{
		Name:    raw.Name,
		Headers: DeduplicateHeaders(headers),
		Rows:    rows,
	}, true
}

func headerText(v any) string {
	switch cell := v.(type) {
	case nil:
		return ""
	case string:
		return cell
	default:
		return fmt.Sprintf("%v", cell)
	}
}
