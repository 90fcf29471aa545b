package sources

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/sheetstream/sheetstream/tabular"
)

// NativeProvider reads a native Google Sheets document through the Sheets
// API: one metadata fetch for the sheet titles, then one whole-range values
// fetch per sheet.
type NativeProvider struct {
	google      *sheets.Service
	spreadsheet string
}

func (p *NativeProvider) Sheets(ctx context.Context) ([]tabular.RawSheet, error) {
	spreadsheet, err := p.google.Spreadsheets.Get(p.spreadsheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to fetch spreadsheet (%v)", err)
	}

	raw := make([]tabular.RawSheet, 0, len(spreadsheet.Sheets))

	for _, sheet := range spreadsheet.Sheets {
		title := sheet.Properties.Title

		response, err := p.google.Spreadsheets.Values.Get(p.spreadsheet, title).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve data from sheet '%s' (%v)", title, err)
		}

		raw = append(raw, nativeSheet(title, response.Values))
	}

	return raw, nil
}

func (p *NativeProvider) SheetCount(ctx context.Context) (int, error) {
	spreadsheet, err := p.google.Spreadsheets.Get(p.spreadsheet).Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("unable to fetch spreadsheet (%v)", err)
	}

	return len(spreadsheet.Sheets), nil
}

// nativeSheet shapes one values response into a raw sheet. The values API
// truncates trailing empty cells, so data rows shorter than the header are
// padded with absent cells to the header width. Sheets with no values at all
// come back header-less and are skipped downstream.
func nativeSheet(title string, values [][]any) tabular.RawSheet {
	sheet := tabular.RawSheet{Name: title}

	if len(values) == 0 {
		return sheet
	}

	sheet.Header = values[0]
	width := len(values[0])

	for _, row := range values[1:] {
		if len(row) < width {
			padded := make([]any, width)
			copy(padded, row)
			row = padded
		}

		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet
}
