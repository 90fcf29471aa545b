package sources

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"google.golang.org/api/drive/v3"

	"github.com/sheetstream/sheetstream/tabular"
)

// XLSXProvider downloads a packaged spreadsheet document from Drive and
// parses it in memory.
type XLSXProvider struct {
	gdrive *drive.Service
	file   string
}

func (p *XLSXProvider) Sheets(ctx context.Context) ([]tabular.RawSheet, error) {
	workbook, err := p.download(ctx)
	if err != nil {
		return nil, err
	}

	defer workbook.Close()

	return parseWorkbook(workbook)
}

func (p *XLSXProvider) SheetCount(ctx context.Context) (int, error) {
	workbook, err := p.download(ctx)
	if err != nil {
		return 0, err
	}

	defer workbook.Close()

	return len(workbook.GetSheetList()), nil
}

func (p *XLSXProvider) download(ctx context.Context) (*excelize.File, error) {
	response, err := p.gdrive.Files.Get(p.file).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("unable to download spreadsheet (%v)", err)
	}

	defer response.Body.Close()

	workbook, err := excelize.OpenReader(response.Body)
	if err != nil {
		return nil, fmt.Errorf("invalid XLSX document (%v)", err)
	}

	return workbook, nil
}

// parseWorkbook extracts every sheet of the workbook, in workbook order, as a
// raw sheet. The first row is kept as the raw header; data cells are coerced
// to typed values.
func parseWorkbook(workbook *excelize.File) ([]tabular.RawSheet, error) {
	names := workbook.GetSheetList()
	raw := make([]tabular.RawSheet, 0, len(names))

	for _, name := range names {
		rows, err := workbook.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("unable to read sheet '%s' (%v)", name, err)
		}

		sheet := tabular.RawSheet{Name: name}

		if len(rows) > 0 {
			sheet.Header = make([]any, len(rows[0]))
			for i, cell := range rows[0] {
				sheet.Header[i] = cell
			}

			for _, row := range rows[1:] {
				cells := make([]any, len(row))
				for i, cell := range row {
					cells[i] = parseCell(cell)
				}

				sheet.Rows = append(sheet.Rows, cells)
			}
		}

		raw = append(raw, sheet)
	}

	return raw, nil
}

// Display-string layouts produced by common workbook number formats, tried
// most-specific first.
var (
	datetimeLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"01-02-06 15:04",
		"1/2/06 15:04",
	}

	dateLayouts = []string{
		"2006-01-02",
		"01-02-06",
		"1/2/2006",
		"1/2/06",
	}

	clockLayouts = []string{
		"15:04:05",
		"15:04",
	}
)

// parseCell coerces a cell's display string to a typed value: boolean,
// integer, float, datetime, date or time of day, falling back to the string
// itself. Empty strings read as absent.
func parseCell(cell string) any {
	if cell == "" {
		return nil
	}

	switch cell {
	case "TRUE":
		return true
	case "FALSE":
		return false
	}

	if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}

	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return tabular.Date(t)
		}
	}

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return tabular.Clock(t)
		}
	}

	return cell
}
