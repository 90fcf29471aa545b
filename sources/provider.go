// Package sources resolves a spreadsheet document to its backend and hands
// the core fully materialized raw sheets: native Google Sheets go through the
// Sheets API, packaged XLSX documents are downloaded from Drive and parsed in
// memory.
package sources

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/sheetstream/sheetstream/tabular"
)

// Document MIME types recognised by the router.
const (
	MimeXLSX        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeGoogleSheet = "application/vnd.google-apps.spreadsheet"
)

// Scopes are the OAuth2 scopes requested for the service account.
var Scopes = []string{
	drive.DriveReadonlyScope,
	sheets.SpreadsheetsReadonlyScope,
}

// Provider hands off the raw sheets of one spreadsheet document. One
// implementation exists per backend; the core is agnostic to which was used.
type Provider interface {
	// Sheets returns every sheet of the document, in document order, fully
	// materialized.
	Sheets(ctx context.Context) ([]tabular.RawSheet, error)

	// SheetCount returns the number of sheets without fetching their data.
	SheetCount(ctx context.Context) (int, error)
}

// UnsupportedTypeError is returned when the document's MIME type matches
// neither backend. It is fatal to the invocation.
type UnsupportedTypeError struct {
	MIME string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported MIME type '%s'", e.MIME)
}

// Open authenticates with the service-account credentials in cfg, detects the
// document type via the Drive API and returns the matching provider.
func Open(ctx context.Context, cfg Config) (Provider, error) {
	creds, err := google.CredentialsFromJSON(ctx, []byte(cfg.CredentialsJSON), Scopes...)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials (%v)", err)
	}

	gdrive, err := drive.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%v)", err)
	}

	mime, err := detectMIME(ctx, gdrive, cfg.SpreadsheetID)
	if err != nil {
		return nil, err
	}

	switch mime {
	case MimeGoogleSheet:
		gsheets, err := sheets.NewService(ctx, option.WithCredentials(creds))
		if err != nil {
			return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
		}

		return &NativeProvider{google: gsheets, spreadsheet: cfg.SpreadsheetID}, nil

	case MimeXLSX:
		return &XLSXProvider{gdrive: gdrive, file: cfg.SpreadsheetID}, nil

	default:
		return nil, &UnsupportedTypeError{MIME: mime}
	}
}

func detectMIME(ctx context.Context, gdrive *drive.Service, fileID string) (string, error) {
	file, err := gdrive.Files.Get(fileID).Fields("mimeType").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to retrieve file metadata (%v)", err)
	}

	return file.MimeType, nil
}
