package sheet

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const spreadsheetMIME = "application/vnd.google-apps.spreadsheet"

// GoogleBackend implements Backend over the Google Sheets v4 API. The
// Drive API is used only to find (or confirm the absence of) the
// spreadsheet by name.
type GoogleBackend struct {
	sheets        *sheets.Service
	spreadsheetID string
	sheetTitle    string
}

// Dial authenticates with the given service-account credentials file and
// opens the spreadsheet called name, creating it when it does not exist.
func Dial(ctx context.Context, credentialsFile, name string) (*GoogleBackend, error) {
	opts := []option.ClientOption{
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope, drive.DriveScope),
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	drv, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("drive client: %w", err)
	}
	return open(ctx, svc, drv, name)
}

// open locates the spreadsheet by name via Drive, creating it if absent,
// and resolves the first worksheet's title. Split from Dial so tests can
// inject mocked HTTP services.
func open(ctx context.Context, svc *sheets.Service, drv *drive.Service, name string) (*GoogleBackend, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escapeQueryValue(name), spreadsheetMIME)
	list, err := drv.Files.List().Q(query).Fields("files(id)").PageSize(1).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("find spreadsheet %q: %w", name, err)
	}

	var id string
	if len(list.Files) > 0 {
		id = list.Files[0].Id
	} else {
		created, err := svc.Spreadsheets.Create(&sheets.Spreadsheet{
			Properties: &sheets.SpreadsheetProperties{Title: name},
		}).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("create spreadsheet %q: %w", name, err)
		}
		id = created.SpreadsheetId
	}

	meta, err := svc.Spreadsheets.Get(id).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read spreadsheet metadata: %w", err)
	}
	if len(meta.Sheets) == 0 || meta.Sheets[0].Properties == nil {
		return nil, fmt.Errorf("spreadsheet %q has no worksheets", name)
	}

	return &GoogleBackend{
		sheets:        svc,
		spreadsheetID: id,
		sheetTitle:    meta.Sheets[0].Properties.Title,
	}, nil
}

// escapeQueryValue makes a string safe inside a single-quoted Drive
// query literal. Backslashes must be doubled before quotes are escaped.
func escapeQueryValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// SpreadsheetID returns the resolved spreadsheet identifier.
func (g *GoogleBackend) SpreadsheetID() string {
	return g.spreadsheetID
}

// RowValues reads a full row as strings. A row beyond the data range
// comes back empty, not as an error.
func (g *GoogleBackend) RowValues(ctx context.Context, row int) ([]string, error) {
	rng := fmt.Sprintf("%s!%d:%d", g.sheetTitle, row, row)
	resp, err := g.sheets.Spreadsheets.Values.Get(g.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rng, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	return cellStrings(resp.Values[0]), nil
}

// ColumnValues reads a full column as strings, one entry per populated
// row.
func (g *GoogleBackend) ColumnValues(ctx context.Context, col int) ([]string, error) {
	letter := columnLetter(col)
	rng := fmt.Sprintf("%s!%s:%s", g.sheetTitle, letter, letter)
	resp, err := g.sheets.Spreadsheets.Values.Get(g.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rng, err)
	}
	values := make([]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := cellStrings(row)
		if len(cells) > 0 {
			values[i] = cells[0]
		}
	}
	return values, nil
}

// Clear wipes every cell on the worksheet.
func (g *GoogleBackend) Clear(ctx context.Context) error {
	_, err := g.sheets.Spreadsheets.Values.Clear(g.spreadsheetID, g.sheetTitle, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear %s: %w", g.sheetTitle, err)
	}
	return nil
}

// AppendRow appends one row after the current data range.
func (g *GoogleBackend) AppendRow(ctx context.Context, values []string) error {
	return g.AppendRows(ctx, [][]string{values})
}

// AppendRows appends rows after the current data range in one call.
// USER_ENTERED lets the sheet parse numeric cells as numbers.
func (g *GoogleBackend) AppendRows(ctx context.Context, rows [][]string) error {
	vr := &sheets.ValueRange{Values: make([][]interface{}, len(rows))}
	for i, row := range rows {
		vr.Values[i] = cellValues(row)
	}
	_, err := g.sheets.Spreadsheets.Values.Append(g.spreadsheetID, g.sheetTitle, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append %d rows: %w", len(rows), err)
	}
	return nil
}

// UpdateRow overwrites one contiguous range within a row, starting at
// startCol.
func (g *GoogleBackend) UpdateRow(ctx context.Context, row, startCol int, values []string) error {
	rng := fmt.Sprintf("%s!%s%d:%s%d",
		g.sheetTitle,
		columnLetter(startCol), row,
		columnLetter(startCol+len(values)-1), row)
	vr := &sheets.ValueRange{Values: [][]interface{}{cellValues(values)}}
	_, err := g.sheets.Spreadsheets.Values.Update(g.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", rng, err)
	}
	return nil
}

func cellValues(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, cell := range row {
		out[i] = cell
	}
	return out
}

func cellStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = fmt.Sprint(cell)
	}
	return out
}

// columnLetter converts a 1-based column index to its A1 letter form.
func columnLetter(col int) string {
	var letters []byte
	for col > 0 {
		col--
		letters = append([]byte{byte('A' + col%26)}, letters...)
		col /= 26
	}
	return string(letters)
}
