package sheet

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

func mockedServices(t *testing.T, transport *httpmock.MockTransport) (*sheets.Service, *drive.Service) {
	t.Helper()
	client := &http.Client{Transport: transport}
	ctx := context.Background()

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		t.Fatalf("sheets service: %v", err)
	}
	drv, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		t.Fatalf("drive service: %v", err)
	}
	return svc, drv
}

func registerMetadata(transport *httpmock.MockTransport, id, title string) {
	transport.RegisterResponder(http.MethodGet, `=~^https://sheets\.googleapis\.com/v4/spreadsheets/`+id+`\?`,
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"spreadsheetId": id,
			"sheets": []map[string]interface{}{
				{"properties": map[string]interface{}{"title": title}},
			},
		}))
}

func TestOpenExistingSpreadsheet(t *testing.T) {
	transport := httpmock.NewMockTransport()

	transport.RegisterResponder(http.MethodGet, `=~^https://www\.googleapis\.com/drive/v3/files`,
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"files": []map[string]interface{}{{"id": "sheet-123"}},
		}))
	registerMetadata(transport, "sheet-123", "Sheet1")

	svc, drv := mockedServices(t, transport)
	backend, err := open(context.Background(), svc, drv, "pricelist")
	if err != nil {
		t.Fatalf("open() error = %v", err)
	}
	if backend.SpreadsheetID() != "sheet-123" {
		t.Errorf("SpreadsheetID() = %q, want %q", backend.SpreadsheetID(), "sheet-123")
	}
	if backend.sheetTitle != "Sheet1" {
		t.Errorf("sheetTitle = %q, want %q", backend.sheetTitle, "Sheet1")
	}
	if transport.GetTotalCallCount() != 2 {
		t.Errorf("made %d API calls, want 2", transport.GetTotalCallCount())
	}
}

func TestOpenCreatesMissingSpreadsheet(t *testing.T) {
	transport := httpmock.NewMockTransport()

	transport.RegisterResponder(http.MethodGet, `=~^https://www\.googleapis\.com/drive/v3/files`,
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"files": []map[string]interface{}{},
		}))
	transport.RegisterResponder(http.MethodPost, `=~^https://sheets\.googleapis\.com/v4/spreadsheets$`,
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"spreadsheetId": "created-456",
		}))
	registerMetadata(transport, "created-456", "Sheet1")

	svc, drv := mockedServices(t, transport)
	backend, err := open(context.Background(), svc, drv, "pricelist")
	if err != nil {
		t.Fatalf("open() error = %v", err)
	}
	if backend.SpreadsheetID() != "created-456" {
		t.Errorf("SpreadsheetID() = %q, want %q", backend.SpreadsheetID(), "created-456")
	}
}

func TestOpenEscapesSpreadsheetName(t *testing.T) {
	transport := httpmock.NewMockTransport()

	var query string
	transport.RegisterResponder(http.MethodGet, `=~^https://www\.googleapis\.com/drive/v3/files`,
		func(req *http.Request) (*http.Response, error) {
			query = req.URL.Query().Get("q")
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"files": []map[string]interface{}{{"id": "sheet-789"}},
			})
		})
	registerMetadata(transport, "sheet-789", "Sheet1")

	svc, drv := mockedServices(t, transport)
	if _, err := open(context.Background(), svc, drv, "Omar's pricelist"); err != nil {
		t.Fatalf("open() error = %v", err)
	}
	if want := `name = 'Omar\'s pricelist'`; !strings.Contains(query, want) {
		t.Errorf("drive query = %q, want it to contain %q", query, want)
	}
}

func TestEscapeQueryValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pricelist", "pricelist"},
		{"Omar's pricelist", `Omar\'s pricelist`},
		{`back\slash`, `back\\slash`},
		{`both\'`, `both\\\'`},
	}
	for _, tt := range tests {
		if got := escapeQueryValue(tt.in); got != tt.want {
			t.Errorf("escapeQueryValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGoogleBackendValues(t *testing.T) {
	newBackend := func(t *testing.T, transport *httpmock.MockTransport) *GoogleBackend {
		t.Helper()
		svc, _ := mockedServices(t, transport)
		return &GoogleBackend{sheets: svc, spreadsheetID: "sheet-123", sheetTitle: "Sheet1"}
	}

	t.Run("row values", func(t *testing.T) {
		transport := httpmock.NewMockTransport()
		transport.RegisterResponder(http.MethodGet, `=~/v4/spreadsheets/sheet-123/values/`,
			httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
				"values": [][]interface{}{{"Product", "Jumia", 1500}},
			}))

		backend := newBackend(t, transport)
		got, err := backend.RowValues(context.Background(), 1)
		if err != nil {
			t.Fatalf("RowValues() error = %v", err)
		}
		want := []string{"Product", "Jumia", "1500"}
		if len(got) != len(want) {
			t.Fatalf("RowValues() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("RowValues()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("empty range", func(t *testing.T) {
		transport := httpmock.NewMockTransport()
		transport.RegisterResponder(http.MethodGet, `=~/v4/spreadsheets/sheet-123/values/`,
			httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{}))

		backend := newBackend(t, transport)
		got, err := backend.RowValues(context.Background(), 5)
		if err != nil {
			t.Fatalf("RowValues() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("RowValues() = %v, want empty", got)
		}
	})

	t.Run("update row", func(t *testing.T) {
		transport := httpmock.NewMockTransport()
		transport.RegisterResponder(http.MethodPut, `=~/v4/spreadsheets/sheet-123/values/.*B2`,
			httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
				"updatedCells": 3,
			}))

		backend := newBackend(t, transport)
		err := backend.UpdateRow(context.Background(), 2, 2, []string{"1500", "Jumia", "1500"})
		if err != nil {
			t.Fatalf("UpdateRow() error = %v", err)
		}
		if transport.GetTotalCallCount() != 1 {
			t.Errorf("made %d API calls, want 1", transport.GetTotalCallCount())
		}
	})

	t.Run("clear", func(t *testing.T) {
		transport := httpmock.NewMockTransport()
		transport.RegisterResponder(http.MethodPost, `=~:clear`,
			httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{}))

		backend := newBackend(t, transport)
		if err := backend.Clear(context.Background()); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
	})

	t.Run("append rows", func(t *testing.T) {
		transport := httpmock.NewMockTransport()
		transport.RegisterResponder(http.MethodPost, `=~:append`,
			httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{}))

		backend := newBackend(t, transport)
		rows := [][]string{{"TV A", "", ""}, {"Phone B", "", ""}}
		if err := backend.AppendRows(context.Background(), rows); err != nil {
			t.Fatalf("AppendRows() error = %v", err)
		}
	})
}

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{14, "N"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
		{53, "BA"},
	}
	for _, tt := range tests {
		if got := columnLetter(tt.col); got != tt.want {
			t.Errorf("columnLetter(%d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}
