package ingest

import (
	"errors"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		filename    string
		wantHeaders []string
		wantRows    [][]string
	}{
		{
			name:        "comma separated",
			data:        "Text,Source\ngreat,web\nbad,app\n",
			filename:    "reviews.csv",
			wantHeaders: []string{"text", "source"},
			wantRows:    [][]string{{"great", "web"}, {"bad", "app"}},
		},
		{
			name:        "semicolon separated",
			data:        "Text;Source\ngreat, really;web\nbad;app\n",
			filename:    "reviews.csv",
			wantHeaders: []string{"text", "source"},
			wantRows:    [][]string{{"great, really", "web"}, {"bad", "app"}},
		},
		{
			name:        "tab separated",
			data:        "Text\tSource\ngreat\tweb\n",
			filename:    "reviews.csv",
			wantHeaders: []string{"text", "source"},
			wantRows:    [][]string{{"great", "web"}},
		},
		{
			name:        "bom and whitespace in headers",
			data:        "\ufeffText , Source\na,b\n",
			filename:    "reviews.CSV",
			wantHeaders: []string{"text", "source"},
			wantRows:    [][]string{{"a", "b"}},
		},
		{
			name:        "ragged rows padded",
			data:        "text,source\nonly text\nboth,web\n",
			filename:    "r.csv",
			wantHeaders: []string{"text", "source"},
			wantRows:    [][]string{{"only text", ""}, {"both", "web"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Parse([]byte(tt.data), tt.filename)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if !reflect.DeepEqual(table.Headers, tt.wantHeaders) {
				t.Errorf("headers = %v, want %v", table.Headers, tt.wantHeaders)
			}
			if !reflect.DeepEqual(table.Rows, tt.wantRows) {
				t.Errorf("rows = %v, want %v", table.Rows, tt.wantRows)
			}
		})
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("whatever"), "notes.txt")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestParseUnreadableCSV(t *testing.T) {
	_, err := Parse([]byte(""), "empty.csv")
	if !errors.Is(err, ErrUnreadableFile) {
		t.Fatalf("expected ErrUnreadableFile, got %v", err)
	}
}

func TestParseExcel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]interface{}{
		{"Text", "Source"},
		{"great product", "web"},
		{"terrible", "app"},
	}
	for i, row := range cells {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	table, err := Parse(buf.Bytes(), "reviews.xlsx")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if !reflect.DeepEqual(table.Headers, []string{"text", "source"}) {
		t.Errorf("headers = %v", table.Headers)
	}
	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}
	if got := table.Column("text"); !reflect.DeepEqual(got, []string{"great product", "terrible"}) {
		t.Errorf("text column = %v", got)
	}
}

func TestParseExcelGarbage(t *testing.T) {
	_, err := Parse([]byte("not a zip archive"), "reviews.xlsx")
	if !errors.Is(err, ErrUnreadableFile) {
		t.Fatalf("expected ErrUnreadableFile, got %v", err)
	}
}

func TestColumnMissing(t *testing.T) {
	table, err := Parse([]byte("a,b\n1,2\n"), "t.csv")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := table.Column("nope"); got != nil {
		t.Errorf("Column(nope) = %v, want nil", got)
	}
}
