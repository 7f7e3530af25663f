package tabular

import (
	"errors"
	"strings"
	"testing"

	"github.com/rcaa/rcaconnect/internal/pkg/apperrors"
)

func TestReadCSV(t *testing.T) {
	input := "Full Name,Series,Email\nJane Doe,2019,\nJohn Smith,2020,john@x.com\n"

	table, err := Read("alumni.csv", strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	wantHeaders := []string{"full_name", "series", "email"}
	if len(table.Headers) != len(wantHeaders) {
		t.Fatalf("headers = %v, want %v", table.Headers, wantHeaders)
	}
	for i, h := range wantHeaders {
		if table.Headers[i] != h {
			t.Fatalf("headers[%d] = %q, want %q", i, table.Headers[i], h)
		}
	}

	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0]["full_name"] != "Jane Doe" || table.Rows[0]["series"] != "2019" {
		t.Fatalf("unexpected first row: %v", table.Rows[0])
	}
	if table.Rows[0]["email"] != "" {
		t.Fatalf("empty cell should be empty string, got %q", table.Rows[0]["email"])
	}
	if table.Rows[1]["email"] != "john@x.com" {
		t.Fatalf("unexpected second row: %v", table.Rows[1])
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	input := "full_name,series\nJane Doe\n"

	table, err := Read("alumni.csv", strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	if table.Rows[0]["series"] != "" {
		t.Fatalf("missing trailing cell should be empty, got %q", table.Rows[0]["series"])
	}
}

func TestReadUnsupportedExtension(t *testing.T) {
	for _, name := range []string{"alumni.pdf", "alumni.txt", "alumni", ""} {
		if _, err := Read(name, strings.NewReader("x")); !errors.Is(err, apperrors.ErrUnsupportedFormat) {
			t.Fatalf("Read(%q) error = %v, want %v", name, err, apperrors.ErrUnsupportedFormat)
		}
		if SupportedExtension(name) {
			t.Fatalf("SupportedExtension(%q) = true", name)
		}
	}

	for _, name := range []string{"a.csv", "a.CSV", "a.xlsx", "a.XLS"} {
		if !SupportedExtension(name) {
			t.Fatalf("SupportedExtension(%q) = false", name)
		}
	}
}

func TestNormalizeHeader(t *testing.T) {
	cases := map[string]string{
		"Full Name":     "full_name",
		"  Series  ":    "series",
		"UNIVERSITY ID": "university_id",
		"blood  group":  "blood_group",
		"":              "",
	}
	for in, want := range cases {
		if got := NormalizeHeader(in); got != want {
			t.Fatalf("NormalizeHeader(%q) = %q, want %q", in, got, want)
		}
	}
}
