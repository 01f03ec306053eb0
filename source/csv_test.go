package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/c360studio/dwcgraph/record"
)

func TestReadCSVString(t *testing.T) {
	content := "catalogNumber,sex,habitat\nT1,male,NaN\nT2,,forest\n"

	src, err := ReadCSVString("inline.csv", content, 0)
	if err != nil {
		t.Fatalf("ReadCSVString failed: %v", err)
	}
	defer src.Close()

	if got := src.Headers(); len(got) != 3 || got[0] != record.ColCatalogNumber {
		t.Errorf("unexpected headers %v", got)
	}

	ctx := context.Background()
	first, err := src.Next(ctx)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if first.Index != 0 || first.Source != "inline.csv" {
		t.Errorf("expected row 0 of inline.csv, got %d of %s", first.Index, first.Source)
	}
	if v, _ := first.Value(record.ColSex); v != "male" {
		t.Errorf("expected sex male, got %q", v)
	}
	if _, ok := first.Value(record.ColHabitat); ok {
		t.Error("expected NaN habitat to be absent")
	}

	second, err := src.Next(ctx)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if second.Index != 1 {
		t.Errorf("expected row 1, got %d", second.Index)
	}
	if _, ok := second.Value(record.ColSex); ok {
		t.Error("expected empty sex to be absent")
	}

	if _, err := src.Next(ctx); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReadCSVStringDelimiter(t *testing.T) {
	tests := []struct {
		name      string
		delimiter rune
		content   string
	}{
		{"tab", '\t', "catalogNumber\tsex\tlocationRemarks\nT1\tfemale\tnear creek, north bank\n"},
		{"semicolon", ';', "catalogNumber;sex;locationRemarks\nT1;female;near creek, north bank\n"},
		{"pipe", '|', "catalogNumber|sex|locationRemarks\nT1|female|near creek, north bank\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := ReadCSVString("occurrences.txt", tt.content, tt.delimiter)
			if err != nil {
				t.Fatalf("ReadCSVString failed: %v", err)
			}
			defer src.Close()

			headers := src.Headers()
			if len(headers) != 3 || headers[1] != record.ColSex {
				t.Fatalf("expected 3 split headers, got %q", headers)
			}

			row, err := src.Next(context.Background())
			if err != nil {
				t.Fatalf("Next failed: %v", err)
			}
			if v, _ := row.Value(record.ColCatalogNumber); v != "T1" {
				t.Errorf("expected catalogNumber T1, got %q", v)
			}
			if v, _ := row.Value(record.ColSex); v != "female" {
				t.Errorf("expected sex female, got %q", v)
			}
			if v, _ := row.Value(record.ColLocationRemarks); v != "near creek, north bank" {
				t.Errorf("expected remarks kept whole, got %q", v)
			}
		})
	}
}

func TestOpenAllDelimiter(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "occurrences.tsv")
	if err := os.WriteFile(path, []byte("catalogNumber\tsex\nA1\tmale\n"), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := OpenAll([]string{path}, '\t')
	if err != nil {
		t.Fatalf("OpenAll failed: %v", err)
	}
	defer src.Close()

	row, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if v, _ := row.Value(record.ColSex); v != "male" {
		t.Errorf("expected sex male, got %q", v)
	}
}

func TestReadCSVStringQuoted(t *testing.T) {
	src, err := ReadCSVString("quoted.csv", "catalogNumber,locationRemarks\nT1,\"near creek, north bank\"\n", ',')
	if err != nil {
		t.Fatalf("ReadCSVString failed: %v", err)
	}
	defer src.Close()

	row, err := src.Next(context.Background())
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if v := row.Optional(record.ColLocationRemarks); v != "near creek, north bank" {
		t.Errorf("expected quoted remark, got %q", v)
	}
}

func TestNextHonoursContext(t *testing.T) {
	src, err := ReadCSVString("inline.csv", "catalogNumber\nT1\n", ',')
	if err != nil {
		t.Fatalf("ReadCSVString failed: %v", err)
	}
	defer src.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.Next(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestOpenAllNumbersRowsAcrossFiles(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.csv")
	b := filepath.Join(tmpDir, "b.csv")
	if err := os.WriteFile(a, []byte("catalogNumber\nA1\nA2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("catalogNumber\nB1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := OpenAll([]string{a, b}, ',')
	if err != nil {
		t.Fatalf("OpenAll failed: %v", err)
	}
	defer src.Close()

	want := []struct {
		index   int
		catalog string
		source  string
	}{
		{0, "A1", a},
		{1, "A2", a},
		{2, "B1", b},
	}
	for _, w := range want {
		row, err := src.Next(context.Background())
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if row.Index != w.index || row.Optional(record.ColCatalogNumber) != w.catalog || row.Source != w.source {
			t.Errorf("got row %d %q from %s, want %d %q from %s",
				row.Index, row.Optional(record.ColCatalogNumber), row.Source, w.index, w.catalog, w.source)
		}
	}
	if _, err := src.Next(context.Background()); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestOpenAllMissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.csv")
	if err := os.WriteFile(a, []byte("catalogNumber\nA1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := OpenAll([]string{a, filepath.Join(tmpDir, "missing.csv")}, ','); err == nil {
		t.Error("expected error for missing file")
	}
}
