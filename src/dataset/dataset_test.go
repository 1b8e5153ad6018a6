package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `block_number,complete_validation_time,complete_proof_size
6400000,12.5,300
6500000,14.0,310
6600000,15.25,330
`

func TestReadParsesHeaderAndRows(t *testing.T) {
	d, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	want := []string{"block_number", "complete_validation_time", "complete_proof_size"}
	got := d.Columns()
	if len(got) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d: got %q want %q", i, got[i], want[i])
		}
	}
	if d.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", d.Len())
	}
	vals, ok := d.Column("complete_validation_time")
	if !ok {
		t.Fatalf("column lookup failed")
	}
	if vals[0] != 12.5 || vals[2] != 15.25 {
		t.Fatalf("unexpected values: %v", vals)
	}
}

func TestColumnReturnsCopy(t *testing.T) {
	d, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	vals, _ := d.Column("complete_proof_size")
	vals[0] = -1
	again, _ := d.Column("complete_proof_size")
	if again[0] != 300 {
		t.Fatalf("dataset mutated through returned slice: %v", again)
	}
}

func TestHas(t *testing.T) {
	d, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !d.Has("block_number") {
		t.Fatalf("expected block_number to exist")
	}
	if d.Has("nope") {
		t.Fatalf("unexpected column")
	}
	if _, ok := d.Column("nope"); ok {
		t.Fatalf("lookup of missing column succeeded")
	}
}

func TestReadHeaderOnly(t *testing.T) {
	d, err := Read(strings.NewReader("a,b,c\n"))
	if err != nil {
		t.Fatalf("header-only csv should load: %v", err)
	}
	if d.Len() != 0 {
		t.Fatalf("expected zero rows, got %d", d.Len())
	}
	vals, ok := d.Column("b")
	if !ok || len(vals) != 0 {
		t.Fatalf("expected empty column, got %v ok=%v", vals, ok)
	}
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name string
		csv  string
		want string
	}{
		{"empty input", "", "header"},
		{"duplicate column", "a,a\n1,2\n", "duplicate"},
		{"blank column name", "a,\n1,2\n", "empty name"},
		{"non numeric cell", "a,b\n1,x\n", `column "b"`},
		{"ragged row", "a,b\n1\n", "wrong number of fields"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.csv))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestBadCellReportsLine(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n1,2\n3,oops\n"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("error should name the failing line: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measurements.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if d.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", d.Len())
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
