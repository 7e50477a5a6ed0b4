package xlsx

import (
	"reflect"
	"testing"
)

func TestNewSheet(t *testing.T) {
	s := NewSheet("Sheet1", 2, 3)
	if s.MaxRow() != 2 || s.MaxCol() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", s.MaxRow(), s.MaxCol())
	}
	c := s.At(1, 2)
	if c.Row != 1 || c.Col != 2 || c.Ref != "C2" {
		t.Errorf("At(1, 2) = %s", c)
	}
	if got := s.Bounds(); got != (Bounds{EndRow: 1, EndCol: 2}) {
		t.Errorf("Bounds() = %s", got)
	}

	s.Row(0)[1].Value = "x"
	if s.At(0, 1).Value != "x" {
		t.Error("Row must alias the grid")
	}
	if col := s.Column(1); col.Len() != 2 || col.At(0).Value != "x" {
		t.Errorf("Column(1) view is wrong")
	}
}

func TestSheetAtOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewSheet("Sheet1", 1, 1).At(1, 0)
}

func TestRegion(t *testing.T) {
	s := NewSheet("Data", 5, 5)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			s.At(r, c).Value = CellName(r, c)
		}
	}
	s.Merges = []MergeRange{
		{StartRow: 1, StartCol: 1, EndRow: 1, EndCol: 2}, // inside
		{StartRow: 3, StartCol: 2, EndRow: 4, EndCol: 4}, // crosses the right and bottom edges
		{StartRow: 4, StartCol: 0, EndRow: 4, EndCol: 4}, // entirely below
	}

	b, err := ParseBounds("B2:D4")
	if err != nil {
		t.Fatal(err)
	}
	region, err := s.Region(b)
	if err != nil {
		t.Fatal(err)
	}
	if region.MaxRow() != 3 || region.MaxCol() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", region.MaxRow(), region.MaxCol())
	}

	first := region.At(0, 0)
	if first.Value != "B2" || first.Ref != "B2" || first.Row != 0 || first.Col != 0 {
		t.Errorf("At(0, 0) = %s", first)
	}
	if got := region.At(2, 2).Value; got != "D4" {
		t.Errorf("At(2, 2) = %q, want D4", got)
	}

	want := []MergeRange{
		{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 1},
		{StartRow: 2, StartCol: 1, EndRow: 2, EndCol: 2},
	}
	if !reflect.DeepEqual(region.Merges, want) {
		t.Errorf("Merges = %v, want %v", region.Merges, want)
	}

	region.At(0, 0).Value = "changed"
	if s.At(1, 1).Value != "B2" {
		t.Error("Region must copy cells")
	}
}

func TestRegionCutsMergeAnchor(t *testing.T) {
	s := NewSheet("Data", 2, 4)
	s.At(0, 0).Value = "hdr"
	s.At(0, 0).Style.Bold = true
	s.At(0, 2).Value = "c"
	s.At(1, 1).Value = "x"
	s.Merges = []MergeRange{
		{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 1}, // A1:B1
		{StartRow: 0, StartCol: 3, EndRow: 1, EndCol: 3}, // D1:D2, outside
	}

	wide := NewSheet("Data", 1, 4)
	wide.At(0, 0).Value = "span"
	wide.Merges = []MergeRange{{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 3}}

	region, err := s.Region(Bounds{StartRow: 0, StartCol: 1, EndRow: 1, EndCol: 2})
	if err != nil {
		t.Fatal(err)
	}
	corner := region.At(0, 0)
	if corner.Value != "hdr" || !corner.Style.Bold {
		t.Errorf("clipped corner = %s, want the anchor's value and style", corner)
	}
	if len(region.Merges) != 0 {
		t.Errorf("one-cell remainder must not stay a merge, got %v", region.Merges)
	}

	region, err = wide.Region(Bounds{StartCol: 1, EndCol: 2})
	if err != nil {
		t.Fatal(err)
	}
	if region.At(0, 0).Value != "span" {
		t.Errorf("At(0, 0) = %q, want span", region.At(0, 0).Value)
	}
	if want := []MergeRange{{EndCol: 1}}; !reflect.DeepEqual(region.Merges, want) {
		t.Errorf("Merges = %v, want %v", region.Merges, want)
	}
}

func TestClearCovered(t *testing.T) {
	s := NewSheet("Data", 2, 3)
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			s.At(r, c).Value = "v"
		}
	}
	s.Merges = []MergeRange{{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 1}}
	s.clearCovered()

	for _, tt := range []struct {
		row, col int
		want     string
	}{
		{0, 0, "v"}, {0, 1, ""}, {1, 0, ""}, {1, 1, ""}, {0, 2, "v"}, {1, 2, "v"},
	} {
		if got := s.At(tt.row, tt.col).Value; got != tt.want {
			t.Errorf("(%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
		}
	}
	if m, ok := s.MergeAt(1, 1); !ok || m != s.Merges[0] {
		t.Errorf("MergeAt(1, 1) = %v, %t", m, ok)
	}
	if _, ok := s.MergeAt(0, 2); ok {
		t.Error("MergeAt(0, 2) should find nothing")
	}
}

func TestRegionErrors(t *testing.T) {
	s := NewSheet("Data", 3, 3)
	for _, b := range []Bounds{
		{StartRow: 2, EndRow: 1, EndCol: 1},
		{EndRow: 3, EndCol: 1},
		{StartCol: -1, EndRow: 1, EndCol: 1},
	} {
		if _, err := s.Region(b); err == nil {
			t.Errorf("Region(%+v) should fail", b)
		}
	}
}
