package latex

import (
	"testing"

	"github.com/aerissecure/xl2tex/xlsx"
)

// newTable builds a grid from row-major values.
func newTable(t *testing.T, values ...[]string) *xlsx.Sheet {
	t.Helper()
	if len(values) == 0 {
		return xlsx.NewSheet("Sheet1", 0, 0)
	}
	s := xlsx.NewSheet("Sheet1", len(values), len(values[0]))
	for r, row := range values {
		if len(row) != len(values[0]) {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), len(values[0]))
		}
		for c, v := range row {
			s.At(r, c).Value = v
		}
	}
	return s
}

// borderRow sets the given borders on every cell of row r.
func borderRow(s *xlsx.Sheet, r int, b xlsx.Borders) {
	for c := 0; c < s.MaxCol(); c++ {
		s.At(r, c).Style.Border = b
	}
}

func bools(pattern string) []bool {
	out := make([]bool, len(pattern))
	for i, ch := range pattern {
		out[i] = ch == 'T'
	}
	return out
}
