package xlsx

import "fmt"

// Sheet is a rectangular, row-major grid of cells plus the merges that
// apply to it. Row and column access are O(1) and never copy cells.
type Sheet struct {
	Name   string
	Merges []MergeRange

	rows, cols int
	cells      []Cell
}

// NewSheet allocates an empty rows x cols grid. Every cell gets its
// coordinates and sheet reference filled in.
func NewSheet(name string, rows, cols int) *Sheet {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	s := &Sheet{Name: name, rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := &s.cells[r*cols+c]
			cell.Row, cell.Col = r, c
			cell.Ref = CellName(r, c)
		}
	}
	return s
}

// MaxRow is the number of rows in the grid.
func (s *Sheet) MaxRow() int { return s.rows }

// MaxCol is the number of columns in the grid.
func (s *Sheet) MaxCol() int { return s.cols }

// At returns the cell at (row, col). It panics when out of range, like a
// slice index would.
func (s *Sheet) At(row, col int) *Cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		panic(fmt.Sprintf("xlsx: cell (%d,%d) outside %dx%d sheet", row, col, s.rows, s.cols))
	}
	return &s.cells[row*s.cols+col]
}

// Row returns row r. The slice aliases the grid.
func (s *Sheet) Row(r int) []Cell {
	return s.cells[r*s.cols : (r+1)*s.cols : (r+1)*s.cols]
}

// Column returns a strided view over column c.
func (s *Sheet) Column(c int) Column {
	if c < 0 || c >= s.cols {
		panic(fmt.Sprintf("xlsx: column %d outside %d columns", c, s.cols))
	}
	return Column{sheet: s, col: c}
}

// Bounds is the full extent of the grid.
func (s *Sheet) Bounds() Bounds {
	return Bounds{EndRow: s.rows - 1, EndCol: s.cols - 1}
}

// Region copies the cells inside b into a new grid whose (0, 0) is b's
// top-left corner. Cell references keep their sheet coordinates. Merges that
// intersect b are re-based and clipped to it. When b cuts off a merge's
// anchor, the anchor's value and style move to the clipped corner.
func (s *Sheet) Region(b Bounds) (*Sheet, error) {
	if b.Empty() {
		return nil, fmt.Errorf("xlsx: empty region %s", b)
	}
	if b.StartRow < 0 || b.StartCol < 0 || b.EndRow >= s.rows || b.EndCol >= s.cols {
		return nil, fmt.Errorf("xlsx: region %s outside sheet extent %s", b, s.Bounds())
	}

	out := &Sheet{Name: s.Name, rows: b.Rows(), cols: b.Cols()}
	out.cells = make([]Cell, out.rows*out.cols)
	for r := 0; r < out.rows; r++ {
		copy(out.cells[r*out.cols:(r+1)*out.cols], s.Row(b.StartRow + r)[b.StartCol:b.EndCol+1])
		for c := 0; c < out.cols; c++ {
			cell := &out.cells[r*out.cols+c]
			cell.Row, cell.Col = r, c
		}
	}

	for _, m := range s.Merges {
		clip := MergeRange{
			StartRow: max(m.StartRow, b.StartRow),
			StartCol: max(m.StartCol, b.StartCol),
			EndRow:   min(m.EndRow, b.EndRow),
			EndCol:   min(m.EndCol, b.EndCol),
		}
		if clip.StartRow > clip.EndRow || clip.StartCol > clip.EndCol {
			continue
		}
		clip.StartRow -= b.StartRow
		clip.StartCol -= b.StartCol
		clip.EndRow -= b.StartRow
		clip.EndCol -= b.StartCol

		if !b.contains(m.StartRow, m.StartCol) {
			anchor := s.At(m.StartRow, m.StartCol)
			corner := out.At(clip.StartRow, clip.StartCol)
			corner.Value, corner.Style = anchor.Value, anchor.Style
		}
		if clip.SpanWidth() > 1 || clip.SpanHeight() > 1 {
			out.Merges = append(out.Merges, clip)
		}
	}
	return out, nil
}

// MergeAt returns the merge covering (row, col), if any.
func (s *Sheet) MergeAt(row, col int) (MergeRange, bool) {
	for _, m := range s.Merges {
		if m.Contains(row, col) {
			return m, true
		}
	}
	return MergeRange{}, false
}

// clearCovered empties every merged cell except the anchor; only the anchor
// carries a merge's value.
func (s *Sheet) clearCovered() {
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if m, ok := s.MergeAt(r, c); ok && !m.IsAnchor(r, c) {
				s.At(r, c).Value = ""
			}
		}
	}
}

func (b Bounds) contains(row, col int) bool {
	return row >= b.StartRow && row <= b.EndRow && col >= b.StartCol && col <= b.EndCol
}

// Column is a read-only view of one grid column.
type Column struct {
	sheet *Sheet
	col   int
}

// Len is the number of rows in the column.
func (c Column) Len() int { return c.sheet.rows }

// At returns the cell in row r.
func (c Column) At(r int) *Cell { return c.sheet.At(r, c.col) }

