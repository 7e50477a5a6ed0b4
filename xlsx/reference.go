package xlsx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// CellName converts zero-based coordinates into an A1 reference.
func CellName(row, col int) string {
	if row < 0 || col < 0 {
		return "?"
	}
	return reference.IndexToColumn(uint32(col)) + strconv.Itoa(row+1)
}

// ParseCellName converts an A1 reference into zero-based coordinates.
func ParseCellName(ref string) (row, col int, err error) {
	cr, err := reference.ParseCellReference(strings.TrimSpace(ref))
	if err != nil {
		return 0, 0, fmt.Errorf("xlsx: bad cell reference %q: %w", ref, err)
	}
	if cr.RowIdx == 0 {
		return 0, 0, fmt.Errorf("xlsx: bad cell reference %q: row must be at least 1", ref)
	}
	return int(cr.RowIdx) - 1, int(cr.ColumnIdx), nil
}

// ParseMergeRange converts a range such as "B2:D2" into a MergeRange. The
// corners may be given in any order.
func ParseMergeRange(ref string) (MergeRange, error) {
	b, err := ParseBounds(ref)
	if err != nil {
		return MergeRange{}, err
	}
	return MergeRange(b), nil
}

// ParseBounds converts a range such as "A1:C9" into Bounds. A single cell
// reference yields a one-cell range.
func ParseBounds(ref string) (Bounds, error) {
	ref = strings.TrimSpace(ref)
	if !strings.Contains(ref, ":") {
		r, c, err := ParseCellName(ref)
		if err != nil {
			return Bounds{}, err
		}
		return Bounds{StartRow: r, StartCol: c, EndRow: r, EndCol: c}, nil
	}

	from, to, err := reference.ParseRangeReference(ref)
	if err != nil {
		return Bounds{}, fmt.Errorf("xlsx: bad range %q: %w", ref, err)
	}
	if from.RowIdx == 0 || to.RowIdx == 0 {
		return Bounds{}, fmt.Errorf("xlsx: bad range %q: rows must be at least 1", ref)
	}
	b := Bounds{
		StartRow: int(from.RowIdx) - 1,
		StartCol: int(from.ColumnIdx),
		EndRow:   int(to.RowIdx) - 1,
		EndCol:   int(to.ColumnIdx),
	}
	if b.StartRow > b.EndRow {
		b.StartRow, b.EndRow = b.EndRow, b.StartRow
	}
	if b.StartCol > b.EndCol {
		b.StartCol, b.EndCol = b.EndCol, b.StartCol
	}
	return b, nil
}

// normalizeColor converts an 8-digit ARGB hex (as used in XLSX) to a 6-digit RGB string.
// If the string is already 6 digits (or any other length), it is returned unchanged.
func normalizeColor(hex string) string {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(hex) == 8 {
		return hex[2:]
	}
	return hex
}

// rgbFill builds a solid fill from a stored colour. A fully transparent
// "00000000" is what some writers store for no fill.
func rgbFill(hex string) Fill {
	if hex == "" || hex == "00000000" {
		return Fill{}
	}
	return Fill{Kind: FillRGB, Color: normalizeColor(hex)}
}
