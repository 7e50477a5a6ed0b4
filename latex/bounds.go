package latex

import "github.com/aerissecure/xl2tex/xlsx"

func rowEmpty(sheet *xlsx.Sheet, r int) bool {
	for _, cell := range sheet.Row(r) {
		if !cell.IsEmpty() {
			return false
		}
	}
	return true
}

func colEmpty(col xlsx.Column) bool {
	for r := 0; r < col.Len(); r++ {
		if !col.At(r).IsEmpty() {
			return false
		}
	}
	return true
}

// DetectBounds finds the table inside sheet by dropping fully empty rows
// and columns at each edge. Rows and columns are trimmed independently;
// emptiness is always judged over the whole sheet.
func DetectBounds(sheet *xlsx.Sheet) (xlsx.Bounds, error) {
	b := sheet.Bounds()

	for b.EndCol >= 0 && colEmpty(sheet.Column(b.EndCol)) {
		b.EndCol--
	}
	for b.EndRow >= 0 && rowEmpty(sheet, b.EndRow) {
		b.EndRow--
	}
	for b.StartCol < sheet.MaxCol() && colEmpty(sheet.Column(b.StartCol)) {
		b.StartCol++
	}
	for b.StartRow < sheet.MaxRow() && rowEmpty(sheet, b.StartRow) {
		b.StartRow++
	}

	if b.Empty() {
		return b, ErrEmptyTable
	}
	return b, nil
}
