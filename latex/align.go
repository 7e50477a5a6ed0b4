package latex

import "github.com/aerissecure/xl2tex/xlsx"

// defaultAlignment is what a spreadsheet shows for a cell with no explicit
// alignment: numbers right, text left. Empty cells have none.
func defaultAlignment(c xlsx.Cell) xlsx.HAlign {
	switch {
	case c.IsEmpty():
		return xlsx.AlignUnset
	case c.IsNumeric():
		return xlsx.AlignRight
	}
	return xlsx.AlignLeft
}

// PickAlignment chooses a column's alignment by majority over its cells.
// Ties go to left, then center, then right.
func PickAlignment(col xlsx.Column) xlsx.HAlign {
	var left, center, right int
	for r := 0; r < col.Len(); r++ {
		cell := col.At(r)
		align := cell.Style.HorizontalAlign
		if align == xlsx.AlignUnset {
			align = defaultAlignment(*cell)
		}
		switch align {
		case xlsx.AlignLeft:
			left++
		case xlsx.AlignCenter:
			center++
		case xlsx.AlignRight:
			right++
		}
	}

	switch best := max(left, center, right); best {
	case left:
		return xlsx.AlignLeft
	case center:
		return xlsx.AlignCenter
	}
	return xlsx.AlignRight
}
