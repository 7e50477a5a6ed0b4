package xlsx

import (
	"fmt"
	"strconv"
	"strings"
)

// Intermediate representation for a worksheet region.

// Side names one edge of a cell.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// HAlign is a cell's horizontal alignment.
type HAlign int

const (
	AlignUnset HAlign = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Code returns the tabular column code (l, c or r). AlignUnset has no code.
func (a HAlign) Code() string {
	switch a {
	case AlignLeft:
		return "l"
	case AlignCenter:
		return "c"
	case AlignRight:
		return "r"
	}
	return ""
}

func (a HAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "unset"
}

// ParseHAlign maps a spreadsheet horizontal alignment name onto HAlign.
// "general" and unknown names are AlignUnset.
func ParseHAlign(s string) HAlign {
	switch s {
	case "left", "justify", "fill":
		return AlignLeft
	case "center", "centerContinuous", "distributed":
		return AlignCenter
	case "right":
		return AlignRight
	}
	return AlignUnset
}

// FillKind tells how a cell's background is defined.
type FillKind int

const (
	FillNone    FillKind = iota
	FillRGB              // explicit colour in Fill.Color
	FillIndexed          // legacy palette entry in Fill.Index
)

// Fill is a cell background.
type Fill struct {
	Kind  FillKind
	Color string // "RRGGBB", only for FillRGB
	Index int    // palette index, only for FillIndexed
}

func (f Fill) String() string {
	switch f.Kind {
	case FillRGB:
		return "#" + f.Color
	case FillIndexed:
		return fmt.Sprintf("indexed(%d)", f.Index)
	}
	return "none"
}

// Borders records which edges of a cell carry a border style.
type Borders struct {
	Top, Bottom, Left, Right bool
}

// Has reports whether the given edge carries a border.
func (b Borders) Has(s Side) bool {
	switch s {
	case Top:
		return b.Top
	case Bottom:
		return b.Bottom
	case Left:
		return b.Left
	case Right:
		return b.Right
	}
	return false
}

// CellStyle captures the styles the converter renders.
type CellStyle struct {
	Bold            bool
	Italic          bool
	FontColor       string // "RRGGBB", empty when not an explicit colour
	Fill            Fill
	Border          Borders
	HorizontalAlign HAlign
}

func (s CellStyle) String() string {
	return fmt.Sprintf("Bold: %t, Italic: %t, FontColor: %s, Fill: %s, Border: %+v, HorizontalAlign: %s",
		s.Bold, s.Italic, s.FontColor, s.Fill, s.Border, s.HorizontalAlign)
}

// Cell is one grid position. An empty Value means the cell holds nothing.
type Cell struct {
	Ref   string // e.g. "A1", in sheet coordinates
	Row   int    // zero-based, relative to the grid holding the cell
	Col   int
	Value string
	Style CellStyle
}

func (c Cell) String() string {
	return fmt.Sprintf("Ref: %s, Value: %q, Style: [%s]", c.Ref, c.Value, c.Style)
}

// IsEmpty reports whether the cell has no value.
func (c Cell) IsEmpty() bool {
	return c.Value == ""
}

// IsNumeric reports whether the whole value parses as a number.
func (c Cell) IsNumeric() bool {
	if c.Value == "" {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
	return err == nil
}

// MergeRange is a merged block of cells, zero-based and inclusive.
type MergeRange struct {
	StartRow, StartCol int
	EndRow, EndCol     int
}

// SpanWidth is the number of columns covered.
func (m MergeRange) SpanWidth() int { return m.EndCol - m.StartCol + 1 }

// SpanHeight is the number of rows covered.
func (m MergeRange) SpanHeight() int { return m.EndRow - m.StartRow + 1 }

// Contains reports whether (row, col) lies in the range.
func (m MergeRange) Contains(row, col int) bool {
	return row >= m.StartRow && row <= m.EndRow && col >= m.StartCol && col <= m.EndCol
}

// IsAnchor reports whether (row, col) is the range's top-left cell.
func (m MergeRange) IsAnchor(row, col int) bool {
	return row == m.StartRow && col == m.StartCol
}

func (m MergeRange) String() string {
	return CellName(m.StartRow, m.StartCol) + ":" + CellName(m.EndRow, m.EndCol)
}

// Bounds is an inclusive rectangle of grid coordinates.
type Bounds struct {
	StartRow, StartCol int
	EndRow, EndCol     int
}

// Rows is the number of rows inside the bounds.
func (b Bounds) Rows() int { return b.EndRow - b.StartRow + 1 }

// Cols is the number of columns inside the bounds.
func (b Bounds) Cols() int { return b.EndCol - b.StartCol + 1 }

// Empty reports whether the bounds enclose no cell.
func (b Bounds) Empty() bool { return b.Rows() <= 0 || b.Cols() <= 0 }

func (b Bounds) String() string {
	return CellName(b.StartRow, b.StartCol) + ":" + CellName(b.EndRow, b.EndCol)
}
