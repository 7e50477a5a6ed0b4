package latex

import (
	"strconv"

	"github.com/aerissecure/xl2tex/xlsx"
)

// ResolvedMerge is a merge range with its markup pre-rendered.
type ResolvedMerge struct {
	xlsx.MergeRange
	Align xlsx.HAlign

	// Content is emitted at the start column of the anchor row.
	Content string
	// Continuation is emitted at the start column of every other covered row.
	Continuation string
}

// MergeSet is the resolved merges of one table.
type MergeSet []ResolvedMerge

// ResolveMerges renders every merge of sheet from its anchor cell. Only the
// anchor's value and style are used.
func ResolveMerges(sheet *xlsx.Sheet, settings Settings) (MergeSet, error) {
	if len(sheet.Merges) == 0 {
		return nil, nil
	}

	set := make(MergeSet, 0, len(sheet.Merges))
	for _, m := range sheet.Merges {
		anchor := sheet.At(m.StartRow, m.StartCol)

		value, err := FormatCell(*anchor, settings)
		if err != nil {
			return nil, err
		}

		align := anchor.Style.HorizontalAlign
		if align == xlsx.AlignUnset {
			align = defaultAlignment(*anchor)
			if align == xlsx.AlignUnset {
				align = xlsx.AlignLeft
			}
		}

		rm := ResolvedMerge{MergeRange: m, Align: align}
		if m.SpanHeight() > 1 {
			value = `\multirow{` + strconv.Itoa(m.SpanHeight()) + `}{*}{` + value + `}`
		}
		if m.SpanWidth() > 1 {
			rm.Content = multicolumn(m.SpanWidth(), align, value)
			rm.Continuation = multicolumn(m.SpanWidth(), align, "")
		} else {
			rm.Content = value
			rm.Continuation = " "
		}
		set = append(set, rm)
	}
	return set, nil
}

func multicolumn(width int, align xlsx.HAlign, value string) string {
	return `\multicolumn{` + strconv.Itoa(width) + `}{` + align.Code() + `}{` + value + `}`
}

// ForRow returns the merges covering row r.
func (s MergeSet) ForRow(r int) MergeSet {
	var out MergeSet
	for _, m := range s {
		if r >= m.StartRow && r <= m.EndRow {
			out = append(out, m)
		}
	}
	return out
}

// StartingAt returns the merge whose start column is col, if any.
func (s MergeSet) StartingAt(col int) (ResolvedMerge, bool) {
	for _, m := range s {
		if m.StartCol == col {
			return m, true
		}
	}
	return ResolvedMerge{}, false
}

// InsideSpan reports whether col lies in a merge but is not its start column.
func (s MergeSet) InsideSpan(col int) bool {
	for _, m := range s {
		if col > m.StartCol && col <= m.EndCol {
			return true
		}
	}
	return false
}

// StartRows lists each merge's first row.
func (s MergeSet) StartRows() []int { return s.project(func(m ResolvedMerge) int { return m.StartRow }) }

// StartCols lists each merge's first column.
func (s MergeSet) StartCols() []int { return s.project(func(m ResolvedMerge) int { return m.StartCol }) }

// EndRows lists each merge's last row.
func (s MergeSet) EndRows() []int { return s.project(func(m ResolvedMerge) int { return m.EndRow }) }

// EndCols lists each merge's last column.
func (s MergeSet) EndCols() []int { return s.project(func(m ResolvedMerge) int { return m.EndCol }) }

// Rendered lists each merge's anchor markup.
func (s MergeSet) Rendered() []string {
	out := make([]string, len(s))
	for i, m := range s {
		out[i] = m.Content
	}
	return out
}

func (s MergeSet) project(f func(ResolvedMerge) int) []int {
	out := make([]int, len(s))
	for i, m := range s {
		out[i] = f(m)
	}
	return out
}
