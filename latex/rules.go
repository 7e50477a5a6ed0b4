package latex

import (
	"strconv"
	"strings"

	"github.com/aerissecure/xl2tex/xlsx"
)

// RulePosition tells where a horizontal rule sits in the table. Booktabs
// uses a different full-width command at each edge.
type RulePosition int

const (
	RuleMid RulePosition = iota
	RuleTop
	RuleBottom
)

// RuleSegment is a run of columns sharing a rule, zero-based and inclusive.
type RuleSegment struct {
	StartCol, EndCol int
}

// String gives the 1-based column address used by \cline and \cmidrule.
func (s RuleSegment) String() string {
	return strconv.Itoa(s.StartCol+1) + "-" + strconv.Itoa(s.EndCol+1)
}

// RulePresence reports, per column, whether the given edge of the row
// carries a border. Columns inside a merge span (but not its start column)
// copy the previous column: a merge keeps its border on the anchor only.
// merges must already be limited to the ones covering this row.
func RulePresence(cells []xlsx.Cell, side xlsx.Side, merges MergeSet) []bool {
	has := make([]bool, len(cells))
	for col := range cells {
		if merges.InsideSpan(col) {
			if col > 0 {
				has[col] = has[col-1]
			}
			continue
		}
		has[col] = cells[col].Style.Border.Has(side)
	}
	return has
}

// Segments groups presence into maximal runs of true columns.
func Segments(presence []bool) []RuleSegment {
	var segs []RuleSegment
	start := -1
	for col, on := range presence {
		switch {
		case on && start < 0:
			start = col
		case !on && start >= 0:
			segs = append(segs, RuleSegment{StartCol: start, EndCol: col - 1})
			start = -1
		}
	}
	if start >= 0 {
		segs = append(segs, RuleSegment{StartCol: start, EndCol: len(presence) - 1})
	}
	return segs
}

// RuleDirective renders the rule line for presence: nothing when no column
// has a rule, one full-width command when all do, and one partial command
// per segment otherwise.
func RuleDirective(presence []bool, settings Settings, pos RulePosition) string {
	segs := Segments(presence)
	if len(segs) == 0 {
		return ""
	}

	if len(segs) == 1 && segs[0].StartCol == 0 && segs[0].EndCol == len(presence)-1 {
		if !settings.Booktabs {
			return `\hline` + "\n"
		}
		switch pos {
		case RuleTop:
			return `\toprule` + "\n"
		case RuleBottom:
			return `\bottomrule` + "\n"
		}
		return `\midrule` + "\n"
	}

	parts := make([]string, len(segs))
	for i, seg := range segs {
		if settings.Booktabs {
			parts[i] = `\cmidrule(r){` + seg.String() + `}`
		} else {
			parts[i] = `\cline{` + seg.String() + `}`
		}
	}
	return strings.Join(parts, "\t") + "\n"
}

// HorizontalRule renders the rule on one edge of a row between two body
// rows.
func HorizontalRule(cells []xlsx.Cell, side xlsx.Side, merges MergeSet, settings Settings) string {
	return RuleDirective(RulePresence(cells, side, merges), settings, RuleMid)
}

// HasVerticalRule reports whether every row of col has a border on side.
func HasVerticalRule(col xlsx.Column, side xlsx.Side) bool {
	if col.Len() == 0 {
		return false
	}
	for r := 0; r < col.Len(); r++ {
		if !col.At(r).Style.Border.Has(side) {
			return false
		}
	}
	return true
}

// ColumnSpec builds the tabular column argument, e.g. "|l|c|r|": one
// alignment per column and a bar wherever a vertical rule runs the full
// height of the table.
func ColumnSpec(sheet *xlsx.Sheet) string {
	var b strings.Builder
	n := sheet.MaxCol()
	for c := 0; c < n; c++ {
		col := sheet.Column(c)
		if c == 0 && HasVerticalRule(col, xlsx.Left) {
			b.WriteByte('|')
		}
		b.WriteString(PickAlignment(col).Code())
		right := HasVerticalRule(col, xlsx.Right)
		if !right && c+1 < n {
			right = HasVerticalRule(sheet.Column(c+1), xlsx.Left)
		}
		if right {
			b.WriteByte('|')
		}
	}
	return b.String()
}
