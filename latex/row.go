package latex

import (
	"strings"

	"github.com/aerissecure/xl2tex/xlsx"
)

const (
	cellSeparator = " & "
	rowTerminator = ` \\` + "\n"
)

// AssembleRow renders one table row. merges must already be limited to the
// ones covering row. A merge's start column emits its pre-rendered markup
// and the columns it spans are skipped.
func AssembleRow(cells []xlsx.Cell, row int, merges MergeSet, settings Settings) (string, error) {
	var b strings.Builder
	for col := 0; col < len(cells); col++ {
		if col > 0 {
			b.WriteString(cellSeparator)
		}

		if m, ok := merges.StartingAt(col); ok {
			if row == m.StartRow {
				b.WriteString(m.Content)
			} else {
				b.WriteString(m.Continuation)
			}
			col = m.EndCol
			continue
		}

		s, err := FormatCell(cells[col], settings)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteString(rowTerminator)
	return b.String(), nil
}
