package latex

import (
	"fmt"
	"strings"

	"github.com/aerissecure/xl2tex/xlsx"
)

// Render converts a bounded table into a tabular environment. Rows are
// interleaved with the horizontal rules inferred from cell borders; the
// rule between two rows is drawn wherever the upper row's bottom edge or
// the lower row's top edge has a border, except across a vertical merge.
func Render(table *xlsx.Sheet, settings Settings) (string, error) {
	if err := settings.Validate(); err != nil {
		return "", err
	}
	if table.MaxRow() == 0 || table.MaxCol() == 0 {
		return "", ErrEmptyTable
	}

	merges, err := ResolveMerges(table, settings)
	if err != nil {
		return "", fmt.Errorf("latex: resolve merges: %w", err)
	}

	var b strings.Builder
	b.WriteString(`\begin{tabular}{` + ColumnSpec(table) + "}\n")

	last := table.MaxRow() - 1
	rowMerges := merges.ForRow(0)
	b.WriteString(RuleDirective(RulePresence(table.Row(0), xlsx.Top, rowMerges), settings, RuleTop))

	for r := 0; r <= last; r++ {
		line, err := AssembleRow(table.Row(r), r, rowMerges, settings)
		if err != nil {
			return "", fmt.Errorf("latex: row %d: %w", r+1, err)
		}
		b.WriteString(line)

		below := RulePresence(table.Row(r), xlsx.Bottom, rowMerges)
		if r == last {
			b.WriteString(RuleDirective(below, settings, RuleBottom))
			break
		}

		nextMerges := merges.ForRow(r + 1)
		above := RulePresence(table.Row(r+1), xlsx.Top, nextMerges)
		for c := range below {
			below[c] = below[c] || above[c]
		}
		// No rule may cut through a cell merged across this boundary.
		for _, m := range rowMerges {
			if m.EndRow > r {
				for c := m.StartCol; c <= m.EndCol && c < len(below); c++ {
					below[c] = false
				}
			}
		}
		b.WriteString(RuleDirective(below, settings, RuleMid))
		rowMerges = nextMerges
	}

	b.WriteString(`\end{tabular}` + "\n")
	return b.String(), nil
}
