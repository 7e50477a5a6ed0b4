package latex

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aerissecure/xl2tex/xlsx"
)

var (
	// Cells made only of these characters are statistical values: numbers,
	// standard errors in parentheses, significance stars, exponents.
	notValueRe = regexp.MustCompile(`[^0-9.()+\-eE*]`)

	// Scientific notation first so "1.5e-3" is one match, not "1.5" then "3".
	numberRe = regexp.MustCompile(`\d+(?:\.\d*)?[eE][+-]?\d+|\d+\.\d*`)
)

// IsValue reports whether s looks like a purely numeric or statistical
// value and so qualifies for rounding.
func IsValue(s string) bool {
	return s != "" && !notValueRe.MatchString(s)
}

// CleanCellString strips the ="..." wrapper some exporters put around text.
func CleanCellString(s string) string {
	if len(s) >= 3 && strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) {
		return s[2 : len(s)-1]
	}
	return s
}

// RoundNumbers rewrites every decimal and scientific-notation number in s
// with numDP decimal places. Text between the numbers is kept as is. The
// output is built from match positions in a single pass.
func RoundNumbers(s string, numDP int) (string, error) {
	matches := numberRe.FindAllStringIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, m := range matches {
		lit := s[m[0]:m[1]]
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return "", &NumberError{Text: lit, Err: err}
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(strconv.FormatFloat(f, 'f', numDP, 64))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String(), nil
}

// FormatCell renders one cell's value with its styling.
func FormatCell(cell xlsx.Cell, settings Settings) (string, error) {
	if cell.IsEmpty() {
		return " ", nil
	}

	value := CleanCellString(cell.Value)
	if value == "" {
		return " ", nil
	}
	if settings.RoundToDP && IsValue(value) {
		rounded, err := RoundNumbers(value, settings.NumDP)
		if err != nil {
			if ne, ok := err.(*NumberError); ok {
				ne.Cell = cell.Ref
			}
			return "", err
		}
		value = rounded
	}

	return applyStyle(value, cell.Style), nil
}

// applyStyle wraps value in bold, italic, font colour and fill commands,
// in that order.
func applyStyle(value string, st xlsx.CellStyle) string {
	if st.Bold {
		value = `\textbf{` + value + `}`
	}
	if st.Italic {
		value = `\textit{` + value + `}`
	}
	if st.FontColor != "" {
		value = `\textcolor[HTML]{` + st.FontColor + `}{` + value + `}`
	}
	// Palette-indexed fills have no RGB value here and pass through.
	if st.Fill.Kind == xlsx.FillRGB && st.Fill.Color != "" {
		value = `\cellcolor[HTML]{` + st.Fill.Color + `}{` + value + `}`
	}
	return value
}
