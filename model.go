package xl2tex

import (
	"github.com/sirupsen/logrus"

	"github.com/aerissecure/xl2tex/latex"
)

// Options selects what to convert and how.
type Options struct {
	Sheet    string         // worksheet name; empty means the first sheet
	Range    string         // e.g. "B2:F10"; empty means detect the table
	Reader   string         // "unioffice" (default) or "excelize"
	Settings latex.Settings // rendering settings
	Logger   logrus.FieldLogger
}
