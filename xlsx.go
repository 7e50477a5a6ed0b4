package xl2tex

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/aerissecure/xl2tex/latex"
	"github.com/aerissecure/xl2tex/xlsx"
)

// XlsxToLaTeX converts one worksheet region of the XLSX in r into a LaTeX
// tabular environment.
func XlsxToLaTeX(r io.ReaderAt, size int64, opts Options) (string, error) {
	if err := opts.Settings.Validate(); err != nil {
		return "", err
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	reader, err := xlsx.NewReader(opts.Reader, log)
	if err != nil {
		return "", err
	}
	sheet, err := reader.ReadSheet(r, size, opts.Sheet)
	if err != nil {
		return "", err
	}

	var bounds xlsx.Bounds
	if opts.Range != "" {
		bounds, err = xlsx.ParseBounds(opts.Range)
	} else {
		bounds, err = latex.DetectBounds(sheet)
	}
	if err != nil {
		return "", fmt.Errorf("sheet %q: %w", sheet.Name, err)
	}
	log.WithFields(logrus.Fields{
		"sheet": sheet.Name,
		"range": bounds.String(),
	}).Debug("table bounds")

	table, err := sheet.Region(bounds)
	if err != nil {
		return "", err
	}
	return latex.Render(table, opts.Settings)
}

// ConvertFile opens path, converts it and closes it again on every path.
func ConvertFile(path string, opts Options) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	return XlsxToLaTeX(f, info.Size(), opts)
}
