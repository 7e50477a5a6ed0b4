package xlsx

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

var (
	// ErrSheetNotFound is returned when the requested worksheet does not exist.
	ErrSheetNotFound = errors.New("xlsx: sheet not found")
	// ErrUnknownReader is returned by NewReader for an unsupported backend name.
	ErrUnknownReader = errors.New("xlsx: unknown reader")
	// ErrNoSheets is returned for a workbook without worksheets.
	ErrNoSheets = errors.New("xlsx: workbook has no sheets")
)

// Reader loads one worksheet into a Sheet. An empty name selects the first
// sheet in the workbook.
type Reader interface {
	ReadSheet(r io.ReaderAt, size int64, name string) (*Sheet, error)
}

// Reader backend names accepted by NewReader.
const (
	ReaderUnioffice = "unioffice"
	ReaderExcelize  = "excelize"
)

// NewReader returns the backend registered under name. An empty name is the
// unioffice backend.
func NewReader(name string, log logrus.FieldLogger) (Reader, error) {
	if log == nil {
		log = discardLogger()
	}
	switch name {
	case "", ReaderUnioffice:
		return &UniofficeReader{Log: log}, nil
	case ReaderExcelize:
		return &ExcelizeReader{Log: log}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownReader, name)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// pickSheet returns the index of name in names, or 0 for an empty name.
func pickSheet(names []string, name string) (int, error) {
	if len(names) == 0 {
		return 0, ErrNoSheets
	}
	if name == "" {
		return 0, nil
	}
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
}
