package xlsx

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// UniofficeReader reads worksheets with github.com/unidoc/unioffice.
type UniofficeReader struct {
	Log logrus.FieldLogger
}

// ReadSheet reads an XLSX from r/size and returns the named worksheet as a grid.
func (u *UniofficeReader) ReadSheet(r io.ReaderAt, size int64, name string) (*Sheet, error) {
	log := u.Log
	if log == nil {
		log = discardLogger()
	}

	r, size, err := relativizeTargets(r, size)
	if err != nil {
		return nil, err
	}
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, fmt.Errorf("xlsx: read workbook: %w", err)
	}

	sheets := wb.Sheets()
	names := make([]string, len(sheets))
	for i, s := range sheets {
		names[i] = s.Name()
	}
	idx, err := pickSheet(names, name)
	if err != nil {
		return nil, err
	}
	sheet := sheets[idx]
	log = log.WithFields(logrus.Fields{"reader": ReaderUnioffice, "sheet": sheet.Name()})

	// --- process merges ---
	var merges []MergeRange
	if sheet.X().MergeCells != nil {
		for _, mc := range sheet.X().MergeCells.MergeCell {
			m, err := ParseMergeRange(mc.RefAttr)
			if err != nil {
				log.WithError(err).WithField("range", mc.RefAttr).Warn("skipping merge with bad reference")
				continue
			}
			merges = append(merges, m)
		}
	}

	// Row.Cells grows the row's cell list while filling gaps, so it is read
	// once and the same slice serves the extent and the grid.
	type storedCell struct {
		row, col int
		cell     spreadsheet.Cell
	}
	var stored []storedCell
	maxRows, maxCols := 0, 0
	for _, row := range sheet.Rows() {
		rowIdx := int(row.RowNumber()) - 1
		if rowIdx < 0 {
			continue
		}
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			col := int(reference.ColumnToIndex(colName))
			stored = append(stored, storedCell{row: rowIdx, col: col, cell: cell})
			maxRows = max(maxRows, rowIdx+1)
			maxCols = max(maxCols, col+1)
		}
	}
	for _, m := range merges {
		maxRows = max(maxRows, m.EndRow+1)
		maxCols = max(maxCols, m.EndCol+1)
	}
	log.WithFields(logrus.Fields{"rows": maxRows, "cols": maxCols}).Debug("sheet extent")

	grid := NewSheet(sheet.Name(), maxRows, maxCols)
	grid.Merges = merges
	styles := newStyleResolver(wb, log)

	for _, sc := range stored {
		dst := grid.At(sc.row, sc.col)

		value, err := sc.cell.GetRawValue()
		if err != nil {
			return nil, fmt.Errorf("xlsx: value of %s: %w", dst.Ref, err)
		}
		dst.Value = value

		var styleID uint32
		if sc.cell.X().SAttr != nil {
			styleID = *sc.cell.X().SAttr
		}
		dst.Style = styles.Resolve(styleID)
	}
	grid.clearCovered()

	return grid, nil
}
