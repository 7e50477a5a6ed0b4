package xlsx

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ExcelizeReader reads worksheets with github.com/xuri/excelize/v2.
type ExcelizeReader struct {
	Log logrus.FieldLogger
}

// ReadSheet reads an XLSX from r/size and returns the named worksheet as a grid.
func (e *ExcelizeReader) ReadSheet(r io.ReaderAt, size int64, name string) (*Sheet, error) {
	log := e.Log
	if log == nil {
		log = discardLogger()
	}

	f, err := excelize.OpenReader(io.NewSectionReader(r, 0, size))
	if err != nil {
		return nil, fmt.Errorf("xlsx: read workbook: %w", err)
	}
	defer f.Close()

	names := f.GetSheetList()
	idx, err := pickSheet(names, name)
	if err != nil {
		return nil, err
	}
	name = names[idx]
	log = log.WithFields(logrus.Fields{"reader": ReaderExcelize, "sheet": name})

	var merges []MergeRange
	mcs, err := f.GetMergeCells(name)
	if err != nil {
		return nil, fmt.Errorf("xlsx: merged cells of %q: %w", name, err)
	}
	for _, mc := range mcs {
		ref := mc.GetStartAxis() + ":" + mc.GetEndAxis()
		m, err := ParseMergeRange(ref)
		if err != nil {
			log.WithError(err).WithField("range", ref).Warn("skipping merge with bad reference")
			continue
		}
		merges = append(merges, m)
	}

	maxRows, maxCols, err := excelizeExtent(f, name)
	if err != nil {
		return nil, err
	}
	for _, m := range merges {
		maxRows = max(maxRows, m.EndRow+1)
		maxCols = max(maxCols, m.EndCol+1)
	}
	log.WithFields(logrus.Fields{"rows": maxRows, "cols": maxCols}).Debug("sheet extent")

	grid := NewSheet(name, maxRows, maxCols)
	grid.Merges = merges
	styles := make(map[int]CellStyle)

	for r := 0; r < maxRows; r++ {
		for c := 0; c < maxCols; c++ {
			dst := grid.At(r, c)
			value, err := f.GetCellValue(name, dst.Ref, excelize.Options{RawCellValue: true})
			if err != nil {
				return nil, fmt.Errorf("xlsx: value of %s: %w", dst.Ref, err)
			}
			dst.Value = value

			styleID, err := f.GetCellStyle(name, dst.Ref)
			if err != nil {
				return nil, fmt.Errorf("xlsx: style of %s: %w", dst.Ref, err)
			}
			st, ok := styles[styleID]
			if !ok {
				xs, err := f.GetStyle(styleID)
				if err != nil {
					return nil, fmt.Errorf("xlsx: style %d: %w", styleID, err)
				}
				st = fromExcelizeStyle(xs)
				styles[styleID] = st
			}
			dst.Style = st
		}
	}
	// GetCellValue repeats a merge's value in every cell it covers.
	grid.clearCovered()

	return grid, nil
}

// excelizeExtent takes the larger of the stored dimension and the value rows.
func excelizeExtent(f *excelize.File, sheet string) (rows, cols int, err error) {
	if dim, err := f.GetSheetDimension(sheet); err == nil && dim != "" {
		if b, err := ParseBounds(dim); err == nil {
			rows, cols = b.EndRow+1, b.EndCol+1
		}
	}
	data, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0, 0, fmt.Errorf("xlsx: rows of %q: %w", sheet, err)
	}
	rows = max(rows, len(data))
	for _, row := range data {
		cols = max(cols, len(row))
	}
	return rows, cols, nil
}

func fromExcelizeStyle(xs *excelize.Style) CellStyle {
	var st CellStyle
	if xs == nil {
		return st
	}
	if xs.Font != nil {
		st.Bold = xs.Font.Bold
		st.Italic = xs.Font.Italic
		if xs.Font.Color != "" {
			st.FontColor = normalizeColor(xs.Font.Color)
		}
	}
	if xs.Fill.Type == "pattern" && xs.Fill.Pattern > 0 && len(xs.Fill.Color) > 0 {
		st.Fill = rgbFill(xs.Fill.Color[0])
	}
	for _, b := range xs.Border {
		if b.Style <= 0 {
			continue
		}
		switch b.Type {
		case "top":
			st.Border.Top = true
		case "bottom":
			st.Border.Bottom = true
		case "left":
			st.Border.Left = true
		case "right":
			st.Border.Right = true
		}
	}
	if xs.Alignment != nil {
		st.HorizontalAlign = ParseHAlign(xs.Alignment.Horizontal)
	}
	return st
}
