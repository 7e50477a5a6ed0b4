package xlsx

import (
	"github.com/sirupsen/logrus"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
)

// styleResolver turns unioffice style ids into CellStyle values. Each id is
// resolved once per workbook.
type styleResolver struct {
	wb      *spreadsheet.Workbook
	log     logrus.FieldLogger
	cache   map[uint32]CellStyle
	palette []string // theme colours, loaded on first use
}

func newStyleResolver(wb *spreadsheet.Workbook, log logrus.FieldLogger) *styleResolver {
	return &styleResolver{wb: wb, log: log, cache: make(map[uint32]CellStyle)}
}

func (sr *styleResolver) xf(styleID uint32) *sml.CT_Xf {
	ss := sr.wb.StyleSheet.X()
	if ss == nil || ss.CellXfs == nil || int(styleID) >= len(ss.CellXfs.Xf) {
		return nil
	}
	return ss.CellXfs.Xf[styleID]
}

// font extracts the underlying font XML struct from a style ID.
func (sr *styleResolver) font(xf *sml.CT_Xf) *sml.CT_Font {
	ss := sr.wb.StyleSheet.X()
	if xf == nil || xf.FontIdAttr == nil || ss.Fonts == nil {
		return nil
	}
	idx := int(*xf.FontIdAttr)
	if idx >= len(ss.Fonts.Font) {
		return nil
	}
	return ss.Fonts.Font[idx]
}

func (sr *styleResolver) fill(xf *sml.CT_Xf) *sml.CT_Fill {
	ss := sr.wb.StyleSheet.X()
	if xf == nil || xf.FillIdAttr == nil || ss.Fills == nil {
		return nil
	}
	idx := int(*xf.FillIdAttr)
	if idx >= len(ss.Fills.Fill) {
		return nil
	}
	return ss.Fills.Fill[idx]
}

func (sr *styleResolver) border(xf *sml.CT_Xf) *sml.CT_Border {
	ss := sr.wb.StyleSheet.X()
	if xf == nil || xf.BorderIdAttr == nil || ss.Borders == nil {
		return nil
	}
	idx := int(*xf.BorderIdAttr)
	if idx >= len(ss.Borders.Border) {
		return nil
	}
	return ss.Borders.Border[idx]
}

// Resolve returns the CellStyle for a cell's style id.
func (sr *styleResolver) Resolve(styleID uint32) CellStyle {
	if st, ok := sr.cache[styleID]; ok {
		return st
	}

	var st CellStyle
	xf := sr.xf(styleID)

	if font := sr.font(xf); font != nil {
		st.Bold = boolProp(font.B)
		st.Italic = boolProp(font.I)
		if len(font.Color) > 0 && font.Color[0].RgbAttr != nil && *font.Color[0].RgbAttr != "" {
			st.FontColor = normalizeColor(*font.Color[0].RgbAttr)
		}
	}

	st.Fill = sr.resolveFill(sr.fill(xf), styleID)

	if b := sr.border(xf); b != nil {
		st.Border = Borders{
			Top:    hasBorderStyle(b.Top),
			Bottom: hasBorderStyle(b.Bottom),
			Left:   hasBorderStyle(b.Left),
			Right:  hasBorderStyle(b.Right),
		}
	}

	if xf != nil && xf.Alignment != nil {
		st.HorizontalAlign = ParseHAlign(xf.Alignment.HorizontalAttr.String())
	}

	sr.cache[styleID] = st
	return st
}

func (sr *styleResolver) resolveFill(fill *sml.CT_Fill, styleID uint32) Fill {
	if fill == nil || fill.PatternFill == nil || fill.PatternFill.FgColor == nil {
		return Fill{}
	}
	if fill.PatternFill.PatternTypeAttr == sml.ST_PatternTypeNone {
		return Fill{}
	}

	fg := fill.PatternFill.FgColor
	switch {
	case fg.RgbAttr != nil && *fg.RgbAttr != "":
		return rgbFill(*fg.RgbAttr)
	case fg.IndexedAttr != nil:
		sr.log.WithFields(logrus.Fields{
			"style_id": styleID,
			"index":    *fg.IndexedAttr,
		}).Debug("palette fill colour left unrendered")
		return Fill{Kind: FillIndexed, Index: int(*fg.IndexedAttr)}
	case fg.ThemeAttr != nil:
		if hex, ok := sr.themeColor(int(*fg.ThemeAttr)); ok {
			return Fill{Kind: FillRGB, Color: normalizeColor(hex)}
		}
	}
	return Fill{}
}

// boolProp reads a font flag such as <b/> or <i val="0"/>.
func boolProp(props []*sml.CT_BooleanProperty) bool {
	if len(props) == 0 || props[0] == nil {
		return false
	}
	return props[0].ValAttr == nil || *props[0].ValAttr
}

func hasBorderStyle(pr *sml.CT_BorderPr) bool {
	if pr == nil {
		return false
	}
	return pr.StyleAttr != sml.ST_BorderStyleUnset && pr.StyleAttr != sml.ST_BorderStyleNone
}

// themeColor resolves a cell theme colour index against the workbook's
// first theme. Tint is not applied.
func (sr *styleResolver) themeColor(idx int) (string, bool) {
	if sr.palette == nil {
		sr.palette = themePalette(sr.wb)
	}
	if idx < 0 || idx >= len(sr.palette) || sr.palette[idx] == "" {
		return "", false
	}
	return sr.palette[idx], true
}

// themePalette lists the scheme colours in cell index order. Cells index the
// scheme with light and dark swapped: lt1, dk1, lt2, dk2, then accent1-6,
// hlink and folHlink.
func themePalette(wb *spreadsheet.Workbook) []string {
	palette := make([]string, 0, 12)
	themes := wb.Themes()
	if len(themes) == 0 || themes[0] == nil {
		return palette
	}
	cs := themes[0].ThemeElements.ClrScheme
	for _, clr := range []*dml.CT_Color{
		cs.Lt1, cs.Dk1, cs.Lt2, cs.Dk2,
		cs.Accent1, cs.Accent2, cs.Accent3, cs.Accent4, cs.Accent5, cs.Accent6,
		cs.Hlink, cs.FolHlink,
	} {
		palette = append(palette, schemeRGB(clr))
	}
	return palette
}

func schemeRGB(clr *dml.CT_Color) string {
	switch {
	case clr == nil:
		return ""
	case clr.SrgbClr != nil:
		return clr.SrgbClr.ValAttr
	case clr.SysClr != nil && clr.SysClr.LastClrAttr != nil:
		return *clr.SysClr.LastClrAttr
	}
	return ""
}
