// internal/render/pdf.go
//
// Lays out printable A5 cards from an organization table. Each card is
// meant to be folded down the middle: the left half shows the
// participant's own name (the cover), the right half the secret target
// and auxiliary values. The serial number appears on both halves so
// cards can be matched back to rows after cutting.

package render

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/kingrea/paranoia/internal/config"
	"github.com/kingrea/paranoia/internal/organize"
)

const ptToMM = 0.3527777778

// DefaultOutputFile is where cards land unless the caller overrides it.
const DefaultOutputFile = "output.pdf"

func lineHeight(fontSize, lineSpacing float64) float64 {
	return fontSize * ptToMM * lineSpacing
}

// Cards renders one card page per table row into a PDF at outPath.
// A leading blank page keeps cards on consistent sheets when printed
// duplex. If only is non-nil, rows whose ID is absent are skipped.
func Cards(t organize.Table, specs []organize.FieldSpec, pres config.Presentation, only map[int]bool, outPath string) error {
	labels := cardLabels(specs)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	wMid := pageW / 2
	hMid := pageH / 2
	margin := pres.PrintMargin

	for _, row := range t {
		if only != nil && !only[row.ID] {
			continue
		}
		if len(row.Values)+1 != len(labels) {
			return fmt.Errorf("render: row %d has %d values, want %d", row.ID, len(row.Values), len(labels)-1)
		}

		pdf.AddPage()

		if pres.PrintFoldLines {
			pdf.Line(0, hMid, pageW, hMid)
			pdf.Line(wMid, 0, wMid, pageH)
		}

		// Cover half: the participant's own name, centered.
		pdf.SetXY(margin, margin)
		pdf.SetFont(pres.CoverFontName, pres.CoverFontStyle, pres.CoverFontSize)
		pdf.MultiCell(wMid-margin*2, lineHeight(pres.CoverFontSize, pres.CoverLineSpacing), row.Player, "", "C", false)

		serial := fmt.Sprintf("%s%d", pres.IDPrefix, row.ID)
		writeSerial(pdf, pres, serial, margin, hMid)

		// Secret half: the target under the player field's label, then
		// each auxiliary field.
		values := append([]string{row.Target}, row.Values...)
		pdf.SetY(margin)
		for i, label := range labels {
			pdf.SetX(margin + wMid)
			pdf.SetFont(pres.FieldFontName, pres.FieldFontStyle, pres.FieldFontSize)
			pdf.MultiCell(wMid-margin*2, lineHeight(pres.FieldFontSize, pres.FieldLineSpacing), label, "", "", false)

			pdf.SetX(margin + wMid)
			pdf.SetFont(pres.ValueFontName, pres.ValueFontStyle, pres.ValueFontSize)
			pdf.MultiCell(wMid-margin*2, lineHeight(pres.ValueFontSize, pres.ValueLineSpacing), values[i], "", "", false)

			pdf.SetY(pdf.GetY() + pres.ValueFontSize*ptToMM*0.5)
		}

		writeSerial(pdf, pres, serial, margin+wMid, hMid)
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("render: write %s: %w", outPath, err)
	}
	return nil
}

// writeSerial places the serial number near the fold on one half.
func writeSerial(pdf *fpdf.Fpdf, pres config.Presentation, serial string, x, hMid float64) {
	pageW, _ := pdf.GetPageSize()
	wMid := pageW / 2
	margin := pres.PrintMargin
	pdf.SetXY(x, hMid-margin-pres.IDFontSize*ptToMM)
	pdf.SetFont(pres.IDFontName, pres.IDFontStyle, pres.IDFontSize)
	pdf.MultiCell(wMid-margin*2, pres.ValueFontSize*ptToMM*0.5, serial, "", "", false)
}

// cardLabels returns the right-half labels: the player field's name
// (labelling the target) followed by the non-player fields in
// declaration order, matching Row.Values.
func cardLabels(specs []organize.FieldSpec) []string {
	labels := make([]string, 0, len(specs))
	var playerLabel string
	for _, spec := range specs {
		if spec.IsPlayer {
			playerLabel = spec.Name
		} else {
			labels = append(labels, spec.Name)
		}
	}
	return append([]string{playerLabel}, labels...)
}
