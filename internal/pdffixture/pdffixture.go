// Package pdffixture writes small text-only PDFs for tests.
package pdffixture

import "github.com/jung-kurt/gofpdf"

const lineHeight = 6.0

// Write renders one page per element of pages, one text line per string. An
// empty string leaves a blank line.
func Write(path string, pages [][]string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	for _, lines := range pages {
		pdf.AddPage()
		for _, ln := range lines {
			if ln == "" {
				pdf.Ln(lineHeight)
				continue
			}
			pdf.CellFormat(0, lineHeight, ln, "", 1, "L", false, 0, "")
		}
	}
	return pdf.OutputFileAndClose(path)
}
