// Package pdf renders report tables as printable landscape PDF documents.
package pdf

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WriteTable renders a titled table to w, one page per overflow.
func WriteTable(w io.Writer, title string, headers []string, rows [][]string) error {
	doc := gofpdf.New("L", "mm", "A4", "")
	doc.SetTitle(title, true)
	doc.AddPage()

	doc.SetFont("Arial", "B", 16)
	doc.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	doc.Ln(2)

	pageWidth, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	usable := pageWidth - left - right

	colWidth := usable
	if len(headers) > 0 {
		colWidth = usable / float64(len(headers))
	}

	doc.SetFont("Arial", "B", 10)
	doc.SetFillColor(44, 62, 80)
	doc.SetTextColor(255, 255, 255)
	for _, h := range headers {
		doc.CellFormat(colWidth, 8, h, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(0, 0, 0)
	fill := false
	doc.SetFillColor(242, 242, 242)
	for _, row := range rows {
		for _, cell := range row {
			if cell == "" {
				cell = "-"
			}
			doc.CellFormat(colWidth, 7, cell, "1", 0, "C", fill, 0, "")
		}
		doc.Ln(-1)
		fill = !fill
	}

	return doc.Output(w)
}
