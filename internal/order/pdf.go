package order

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/yolimar-textil/storefront-api/internal/models"
)

// brand colors carried over from the storefront theme
var (
	pdfPrimary = [3]int{31, 78, 121}
	pdfAccent  = [3]int{220, 38, 38}
	pdfText    = [3]int{30, 30, 30}
)

// PDF renders the production sheet for an order.
func PDF(summary *models.OrderSummary, company Company) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	// header band
	doc.SetFillColor(pdfPrimary[0], pdfPrimary[1], pdfPrimary[2])
	doc.Rect(0, 0, 210, 45, "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 24)
	doc.Text(20, 20, tr(company.Name))
	doc.SetFont("Helvetica", "", 10)
	doc.Text(20, 28, tr(company.Slogan))
	doc.Text(20, 34, tr("Tel: "+company.Phone+"  |  "+company.Email))

	// order identification
	doc.SetTextColor(pdfText[0], pdfText[1], pdfText[2])
	doc.SetFont("Helvetica", "B", 14)
	doc.Text(20, 58, tr("PEDIDO "+summary.OrderCode))
	doc.SetFont("Helvetica", "", 10)
	doc.Text(20, 65, summary.CreatedAt.Format("02/01/2006 15:04"))

	// client block
	y := 76.0
	doc.SetFont("Helvetica", "B", 11)
	doc.Text(20, y, tr("DATOS DEL CLIENTE"))
	doc.SetFont("Helvetica", "", 10)
	y += 6
	doc.Text(20, y, tr("Nombre: "+summary.Client.Name))
	y += 5
	doc.Text(20, y, tr("Telefono: "+summary.Client.Phone))
	if summary.Client.Email != "" {
		y += 5
		doc.Text(20, y, tr("Email: "+summary.Client.Email))
	}
	if summary.Client.Address != "" {
		y += 5
		doc.Text(20, y, tr("Direccion: "+summary.Client.Address))
	}
	if summary.Client.Notes != "" {
		y += 5
		doc.Text(20, y, tr("Notas: "+summary.Client.Notes))
	}

	// items table
	y += 10
	doc.SetXY(20, y)
	doc.SetFillColor(pdfPrimary[0], pdfPrimary[1], pdfPrimary[2])
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 9)
	headers := []struct {
		label string
		width float64
	}{
		{"Producto", 55},
		{"Codigo", 30},
		{"Color/Talla", 35},
		{"Cant.", 15},
		{"P. Unit", 17},
		{"Total", 18},
	}
	for _, h := range headers {
		doc.CellFormat(h.width, 7, tr(h.label), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetTextColor(pdfText[0], pdfText[1], pdfText[2])
	doc.SetFont("Helvetica", "", 9)
	for _, line := range summary.Lines {
		name := line.Name
		if line.IsCustom && line.DesignName != "" {
			name += " - " + line.DesignName
		}
		doc.SetX(20)
		doc.CellFormat(55, 7, tr(name), "1", 0, "L", false, 0, "")
		doc.CellFormat(30, 7, tr(lineCode(line)), "1", 0, "C", false, 0, "")
		doc.CellFormat(35, 7, tr(colorName(line.Color)+"/"+line.Size), "1", 0, "C", false, 0, "")
		doc.CellFormat(15, 7, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", false, 0, "")
		doc.CellFormat(17, 7, fmt.Sprintf("%d.00", line.UnitPrice), "1", 0, "R", false, 0, "")
		doc.CellFormat(18, 7, fmt.Sprintf("%d.00", line.LineTotal), "1", 0, "R", false, 0, "")
		doc.Ln(-1)
	}

	// totals block
	doc.Ln(4)
	doc.SetX(110)
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(50, 6, tr("Total prendas"), "", 0, "R", false, 0, "")
	doc.CellFormat(30, 6, fmt.Sprintf("%d", summary.TotalItems), "", 0, "R", false, 0, "")
	doc.Ln(-1)
	doc.SetX(110)
	doc.CellFormat(50, 6, "Subtotal", "", 0, "R", false, 0, "")
	doc.CellFormat(30, 6, fmt.Sprintf("Bs. %d.00", summary.Subtotal), "", 0, "R", false, 0, "")
	doc.Ln(-1)
	if summary.TotalDiscount > 0 {
		doc.SetX(110)
		doc.SetTextColor(pdfAccent[0], pdfAccent[1], pdfAccent[2])
		doc.CellFormat(50, 6, "Descuentos", "", 0, "R", false, 0, "")
		doc.CellFormat(30, 6, fmt.Sprintf("-Bs. %d.00", summary.TotalDiscount), "", 0, "R", false, 0, "")
		doc.Ln(-1)
		doc.SetTextColor(pdfText[0], pdfText[1], pdfText[2])
	}
	doc.SetX(110)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(50, 8, "TOTAL A PAGAR", "", 0, "R", false, 0, "")
	doc.CellFormat(30, 8, fmt.Sprintf("Bs. %d.00", summary.TotalPrice), "", 0, "R", false, 0, "")

	// footer
	doc.SetY(-25)
	doc.SetFont("Helvetica", "I", 8)
	doc.SetTextColor(120, 120, 120)
	doc.CellFormat(0, 5, tr(company.Website), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render order pdf: %w", err)
	}
	return buf.Bytes(), nil
}
