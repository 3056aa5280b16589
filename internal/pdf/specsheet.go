package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/clock"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

// SpecSheetRenderer draws the printable product spec sheet: brand header,
// title, optional price, attribute grid, long-form sections, and a QR code
// linking back to the product page.
type SpecSheetRenderer struct {
	siteURL string
	clock   clock.Clock
}

func NewSpecSheetRenderer(siteURL string, clk clock.Clock) *SpecSheetRenderer {
	return &SpecSheetRenderer{siteURL: siteURL, clock: clk}
}

const (
	pageWidth  = 210.0
	pageHeight = 297.0
	margin     = 20.0
	contentW   = pageWidth - margin*2
	footerY    = pageHeight - 18.0
	qrSize     = 24.0
)

func (r *SpecSheetRenderer) Render(product domain.Product, includePrice bool) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(r.clock.Now())
	pdf.SetAutoPageBreak(false, margin)
	pdf.AddPage()
	y := margin

	// Header rule and brand line.
	pdf.SetDrawColor(194, 160, 82)
	pdf.SetLineWidth(0.5)
	pdf.Line(margin, y, pageWidth-margin, y)
	y += 8

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 32, 38)
	pdf.Text(margin, y, "WAREHOUSE 414")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(140, 140, 150)
	pdf.Text(pageWidth-margin-pdf.GetStringWidth("SPEC SHEET"), y, "SPEC SHEET")
	y += 4

	pdf.SetFontSize(7)
	pdf.Text(margin, y, "Curated Vintage & Mid-Century Modern Furniture")
	y += 8

	pdf.SetDrawColor(194, 160, 82)
	pdf.Line(margin, y, pageWidth-margin, y)
	y += 12

	// Title.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(30, 32, 38)
	y = r.writeLines(pdf, product.Name, y, 8)
	y += 4

	if product.SKU != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(140, 140, 150)
		pdf.Text(margin, y, "SKU: "+product.SKU)
		y += 6
	}

	if includePrice && product.Price != nil {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(194, 160, 82)
		pdf.Text(margin, y, "$"+product.Price.StringFixed(0))
		y += 10
	}

	pdf.SetDrawColor(220, 220, 224)
	pdf.SetLineWidth(0.3)
	pdf.Line(margin, y, pageWidth-margin, y)
	y += 8

	// Attribute grid, two columns.
	type detail struct{ label, value string }
	var details []detail
	add := func(label, value string) {
		if value != "" {
			details = append(details, detail{label, value})
		}
	}
	add("Designer", product.DesignerName)
	add("Maker", product.MakerName)
	add("Category", product.CategoryName)
	add("Style", product.StyleName)
	add("Period", product.PeriodName)
	add("Country of Origin", product.CountryName)
	add("Year", product.YearCreated)
	add("Condition", product.Condition)

	colW := contentW / 2
	for i := 0; i < len(details); i += 2 {
		for col := 0; col < 2 && i+col < len(details); col++ {
			d := details[i+col]
			x := margin + float64(col)*colW

			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(140, 140, 150)
			pdf.Text(x, y, strings.ToUpper(d.label))

			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(30, 32, 38)
			pdf.Text(x, y+5, d.value)
		}
		y += 14
	}
	y += 2

	// Long-form sections.
	description := product.ShortDescription
	if description == "" {
		description = product.LongDescription
	}
	y = r.section(pdf, "Description", description, y)
	y = r.section(pdf, "Materials", product.Materials, y)
	y = r.section(pdf, "Dimensions", product.ProductDimensions, y)
	y = r.section(pdf, "Shipping / Crated Dimensions", product.BoxDimensions, y)

	// QR code linking back to the product page.
	link := fmt.Sprintf("%s/product/%s", r.siteURL, product.ID)
	qrPNG, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err == nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("product-qr", opts, bytes.NewReader(qrPNG))
		pdf.ImageOptions("product-qr", pageWidth-margin-qrSize, footerY-qrSize-4, qrSize, qrSize, false, opts, 0, "")
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(140, 140, 150)
		pdf.Text(pageWidth-margin-qrSize, footerY-1, "View online")
	}

	// Footer.
	pdf.SetDrawColor(194, 160, 82)
	pdf.SetLineWidth(0.5)
	pdf.Line(margin, footerY, pageWidth-margin, footerY)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(140, 140, 150)
	pdf.Text(margin, footerY+5, "warehouse414.com  -  chris@warehouse414.com  -  785.232.8008")
	generated := "Generated " + r.clock.Now().Format("January 2, 2006")
	pdf.Text(pageWidth-margin-pdf.GetStringWidth(generated), footerY+5, generated)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render spec sheet: %w", err)
	}
	return buf.Bytes(), nil
}

// section writes an upper-case label and wrapped body text, returning the
// next baseline. Empty content is skipped.
func (r *SpecSheetRenderer) section(pdf *gofpdf.Fpdf, label, content string, y float64) float64 {
	if content == "" {
		return y
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(100, 100, 110)
	pdf.Text(margin, y, strings.ToUpper(label))
	y += 5

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(50, 52, 58)
	return r.writeLines(pdf, content, y, 5.5) + 7
}

// writeLines wraps text to the content width and writes each line,
// returning the baseline after the last line.
func (r *SpecSheetRenderer) writeLines(pdf *gofpdf.Fpdf, text string, y, lineHeight float64) float64 {
	lines := pdf.SplitLines([]byte(text), contentW)
	for _, line := range lines {
		pdf.Text(margin, y, string(line))
		y += lineHeight
	}
	return y
}
