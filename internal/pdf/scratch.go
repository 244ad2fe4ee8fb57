package pdf

import (
	"github.com/jung-kurt/gofpdf"
)

// fieldSource resolves company and bank fields, preferring the stored
// template config over values posted with the invoice data.
type fieldSource struct {
	cfg  map[string]string
	data *InvoiceData
}

func (f fieldSource) get(key, fallback string) string {
	if v, ok := f.cfg[key]; ok && v != "" {
		return v
	}
	return fallback
}

// drawScratch renders the full two-page invoice layout without a
// template: header band, info row, client block, striped item table
// with a highlighted total row, then a terms page with a bordered
// payment-details box.
func drawScratch(doc *gofpdf.Fpdf, data *InvoiceData, cfg map[string]string) {
	src := fieldSource{cfg: cfg, data: data}

	doc.AddPage()
	drawScratchHeader(doc, src)
	drawScratchInfoRow(doc, data)
	drawScratchClientBlock(doc, data)

	y := drawScratchTable(doc, data)
	drawScratchTotalRow(doc, data, y)

	doc.AddPage()
	drawScratchTermsPage(doc, data, src)
}

func drawScratchHeader(doc *gofpdf.Fpdf, src fieldSource) {
	doc.SetFillColor(31, 41, 55)
	doc.Rect(0, 0, refPageWidth+0.28, 70, "F")

	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 22)
	doc.Text(scratchMarginLeft, 44, "INVOICE")

	doc.SetFont("Helvetica", "", 10)
	name := src.get("company_name", src.data.CompanyName)
	if name != "" {
		doc.SetXY(scratchMarginLeft+scratchTableWidth-220, 30)
		doc.CellFormat(220, 14, name, "", 0, "R", false, 0, "")
	}
	addr := src.get("company_address1", src.data.CompanyAddress1)
	if addr != "" {
		doc.SetXY(scratchMarginLeft+scratchTableWidth-220, 44)
		doc.CellFormat(220, 14, addr, "", 0, "R", false, 0, "")
	}
	doc.SetTextColor(0, 0, 0)
}

func drawScratchInfoRow(doc *gofpdf.Fpdf, data *InvoiceData) {
	rows := []struct{ label, value string }{
		{"Invoice No", data.InvoiceNumber},
		{"Issue Date", data.IssueDate},
		{"Due Date", data.DueDate},
	}
	y := 92.0
	for _, row := range rows {
		if row.value == "" {
			y += 16
			continue
		}
		doc.SetFont("Helvetica", "B", 10)
		doc.SetXY(370, y)
		doc.CellFormat(80, 14, row.label+":", "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(105, 14, row.value, "", 0, "R", false, 0, "")
		y += 16
	}
}

func drawScratchClientBlock(doc *gofpdf.Fpdf, data *InvoiceData) {
	doc.SetFont("Helvetica", "B", 10)
	doc.Text(scratchMarginLeft, 102, "BILL TO")
	doc.SetFont("Helvetica", "", 10)

	y := 118.0
	for _, line := range []string{data.ClientName, data.ClientAddress1, data.ClientAddress2, data.ClientVAT} {
		if line == "" {
			continue
		}
		doc.Text(scratchMarginLeft, y, line)
		y += 14
	}
}

func drawScratchTableHeader(doc *gofpdf.Fpdf, y float64) float64 {
	doc.SetFillColor(31, 41, 55)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 9)
	doc.SetXY(scratchMarginLeft, y)
	for i, h := range scratchHeaders {
		align := "L"
		if i >= 4 {
			align = "R"
		}
		doc.CellFormat(scratchColWidths[i], scratchRowHeight, h, "", 0, align, true, 0, "")
	}
	doc.SetTextColor(0, 0, 0)
	return y + scratchRowHeight
}

// drawScratchTable renders the striped item rows, breaking to a new
// page and redrawing the header when the cursor passes the threshold.
// It returns the vertical cursor below the last row.
func drawScratchTable(doc *gofpdf.Fpdf, data *InvoiceData) float64 {
	y := drawScratchTableHeader(doc, 200)
	doc.SetFont("Helvetica", "", 9)

	for i, item := range data.Items {
		if y > scratchPageBreakY {
			doc.AddPage()
			y = drawScratchTableHeader(doc, scratchMarginTop)
			doc.SetFont("Helvetica", "", 9)
		}
		if i%2 == 1 {
			doc.SetFillColor(243, 244, 246)
		} else {
			doc.SetFillColor(255, 255, 255)
		}

		cells := [7]string{
			itemNumber(i, item),
			item.Reference,
			item.CommercialName,
			item.Packaging,
			formatQuantity(item.QuantityLB),
			formatUnitPrice(item.PricePerLB),
			formatAmount(lineAmount(item)),
		}
		doc.SetXY(scratchMarginLeft, y)
		for c, text := range cells {
			align := "L"
			if c >= 4 {
				align = "R"
			}
			doc.CellFormat(scratchColWidths[c], scratchRowHeight, text, "", 0, align, true, 0, "")
		}
		y += scratchRowHeight
	}
	return y
}

func drawScratchTotalRow(doc *gofpdf.Fpdf, data *InvoiceData, y float64) {
	if y > scratchPageBreakY {
		doc.AddPage()
		y = scratchMarginTop
	}
	doc.SetFillColor(229, 231, 235)
	doc.SetFont("Helvetica", "B", 10)
	doc.SetXY(scratchMarginLeft, y)

	labelWidth := scratchTableWidth - scratchColWidths[5] - scratchColWidths[6]
	doc.CellFormat(labelWidth, scratchRowHeight+4, "TOTAL", "", 0, "R", true, 0, "")
	doc.CellFormat(scratchColWidths[5]+scratchColWidths[6], scratchRowHeight+4,
		formatUSD(grandTotal(data)), "", 0, "R", true, 0, "")
}

func drawScratchTermsPage(doc *gofpdf.Fpdf, data *InvoiceData, src fieldSource) {
	doc.SetFont("Helvetica", "B", 12)
	doc.Text(scratchMarginLeft, 70, "Terms & Conditions")

	doc.SetFont("Helvetica", "", 10)
	y := 94.0
	for _, line := range []struct{ label, value string }{
		{"Payment terms", data.PaymentTerms},
		{"Delivery terms", data.DeliveryTerms},
		{"Notes", data.Notes},
	} {
		if line.value == "" {
			continue
		}
		doc.Text(scratchMarginLeft, y, line.label+": "+line.value)
		y += 16
	}

	boxTop := y + 30
	doc.SetDrawColor(31, 41, 55)
	doc.SetLineWidth(0.8)
	doc.Rect(scratchMarginLeft, boxTop, scratchTableWidth, 110, "D")

	doc.SetFont("Helvetica", "B", 11)
	doc.Text(scratchMarginLeft+12, boxTop+22, "Payment Details")

	doc.SetFont("Helvetica", "", 10)
	row := boxTop + 42
	for _, line := range []struct{ label, value string }{
		{"Bank", src.get("bank_name", data.BankName)},
		{"IBAN", src.get("iban", data.IBAN)},
		{"BIC/SWIFT", src.get("bic", data.BIC)},
		{"VAT", src.get("company_vat", data.CompanyVAT)},
	} {
		if line.value == "" {
			continue
		}
		doc.Text(scratchMarginLeft+12, row, line.label+": "+line.value)
		row += 16
	}
}
