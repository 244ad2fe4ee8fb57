package pdf

import (
	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

// drawOverlay stamps invoice fields on top of the stored template's
// artwork. Each page draws at its own scale so templates that are not
// exactly A4 keep their relative field positions.
func drawOverlay(doc *gofpdf.Fpdf, data *InvoiceData, cfg map[string]string, templatePath string) {
	tpl := gofpdi.ImportPage(doc, templatePath, 1, "/MediaBox")
	sizes := gofpdi.GetPageSizes()
	w, h := pageDims(sizes, 1)

	doc.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
	gofpdi.UseImportedTemplate(doc, tpl, 0, 0, w, h)

	s := newScaler(w, h)
	drawOverlayFirstPage(doc, data, s)

	if w2, h2, ok := lookupPage(sizes, 2); ok {
		tpl2 := gofpdi.ImportPage(doc, templatePath, 2, "/MediaBox")
		doc.AddPageFormat("P", gofpdf.SizeType{Wd: w2, Ht: h2})
		gofpdi.UseImportedTemplate(doc, tpl2, 0, 0, w2, h2)
		drawOverlaySecondPage(doc, data, cfg, newScaler(w2, h2))
	}
}

func drawOverlayFirstPage(doc *gofpdf.Fpdf, data *InvoiceData, s scaler) {
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 10)

	fields := []struct {
		at    point
		value string
	}{
		{overlayInvoiceNumber, data.InvoiceNumber},
		{overlayIssueDate, data.IssueDate},
		{overlayDueDate, data.DueDate},
		{overlayClientName, data.ClientName},
		{overlayClientAddress1, data.ClientAddress1},
		{overlayClientAddress2, data.ClientAddress2},
		{overlayClientVAT, data.ClientVAT},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		doc.Text(s.x(f.at.x), s.y(f.at.y), f.value)
	}

	doc.SetFont("Helvetica", "", 9)
	for i, item := range data.Items {
		y := s.y(overlayTableTop + float64(i)*overlayRowHeight)
		doc.Text(s.x(overlayColumns.no), y, itemNumber(i, item))
		doc.Text(s.x(overlayColumns.reference), y, item.Reference)
		doc.Text(s.x(overlayColumns.name), y, item.CommercialName)
		doc.Text(s.x(overlayColumns.packaging), y, item.Packaging)
		textRight(doc, s.x(overlayColumns.quantity), y, formatQuantity(item.QuantityLB))
		textRight(doc, s.x(overlayColumns.price), y, formatUnitPrice(item.PricePerLB))
		textRight(doc, s.x(overlayColumns.amount), y, formatAmount(lineAmount(item)))
	}

	totalY := s.y(overlayTableTop + float64(len(data.Items))*overlayRowHeight + overlayTotalGap)
	doc.SetFont("Helvetica", "B", 10)
	textRight(doc, s.x(overlayColumns.amount), totalY, formatUSD(grandTotal(data)))
}

func drawOverlaySecondPage(doc *gofpdf.Fpdf, data *InvoiceData, cfg map[string]string, s scaler) {
	src := fieldSource{cfg: cfg, data: data}
	values := map[string]string{
		"payment_terms":  data.PaymentTerms,
		"delivery_terms": data.DeliveryTerms,
		"bank_name":      src.get("bank_name", data.BankName),
		"iban":           src.get("iban", data.IBAN),
		"bic":            src.get("bic", data.BIC),
	}

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 10)
	for _, row := range overlaySecondPageRows {
		v := values[row.field]
		if v == "" {
			continue
		}
		doc.Text(s.x(200), s.y(row.y), v)
	}
}

// textRight draws text so its right edge sits at x.
func textRight(doc *gofpdf.Fpdf, x, y float64, text string) {
	if text == "" {
		return
	}
	doc.Text(x-doc.GetStringWidth(text), y, text)
}

func pageDims(sizes map[int]map[string]map[string]float64, page int) (float64, float64) {
	w, h, ok := lookupPage(sizes, page)
	if !ok {
		return refPageWidth, refPageHeight
	}
	return w, h
}

func lookupPage(sizes map[int]map[string]map[string]float64, page int) (float64, float64, bool) {
	boxes, ok := sizes[page]
	if !ok {
		return 0, 0, false
	}
	box, ok := boxes["/MediaBox"]
	if !ok {
		return 0, 0, false
	}
	return box["w"], box["h"], true
}
