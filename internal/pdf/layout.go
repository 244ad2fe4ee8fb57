package pdf

// All draw positions are expressed in points relative to a fixed A4
// reference frame. Templates with slightly different page dimensions
// reuse the same relative layout through the per-axis scale factors.
const (
	refPageWidth  = 595.0
	refPageHeight = 842.0
)

// scaler converts reference-frame offsets to coordinates on the actual
// page. X and Y scale independently so non-A4 templates still line up.
type scaler struct {
	sx float64
	sy float64
}

func newScaler(pageWidth, pageHeight float64) scaler {
	return scaler{sx: pageWidth / refPageWidth, sy: pageHeight / refPageHeight}
}

func (s scaler) x(ref float64) float64 { return ref * s.sx }
func (s scaler) y(ref float64) float64 { return ref * s.sy }

// point is a reference-frame position for a single overlay field.
type point struct {
	x float64
	y float64
}

// Overlay positions for the first template page. The table region
// starts at overlayTableTop and advances by overlayRowHeight per item.
var (
	overlayInvoiceNumber = point{430, 118}
	overlayIssueDate     = point{430, 136}
	overlayDueDate       = point{430, 154}

	overlayClientName     = point{60, 210}
	overlayClientAddress1 = point{60, 226}
	overlayClientAddress2 = point{60, 242}
	overlayClientVAT      = point{60, 258}
)

const (
	overlayTableTop  = 320.0
	overlayRowHeight = 18.0
	overlayTotalGap  = 24.0
)

// Column x-offsets for overlay table cells, one per item field.
var overlayColumns = struct {
	no, reference, name, packaging, quantity, price, amount float64
}{
	no:        60,
	reference: 88,
	name:      168,
	packaging: 318,
	quantity:  388,
	price:     452,
	amount:    512,
}

// Second-page overlay rows: terms and bank details drawn at fixed
// vertical offsets, scaled by that page's own height.
var overlaySecondPageRows = []struct {
	y     float64
	field string
}{
	{300, "payment_terms"},
	{318, "delivery_terms"},
	{380, "bank_name"},
	{398, "iban"},
	{416, "bic"},
}

// Scratch-mode table schedule: seven column widths in points summing
// to scratchTableWidth.
var scratchColWidths = [7]float64{28, 82, 150, 70, 75, 55, 55}

const (
	scratchMarginLeft = 40.0
	scratchMarginTop  = 40.0
	scratchTableWidth = 515.0
	scratchRowHeight  = 18.0

	// Beyond this vertical cursor a new page is started and the table
	// header is redrawn.
	scratchPageBreakY = 760.0
)

var scratchHeaders = [7]string{"No", "Reference", "Commercial Name", "Packaging", "Qty (LB)", "Price/LB", "Amount"}
