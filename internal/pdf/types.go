package pdf

// LineItem is a single invoice row rendered in the item table.
type LineItem struct {
	No             int     `json:"no"`
	Reference      string  `json:"reference"`
	CommercialName string  `json:"commercial_name"`
	Packaging      string  `json:"packaging"`
	QuantityLB     float64 `json:"quantity_lb"`
	PricePerLB     float64 `json:"price_per_lb"`
}

// InvoiceData carries everything the layout engine needs to render an
// invoice. The company and bank fields are only consulted in scratch
// mode when no template config supplies them.
type InvoiceData struct {
	InvoiceNumber string `json:"invoice_number" binding:"required"`
	IssueDate     string `json:"issue_date"`
	DueDate       string `json:"due_date"`
	PaymentTerms  string `json:"payment_terms"`
	DeliveryTerms string `json:"delivery_terms"`

	ClientName     string `json:"client_name"`
	ClientAddress1 string `json:"client_address1"`
	ClientAddress2 string `json:"client_address2"`
	ClientVAT      string `json:"client_vat"`

	CompanyName     string `json:"company_name,omitempty"`
	CompanyAddress1 string `json:"company_address1,omitempty"`
	CompanyAddress2 string `json:"company_address2,omitempty"`
	CompanyTel      string `json:"company_tel,omitempty"`
	CompanyEmail    string `json:"company_email,omitempty"`
	CompanyVAT      string `json:"company_vat,omitempty"`
	BankName        string `json:"bank_name,omitempty"`
	IBAN            string `json:"iban,omitempty"`
	BIC             string `json:"bic,omitempty"`

	Notes string     `json:"notes,omitempty"`
	Items []LineItem `json:"items"`
}
