package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents an authenticated back-office user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Customer represents a buying party.
type Customer struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	ContactName string    `db:"contact_name" json:"contact_name"`
	Email       string    `db:"email" json:"email"`
	Phone       string    `db:"phone" json:"phone"`
	Address     string    `db:"address" json:"address"`
	VATNumber   string    `db:"vat_number" json:"vat_number"`
	Notes       string    `db:"notes" json:"notes"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Supplier represents a selling party.
type Supplier struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	ContactName  string    `db:"contact_name" json:"contact_name"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	Address      string    `db:"address" json:"address"`
	VATNumber    string    `db:"vat_number" json:"vat_number"`
	PaymentTerms string    `db:"payment_terms" json:"payment_terms"`
	Notes        string    `db:"notes" json:"notes"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Product represents a catalog entry.
type Product struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	SKU            string          `db:"sku" json:"sku"`
	Name           string          `db:"name" json:"name"`
	CommercialName string          `db:"commercial_name" json:"commercial_name"`
	Packaging      string          `db:"packaging" json:"packaging"`
	PricePerLB     decimal.Decimal `db:"price_per_lb" json:"price_per_lb"`
	IsActive       bool            `db:"is_active" json:"is_active"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// Invoice represents a sales invoice. Line items are stored as a JSON
// document; the total is recomputed server-side on every write.
type Invoice struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	CustomerID    uuid.UUID       `db:"customer_id" json:"customer_id"`
	IssueDate     *time.Time      `db:"issue_date" json:"issue_date"`
	DueDate       *time.Time      `db:"due_date" json:"due_date"`
	Terms         string          `db:"terms" json:"terms"`
	Currency      string          `db:"currency" json:"currency"`
	LineItems     json.RawMessage `db:"line_items" json:"line_items"`
	Total         decimal.Decimal `db:"total" json:"total"`
	Status        InvoiceStatus   `db:"status" json:"status"`
	CreatedBy     uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// Payment represents money received against an invoice.
type Payment struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	InvoiceID uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	Method    string          `db:"method" json:"method"`
	Reference string          `db:"reference" json:"reference"`
	PaidAt    *time.Time      `db:"paid_at" json:"paid_at"`
	Status    PaymentStatus   `db:"status" json:"status"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// Shipment represents an outbound delivery, optionally tied to an invoice.
type Shipment struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	CustomerID     uuid.UUID      `db:"customer_id" json:"customer_id"`
	InvoiceID      *uuid.UUID     `db:"invoice_id" json:"invoice_id"`
	Carrier        string         `db:"carrier" json:"carrier"`
	TrackingNumber string         `db:"tracking_number" json:"tracking_number"`
	Status         ShipmentStatus `db:"status" json:"status"`
	ShippedAt      *time.Time     `db:"shipped_at" json:"shipped_at"`
	DeliveredAt    *time.Time     `db:"delivered_at" json:"delivered_at"`
	Notes          string         `db:"notes" json:"notes"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// ProductionBatch represents a manufacturing run of a product.
type ProductionBatch struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	ProductID   uuid.UUID       `db:"product_id" json:"product_id"`
	LotNumber   string          `db:"lot_number" json:"lot_number"`
	QuantityLB  decimal.Decimal `db:"quantity_lb" json:"quantity_lb"`
	Status      BatchStatus     `db:"status" json:"status"`
	StartedAt   *time.Time      `db:"started_at" json:"started_at"`
	CompletedAt *time.Time      `db:"completed_at" json:"completed_at"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// InventoryItem represents stock of a product at a warehouse location.
type InventoryItem struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	ProductID  uuid.UUID       `db:"product_id" json:"product_id"`
	Warehouse  string          `db:"warehouse" json:"warehouse"`
	Location   string          `db:"location" json:"location"`
	LotNumber  string          `db:"lot_number" json:"lot_number"`
	QuantityLB decimal.Decimal `db:"quantity_lb" json:"quantity_lb"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`
}

// WireTransfer is a bank-transfer record attached to an invoice. Approval
// cascades to mark the parent invoice paid.
type WireTransfer struct {
	ID        uuid.UUID          `db:"id" json:"id"`
	InvoiceID uuid.UUID          `db:"invoice_id" json:"invoice_id"`
	BankName  string             `db:"bank_name" json:"bank_name"`
	Reference string             `db:"reference" json:"reference"`
	Amount    decimal.Decimal    `db:"amount" json:"amount"`
	Status    WireTransferStatus `db:"status" json:"status"`
	DecidedBy *uuid.UUID         `db:"decided_by" json:"decided_by"`
	DecidedAt *time.Time         `db:"decided_at" json:"decided_at"`
	CreatedBy uuid.UUID          `db:"created_by" json:"created_by"`
	CreatedAt time.Time          `db:"created_at" json:"created_at"`
}

// StatusHistory is one append-only entry in the state-transition ledger.
type StatusHistory struct {
	ID         uuid.UUID `db:"id" json:"id"`
	EntityType string    `db:"entity_type" json:"entity_type"`
	EntityID   uuid.UUID `db:"entity_id" json:"entity_id"`
	OldStatus  *string   `db:"old_status" json:"old_status"`
	NewStatus  string    `db:"new_status" json:"new_status"`
	ChangedBy  uuid.UUID `db:"changed_by" json:"changed_by"`
	Note       string    `db:"note" json:"note"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// WarehouseStock is one row of the wholesale-replaced warehouse snapshot.
type WarehouseStock struct {
	ID          int64            `db:"id" json:"id"`
	WHS         string           `db:"whs" json:"whs"`
	Location    string           `db:"location" json:"location"`
	Article     string           `db:"article" json:"article"`
	Description string           `db:"description" json:"description"`
	Stock       int64            `db:"stock" json:"stock"`
	Unit        string           `db:"unit" json:"unit"`
	WeightLB    *decimal.Decimal `db:"weight_lb" json:"weight_lb"`
	Lot         string           `db:"lot" json:"lot"`
}

// StockUpload is the audit record written alongside each stock import.
type StockUpload struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Filename   string    `db:"filename" json:"filename"`
	RowCount   int       `db:"row_count" json:"row_count"`
	Source     string    `db:"source" json:"source"`
	UploadedBy uuid.UUID `db:"uploaded_by" json:"uploaded_by"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploaded_at"`
}
