package domain

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeJPG  FileType = "jpg"
	FileTypePNG  FileType = "png"
	FileTypeCSV  FileType = "csv"
	FileTypeDOCX FileType = "docx"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
	"csv":  FileTypeCSV,
	"docx": FileTypeDOCX,
}

// ContentTypes maps FileType to the MIME type used when serving it back.
var ContentTypes = map[FileType]string{
	FileTypePDF:  "application/pdf",
	FileTypeJPG:  "image/jpeg",
	FileTypePNG:  "image/png",
	FileTypeCSV:  "text/csv",
	FileTypeDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// SniffedContentTypes lists the magic-byte content types accepted for
// binary uploads. Text formats (csv) are not sniffable and skip the check.
var SniffedContentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"application/zip": true, // docx
}

// UserRole defines the back-office role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// ValidUserRoles is the set of assignable roles.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:  true,
	RoleMember: true,
}

// InvoiceStatus is the lifecycle of a sales invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

var ValidInvoiceStatuses = map[InvoiceStatus]bool{
	InvoiceStatusDraft:     true,
	InvoiceStatusSent:      true,
	InvoiceStatusPaid:      true,
	InvoiceStatusCancelled: true,
}

// PaymentStatus is the lifecycle of a payment record.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

var ValidPaymentStatuses = map[PaymentStatus]bool{
	PaymentStatusPending:   true,
	PaymentStatusConfirmed: true,
	PaymentStatusFailed:    true,
}

// ShipmentStatus is the lifecycle of a shipment.
type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "pending"
	ShipmentStatusInTransit ShipmentStatus = "in_transit"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
	ShipmentStatusCancelled ShipmentStatus = "cancelled"
)

var ValidShipmentStatuses = map[ShipmentStatus]bool{
	ShipmentStatusPending:   true,
	ShipmentStatusInTransit: true,
	ShipmentStatusDelivered: true,
	ShipmentStatusCancelled: true,
}

// BatchStatus is the lifecycle of a production batch.
type BatchStatus string

const (
	BatchStatusPlanned    BatchStatus = "planned"
	BatchStatusInProgress BatchStatus = "in_progress"
	BatchStatusCompleted  BatchStatus = "completed"
	BatchStatusCancelled  BatchStatus = "cancelled"
)

var ValidBatchStatuses = map[BatchStatus]bool{
	BatchStatusPlanned:    true,
	BatchStatusInProgress: true,
	BatchStatusCompleted:  true,
	BatchStatusCancelled:  true,
}

// WireTransferStatus is the wire-transfer state machine. Only
// pending -> approved and pending -> rejected are legal transitions.
type WireTransferStatus string

const (
	WireTransferPending  WireTransferStatus = "pending"
	WireTransferApproved WireTransferStatus = "approved"
	WireTransferRejected WireTransferStatus = "rejected"
)

// Entity type labels used in the status-history ledger.
const (
	EntityInvoice         = "invoice"
	EntityPayment         = "payment"
	EntityShipment        = "shipment"
	EntityProductionBatch = "production_batch"
	EntityWireTransfer    = "wire_transfer"
)

// OrderUnit values accepted from the order-scan extractor. Anything else
// falls back to tons.
var ValidOrderUnits = map[string]bool{
	"tons": true,
	"kg":   true,
	"lbs":  true,
}

const DefaultOrderUnit = "tons"
