package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserInactive         = errors.New("user is inactive")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrDuplicateInvoiceNo   = errors.New("invoice number already exists")
	ErrDuplicateSKU         = errors.New("product sku already exists")
	ErrDuplicateLotNumber   = errors.New("lot number already exists")
	ErrInvalidStatus        = errors.New("invalid status value")
	ErrInvalidRole          = errors.New("invalid user role")
	ErrInvalidTransition    = errors.New("wire transfer is not pending")
	ErrInvalidFilename      = errors.New("filename contains disallowed characters")
	ErrMissingArticleColumn = errors.New("stock file is missing the article column")
	ErrEmptyStockFile       = errors.New("stock file is empty")
	ErrNoTemplate           = errors.New("no invoice template is configured")
	ErrScannerUnconfigured  = errors.New("document scanner is not configured")
	ErrScanFailed           = errors.New("order scan failed")
	ErrGenerationFailed     = errors.New("pdf generation failed")
)
