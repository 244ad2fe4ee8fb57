package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"metalflow/internal/domain"
	"metalflow/internal/port"
)

// OrderScanItem is one extracted order line with catalog linkage.
type OrderScanItem struct {
	Name       string     `json:"name"`
	ProductID  *uuid.UUID `json:"product_id"`
	MatchedSKU string     `json:"matched_sku,omitempty"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
	UnitPrice  float64    `json:"unit_price"`
}

// OrderScanResult is the order draft returned to the caller.
type OrderScanResult struct {
	OrderNumber string          `json:"order_number"`
	OrderDate   string          `json:"order_date"`
	PartyName   string          `json:"party_name"`
	CustomerID  *uuid.UUID      `json:"customer_id"`
	SupplierID  *uuid.UUID      `json:"supplier_id"`
	Currency    string          `json:"currency"`
	Notes       string          `json:"notes"`
	SavedFile   string          `json:"saved_file,omitempty"`
	Items       []OrderScanItem `json:"items"`
}

// OrderScanService turns uploaded order documents into structured
// drafts with best-effort entity linkage.
type OrderScanService interface {
	Scan(ctx context.Context, fileBytes []byte, contentType, ext string) (*OrderScanResult, error)
}

type orderScanService struct {
	scanner      port.DocumentScanner
	customerRepo port.CustomerRepository
	supplierRepo port.SupplierRepository
	productRepo  port.ProductRepository
	storage      port.ObjectStorage
}

// NewOrderScanService creates a new OrderScanService implementation.
func NewOrderScanService(
	scanner port.DocumentScanner,
	customerRepo port.CustomerRepository,
	supplierRepo port.SupplierRepository,
	productRepo port.ProductRepository,
	storage port.ObjectStorage,
) OrderScanService {
	return &orderScanService{
		scanner:      scanner,
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		storage:      storage,
	}
}

func (s *orderScanService) Scan(ctx context.Context, fileBytes []byte, contentType, ext string) (*OrderScanResult, error) {
	// The original document is kept for later retrieval whether or not
	// extraction succeeds. A save failure never fails the request.
	savedFile := fmt.Sprintf("orders/%s.%s", time.Now().UTC().Format("20060102_150405"), ext)
	if err := s.storage.Save(ctx, savedFile, contentType, bytes.NewReader(fileBytes)); err != nil {
		log.Printf("saving scanned order file: %v", err)
		savedFile = ""
	}

	scanned, err := s.scanner.Scan(ctx, port.ScanInput{FileBytes: fileBytes, ContentType: contentType})
	if err != nil {
		return nil, err
	}

	result := &OrderScanResult{
		OrderNumber: scanned.OrderNumber,
		OrderDate:   scanned.OrderDate,
		PartyName:   scanned.PartyName,
		Currency:    scanned.Currency,
		Notes:       scanned.Notes,
		SavedFile:   savedFile,
		Items:       []OrderScanItem{},
	}

	s.matchParty(ctx, result)

	for _, item := range scanned.Items {
		unit := item.Unit
		if !domain.ValidOrderUnits[unit] {
			unit = domain.DefaultOrderUnit
		}

		out := OrderScanItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			Unit:      unit,
			UnitPrice: item.UnitPrice,
		}
		if item.Name != "" {
			if p, err := s.productRepo.FindByNameOrSKUSubstring(ctx, item.Name); err == nil {
				out.ProductID = &p.ID
				out.MatchedSKU = p.SKU
				out.Name = p.Name
			}
		}
		result.Items = append(result.Items, out)
	}

	return result, nil
}

// matchParty links the extracted party name by case-insensitive
// substring, customers first, then suppliers.
func (s *orderScanService) matchParty(ctx context.Context, result *OrderScanResult) {
	if result.PartyName == "" {
		return
	}
	if c, err := s.customerRepo.FindByNameSubstring(ctx, result.PartyName); err == nil {
		result.CustomerID = &c.ID
		return
	}
	if sup, err := s.supplierRepo.FindByNameSubstring(ctx, result.PartyName); err == nil {
		result.SupplierID = &sup.ID
	}
}
