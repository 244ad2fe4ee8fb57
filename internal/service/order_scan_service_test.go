package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"metalflow/internal/domain"
	"metalflow/internal/port"
	"metalflow/mocks"
)

type scanFixture struct {
	scanner      *mocks.MockDocumentScanner
	customerRepo *mocks.MockCustomerRepo
	supplierRepo *mocks.MockSupplierRepo
	productRepo  *mocks.MockProductRepo
	storage      *mocks.MockObjectStorage
	svc          OrderScanService
}

func newScanFixture() *scanFixture {
	f := &scanFixture{
		scanner:      new(mocks.MockDocumentScanner),
		customerRepo: new(mocks.MockCustomerRepo),
		supplierRepo: new(mocks.MockSupplierRepo),
		productRepo:  new(mocks.MockProductRepo),
		storage:      new(mocks.MockObjectStorage),
	}
	f.svc = NewOrderScanService(f.scanner, f.customerRepo, f.supplierRepo, f.productRepo, f.storage)
	return f
}

func TestOrderScan_MatchesCustomerBeforeSupplier(t *testing.T) {
	f := newScanFixture()
	customerID := uuid.New()

	f.storage.On("Save", mock.Anything, mock.Anything, "application/pdf", mock.Anything).Return(nil)
	f.scanner.On("Scan", mock.Anything, mock.Anything).Return(&port.ScanResult{
		OrderNumber: "PO-7781",
		PartyName:   "Acme Alloys",
		Items:       []port.ScannedItem{},
	}, nil)
	f.customerRepo.On("FindByNameSubstring", mock.Anything, "Acme Alloys").
		Return(&domain.Customer{ID: customerID, Name: "Acme Alloys BV"}, nil)

	result, err := f.svc.Scan(context.Background(), []byte("%PDF-1.4"), "application/pdf", "pdf")
	require.NoError(t, err)
	require.NotNil(t, result.CustomerID)
	assert.Equal(t, customerID, *result.CustomerID)
	assert.Nil(t, result.SupplierID)
	f.supplierRepo.AssertNotCalled(t, "FindByNameSubstring", mock.Anything, mock.Anything)
}

func TestOrderScan_FallsBackToSupplier(t *testing.T) {
	f := newScanFixture()
	supplierID := uuid.New()

	f.storage.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.scanner.On("Scan", mock.Anything, mock.Anything).Return(&port.ScanResult{
		PartyName: "Nordic Metals",
		Items:     []port.ScannedItem{},
	}, nil)
	f.customerRepo.On("FindByNameSubstring", mock.Anything, "Nordic Metals").
		Return(nil, domain.ErrNotFound)
	f.supplierRepo.On("FindByNameSubstring", mock.Anything, "Nordic Metals").
		Return(&domain.Supplier{ID: supplierID, Name: "Nordic Metals OY"}, nil)

	result, err := f.svc.Scan(context.Background(), []byte("%PDF-1.4"), "application/pdf", "pdf")
	require.NoError(t, err)
	assert.Nil(t, result.CustomerID)
	require.NotNil(t, result.SupplierID)
	assert.Equal(t, supplierID, *result.SupplierID)
}

func TestOrderScan_UnitFallbackAndProductLinkage(t *testing.T) {
	f := newScanFixture()
	productID := uuid.New()

	f.storage.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.scanner.On("Scan", mock.Anything, mock.Anything).Return(&port.ScanResult{
		Items: []port.ScannedItem{
			{Name: "copper cathode", Quantity: 25, Unit: "pallets", UnitPrice: 8900},
			{Name: "zinc ingot", Quantity: 10, Unit: "kg", UnitPrice: 2.4},
		},
	}, nil)
	f.productRepo.On("FindByNameOrSKUSubstring", mock.Anything, "copper cathode").
		Return(&domain.Product{ID: productID, SKU: "CU-CATH-01", Name: "Copper Cathode Grade A"}, nil)
	f.productRepo.On("FindByNameOrSKUSubstring", mock.Anything, "zinc ingot").
		Return(nil, domain.ErrNotFound)

	result, err := f.svc.Scan(context.Background(), []byte("%PDF-1.4"), "application/pdf", "pdf")
	require.NoError(t, err)
	require.Len(t, result.Items, 2)

	matched := result.Items[0]
	assert.Equal(t, "tons", matched.Unit)
	require.NotNil(t, matched.ProductID)
	assert.Equal(t, productID, *matched.ProductID)
	assert.Equal(t, "CU-CATH-01", matched.MatchedSKU)
	assert.Equal(t, "Copper Cathode Grade A", matched.Name)

	unmatched := result.Items[1]
	assert.Equal(t, "kg", unmatched.Unit)
	assert.Nil(t, unmatched.ProductID)
	assert.Equal(t, "zinc ingot", unmatched.Name)
}

func TestOrderScan_SaveFailureDoesNotFailScan(t *testing.T) {
	f := newScanFixture()

	f.storage.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("disk full"))
	f.scanner.On("Scan", mock.Anything, mock.Anything).Return(&port.ScanResult{
		OrderNumber: "PO-1",
		Items:       []port.ScannedItem{},
	}, nil)

	result, err := f.svc.Scan(context.Background(), []byte("%PDF-1.4"), "application/pdf", "pdf")
	require.NoError(t, err)
	assert.Empty(t, result.SavedFile)
}

func TestOrderScan_ScannerFailureSurfaces(t *testing.T) {
	f := newScanFixture()

	f.storage.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.scanner.On("Scan", mock.Anything, mock.Anything).Return(nil, domain.ErrScannerUnconfigured)

	_, err := f.svc.Scan(context.Background(), []byte("%PDF-1.4"), "application/pdf", "pdf")
	require.ErrorIs(t, err, domain.ErrScannerUnconfigured)
}
