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
	"metalflow/mocks"
)

func TestStockImport_ReplacesSnapshot(t *testing.T) {
	repo := new(mocks.MockWarehouseStockRepo)
	svc := NewStockService(repo)
	userID := uuid.New()
	uploadID := uuid.New()

	csv := "WHS;Location;Article;Description;Stock\nA1;R1-01;CU-CATH-01;Copper cathode;120\nA1;R1-02;AL-INGOT-02;Aluminium ingot;45\n"

	repo.On("ReplaceAll", mock.Anything, mock.MatchedBy(func(rows []domain.WarehouseStock) bool {
		return len(rows) == 2 && rows[0].Article == "CU-CATH-01" && rows[1].Stock == 45
	}), mock.MatchedBy(func(u *domain.StockUpload) bool {
		return u.Filename == "stock.csv" && u.Source == "sap" && u.UploadedBy == userID
	})).Run(func(args mock.Arguments) {
		args.Get(2).(*domain.StockUpload).ID = uploadID
	}).Return(2, nil)

	result, err := svc.Import(context.Background(), []byte(csv), "stock.csv", "sap", userID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.RowsInserted)
	assert.Equal(t, uploadID, result.UploadID)
	repo.AssertExpectations(t)
}

func TestStockImport_MissingArticleColumnFailsBeforeReplace(t *testing.T) {
	repo := new(mocks.MockWarehouseStockRepo)
	svc := NewStockService(repo)

	csv := "WHS,Location,Description\nA1,R1-01,Copper cathode\n"

	_, err := svc.Import(context.Background(), []byte(csv), "stock.csv", "", uuid.New())
	require.ErrorIs(t, err, domain.ErrMissingArticleColumn)
	repo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestStockImport_EmptyFile(t *testing.T) {
	repo := new(mocks.MockWarehouseStockRepo)
	svc := NewStockService(repo)

	_, err := svc.Import(context.Background(), []byte("   \n"), "empty.csv", "", uuid.New())
	require.ErrorIs(t, err, domain.ErrEmptyStockFile)
	repo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestStockImport_RepoFailureSurfaces(t *testing.T) {
	repo := new(mocks.MockWarehouseStockRepo)
	svc := NewStockService(repo)

	repo.On("ReplaceAll", mock.Anything, mock.Anything, mock.Anything).
		Return(0, errors.New("tx failed"))

	_, err := svc.Import(context.Background(), []byte("Article\nCU-1\n"), "stock.csv", "", uuid.New())
	assert.Error(t, err)
}
