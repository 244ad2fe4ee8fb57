package stockcsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metalflow/internal/domain"
)

func TestParseSemicolonDelimited(t *testing.T) {
	raw := []byte("WHS;Location;Article;Stock\nA1;L1;SKU123;50\n")

	rows, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A1", rows[0].WHS)
	assert.Equal(t, "L1", rows[0].Location)
	assert.Equal(t, "SKU123", rows[0].Article)
	assert.Equal(t, int64(50), rows[0].Stock)
}

func TestParseCommaDelimited(t *testing.T) {
	raw := []byte("article,description,stock,unit,weight_lb,lot\n" +
		"CU-CATH-A,Copper Cathodes,120,pallet,44092.45,LOT-88\n")

	rows, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CU-CATH-A", rows[0].Article)
	assert.Equal(t, "Copper Cathodes", rows[0].Description)
	assert.Equal(t, int64(120), rows[0].Stock)
	require.NotNil(t, rows[0].WeightLB)
	assert.Equal(t, "44092.45", rows[0].WeightLB.String())
	assert.Equal(t, "LOT-88", rows[0].Lot)
}

func TestParseMissingArticleColumn(t *testing.T) {
	raw := []byte("whs;location;stock\nA1;L1;50\n")

	_, err := Parse(raw)
	assert.ErrorIs(t, err, domain.ErrMissingArticleColumn)
}

func TestParseEmptyFile(t *testing.T) {
	_, err := Parse([]byte(""))
	assert.ErrorIs(t, err, domain.ErrEmptyStockFile)

	_, err = Parse([]byte("  \n  "))
	assert.ErrorIs(t, err, domain.ErrEmptyStockFile)
}

func TestParseSkipsBadRows(t *testing.T) {
	raw := []byte("whs;article;stock\n" +
		"A1;SKU1;10\n" +
		"lonevalue\n" +
		"A2;;30\n" +
		"A3;SKU3;40\n")

	rows, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "SKU1", rows[0].Article)
	assert.Equal(t, "SKU3", rows[1].Article)
}

func TestParseSoftNumericFailures(t *testing.T) {
	raw := []byte("article;stock;weight_lb\nSKU1;abc;not-a-number\n")

	rows, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(0), rows[0].Stock)
	assert.Nil(t, rows[0].WeightLB)
}

func TestParseCaseInsensitiveHeaders(t *testing.T) {
	raw := []byte("ARTICLE;STOCK\nSKU1;5\n")

	rows, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(5), rows[0].Stock)
}
