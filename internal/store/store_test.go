package store

import (
	"path/filepath"
	"testing"
	"time"

	"fjacquet/edi-analyze/internal/models"
	"fjacquet/edi-analyze/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedAnalysis() *models.Analysis {
	docDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	total := decimal.RequireFromString("1500.50")
	return &models.Analysis{
		FileName:     "invoice.edi",
		SegmentCount: 6,
		SegmentTags:  []string{"UNB", "UNH", "BGM", "DTM", "UNT", "UNZ"},
		Business: models.BusinessData{
			DocumentNumber: "INV001",
			DocumentDate:   &docDate,
			TotalAmount:    &total,
			Currency:       "EUR",
		},
		Status: models.StatusValidated,
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := NewAnalysisStore(t.TempDir())

	id, err := s.Save(storedAnalysis())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	loaded, err := s.Load(id)
	require.NoError(t, err)

	assert.Equal(t, "invoice.edi", loaded.FileName)
	assert.Equal(t, 6, loaded.SegmentCount)
	assert.Equal(t, models.StatusValidated, loaded.Status)
	assert.Equal(t, "INV001", loaded.Business.DocumentNumber)
	require.NotNil(t, loaded.Business.TotalAmount)
	assert.True(t, loaded.Business.TotalAmount.Equal(decimal.RequireFromString("1500.50")))
	require.NotNil(t, loaded.Business.DocumentDate)
	assert.Equal(t, 2024, loaded.Business.DocumentDate.Year())
}

func TestSaveAsOverwrites(t *testing.T) {
	s := NewAnalysisStore(t.TempDir())

	first := storedAnalysis()
	require.NoError(t, s.SaveAs("fixed-id", first))

	second := storedAnalysis()
	second.FileName = "updated.edi"
	require.NoError(t, s.SaveAs("fixed-id", second))

	loaded, err := s.Load("fixed-id")
	require.NoError(t, err)
	assert.Equal(t, "updated.edi", loaded.FileName)
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "analyses")
	s := NewAnalysisStore(dir)

	_, err := s.Save(storedAnalysis())
	require.NoError(t, err)
}

func TestLoadMissing(t *testing.T) {
	s := NewAnalysisStore(t.TempDir())

	_, err := s.Load("does-not-exist")
	require.Error(t, err)
	var storeErr *parsererror.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "load", storeErr.Op)
	assert.Equal(t, "does-not-exist", storeErr.ID)
}

func TestList(t *testing.T) {
	s := NewAnalysisStore(t.TempDir())

	ids, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, s.SaveAs("one", storedAnalysis()))
	require.NoError(t, s.SaveAs("two", storedAnalysis()))

	ids, err = s.List()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one", "two"}, ids)
}

func TestListMissingDirectory(t *testing.T) {
	s := NewAnalysisStore(filepath.Join(t.TempDir(), "never-created"))

	ids, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestDelete(t *testing.T) {
	s := NewAnalysisStore(t.TempDir())
	require.NoError(t, s.SaveAs("gone", storedAnalysis()))

	require.NoError(t, s.Delete("gone"))

	_, err := s.Load("gone")
	assert.Error(t, err)

	err = s.Delete("gone")
	var storeErr *parsererror.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "delete", storeErr.Op)
}
