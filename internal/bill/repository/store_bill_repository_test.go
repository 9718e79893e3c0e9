package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rajubill/internal/domain"
	"rajubill/internal/errors"
	"rajubill/internal/testutil"
)

func testBill(id, orderNumber string) domain.Bill {
	return domain.Bill{
		ID:          id,
		Date:        "2025-06-10",
		OrderNumber: orderNumber,
		Customer:    "Acme Textiles",
		Product:     "Grey Cloth",
		Rate:        "120",
		CreatedAt:   time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestStoreBillRepository_ListAll_Empty(t *testing.T) {
	repo := NewStoreBillRepository(testutil.SetupTestStore(t))

	bills, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestStoreBillRepository_InsertAndGetByID(t *testing.T) {
	repo := NewStoreBillRepository(testutil.SetupTestStore(t))
	bill := testBill("1718000000000", "PO-100")
	bill.Broker = "Broker A"
	bill.TermsAndConditions = "30 days payment"

	require.NoError(t, repo.Insert(context.Background(), bill))

	got, err := repo.GetByID(context.Background(), "1718000000000")
	require.NoError(t, err)
	assert.Equal(t, bill, *got)
}

func TestStoreBillRepository_GetByID_NotFound(t *testing.T) {
	repo := NewStoreBillRepository(testutil.SetupTestStore(t))

	got, err := repo.GetByID(context.Background(), "ghost-1")
	assert.Nil(t, got)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestStoreBillRepository_ListAll_PreservesInsertionOrder(t *testing.T) {
	repo := NewStoreBillRepository(testutil.SetupTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testBill("1", "PO-1")))
	require.NoError(t, repo.Insert(ctx, testBill("2", "PO-2")))
	require.NoError(t, repo.Insert(ctx, testBill("3", "PO-3")))

	bills, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 3)
	assert.Equal(t, "1", bills[0].ID)
	assert.Equal(t, "2", bills[1].ID)
	assert.Equal(t, "3", bills[2].ID)
}

func TestStoreBillRepository_DuplicateOrderNumbersAreDistinctRecords(t *testing.T) {
	repo := NewStoreBillRepository(testutil.SetupTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testBill("1", "PO-100")))
	require.NoError(t, repo.Insert(ctx, testBill("2", "PO-100")))

	bills, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, bills, 2)
}

func TestStoreBillRepository_Replace(t *testing.T) {
	repo := NewStoreBillRepository(testutil.SetupTestStore(t))
	ctx := context.Background()

	bill := testBill("1", "PO-100")
	require.NoError(t, repo.Insert(ctx, bill))

	bill.Customer = "New Party"
	bill.Rate = "150"
	require.NoError(t, repo.Replace(ctx, bill))

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "New Party", got.Customer)
	assert.Equal(t, "150", got.Rate)
}

func TestStoreBillRepository_Replace_NotFoundLeavesSequenceUnchanged(t *testing.T) {
	repo := NewStoreBillRepository(testutil.SetupTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testBill("1", "PO-100")))

	ghost := testBill("ghost-1", "PO-999")
	err := repo.Replace(ctx, ghost)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)

	bills, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "PO-100", bills[0].OrderNumber)
}

func TestStoreBillRepository_Delete(t *testing.T) {
	repo := NewStoreBillRepository(testutil.SetupTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testBill("1", "PO-100")))
	require.NoError(t, repo.Insert(ctx, testBill("2", "PO-101")))

	require.NoError(t, repo.Delete(ctx, "1"))

	_, err := repo.GetByID(ctx, "1")
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)

	bills, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, bills, 1)
}

func TestStoreBillRepository_Delete_MissingIDIsNoOp(t *testing.T) {
	repo := NewStoreBillRepository(testutil.SetupTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testBill("1", "PO-100")))
	require.NoError(t, repo.Delete(ctx, "ghost-1"))

	bills, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, bills, 1)
}

func TestStoreBillRepository_CorruptSequenceReadsAsEmpty(t *testing.T) {
	store := testutil.SetupTestStore(t)
	require.NoError(t, store.SetItem("bills", "{definitely not an array"))

	repo := NewStoreBillRepository(store)

	bills, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestStoreBillRepository_PersistsAcrossInstances(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()

	first := NewStoreBillRepository(store)
	require.NoError(t, first.Insert(ctx, testBill("1", "PO-100")))

	second := NewStoreBillRepository(store)
	got, err := second.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "PO-100", got.OrderNumber)
	assert.Equal(t, time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC), got.CreatedAt)
}
