package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"balcao/internal/domain"
	"balcao/internal/testutil"
)

func TestNewMySQLOrderItemRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderItemRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestOrderItemRepository_InsertBatchAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	orderRepo := NewMySQLOrderRepository(db)
	itemRepo := NewMySQLOrderItemRepository(db)

	order := &domain.Order{
		CustomerID:   "c1",
		CustomerName: "Ana Silva",
		Status:       domain.OrderStatusPending,
		CreatedAt:    time.Now(),
	}
	items := []domain.OrderItem{
		{ProductID: "p1", ProductName: "Teclado Mecanico", UnitPrice: 199.9, Qty: 2, LineTotal: 399.8},
		{ProductID: "p2", ProductName: "Mouse Gamer", UnitPrice: 129.9, Qty: 1, LineTotal: 129.9},
	}

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, orderRepo.Insert(context.Background(), tx, order))
	require.NoError(t, itemRepo.InsertBatch(context.Background(), tx, order.ID, items))
	require.NoError(t, tx.Commit())

	assert.NotZero(t, items[0].ID)
	assert.Equal(t, order.ID, items[0].OrderID)

	found, err := itemRepo.FindByOrderID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Teclado Mecanico", found[0].ProductName)
	assert.Equal(t, 199.9, found[0].UnitPrice)
	assert.Equal(t, 2, found[0].Qty)
	assert.Equal(t, 399.8, found[0].LineTotal)
}

func TestOrderItemRepository_FindByOrderIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	orderRepo := NewMySQLOrderRepository(db)
	itemRepo := NewMySQLOrderItemRepository(db)

	var ids []uint
	for i := 0; i < 2; i++ {
		order := &domain.Order{
			CustomerID:   "c1",
			CustomerName: "Ana Silva",
			Status:       domain.OrderStatusPending,
			CreatedAt:    time.Now(),
		}
		items := []domain.OrderItem{
			{ProductID: "p1", ProductName: "Teclado Mecanico", UnitPrice: 199.9, Qty: 1, LineTotal: 199.9},
		}

		tx, err := db.Begin()
		require.NoError(t, err)
		require.NoError(t, orderRepo.Insert(context.Background(), tx, order))
		require.NoError(t, itemRepo.InsertBatch(context.Background(), tx, order.ID, items))
		require.NoError(t, tx.Commit())

		ids = append(ids, order.ID)
	}

	byOrder, err := itemRepo.FindByOrderIDs(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, byOrder, 2)
	for _, id := range ids {
		assert.Len(t, byOrder[id], 1)
	}

	empty, err := itemRepo.FindByOrderIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
