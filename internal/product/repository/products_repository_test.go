package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"balcao/internal/domain"
	"balcao/internal/errors"
	"balcao/internal/testutil"
)

func TestNewMySQLProductRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLProductRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func seedProduct(t *testing.T, repo *MySQLProductRepository, name, sku string, price float64, stock int, active bool) domain.Product {
	t.Helper()

	p := domain.Product{
		ID:        uuid.New().String(),
		Name:      name,
		SKU:       sku,
		Price:     price,
		Stock:     stock,
		Active:    active,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Insert(context.Background(), p))
	return p
}

func TestProductRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductRepository(db)
	p := seedProduct(t, repo, "Teclado Mecanico", "TEC-001", 199.9, 12, true)

	found, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)
	assert.Equal(t, "Teclado Mecanico", found.Name)
	assert.Equal(t, "TEC-001", found.SKU)
	assert.Equal(t, 199.9, found.Price)
	assert.Equal(t, 12, found.Stock)
	assert.True(t, found.Active)
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New().String())
	require.Error(t, err)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestProductRepository_FindByIDForUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductRepository(db)
	p := seedProduct(t, repo, "Mouse Gamer", "MOU-010", 129.9, 25, true)

	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	found, err := repo.FindByIDForUpdate(context.Background(), tx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, found.Stock)
}

func TestProductRepository_AdjustStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductRepository(db)
	p := seedProduct(t, repo, "Teclado Mecanico", "TEC-001", 199.9, 10, true)

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, repo.AdjustStock(context.Background(), tx, p.ID, -4))
	require.NoError(t, tx.Commit())

	found, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, found.Stock)

	tx, err = db.Begin()
	require.NoError(t, err)
	require.NoError(t, repo.AdjustStock(context.Background(), tx, p.ID, 4))
	// Unknown ids are tolerated.
	require.NoError(t, repo.AdjustStock(context.Background(), tx, uuid.New().String(), 3))
	require.NoError(t, tx.Commit())

	found, err = repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, found.Stock)
}

func TestProductRepository_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductRepository(db)
	seedProduct(t, repo, "Teclado Mecanico", "TEC-001", 199.9, 12, true)
	seedProduct(t, repo, "Mouse Gamer", "MOU-010", 129.9, 25, true)

	results, err := repo.Search(context.Background(), "teclado")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "TEC-001", results[0].SKU)

	results, err = repo.Search(context.Background(), "MOU")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Mouse Gamer", results[0].Name)

	results, err = repo.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestProductRepository_UpdateAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductRepository(db)
	p := seedProduct(t, repo, "Teclado Mecanico", "TEC-001", 199.9, 12, true)

	p.Name = "Teclado Compacto"
	p.Price = 149.9
	p.Active = false
	require.NoError(t, repo.Update(context.Background(), p))

	found, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Teclado Compacto", found.Name)
	assert.Equal(t, 149.9, found.Price)
	assert.False(t, found.Active)

	missing := p
	missing.ID = uuid.New().String()
	err = repo.Update(context.Background(), missing)
	require.Error(t, err)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(context.Background(), p.ID))
	// Repeatable.
	require.NoError(t, repo.Delete(context.Background(), p.ID))

	_, err = repo.FindByID(context.Background(), p.ID)
	require.Error(t, err)
}
