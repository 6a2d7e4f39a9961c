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

func TestNewMySQLCustomerRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLCustomerRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func seedCustomer(t *testing.T, repo *MySQLCustomerRepository, name, document, email string) domain.Customer {
	t.Helper()

	c := domain.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Document:  document,
		Email:     email,
		Phone:     "(11) 99999-1111",
		Active:    true,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Insert(context.Background(), c))
	return c
}

func TestCustomerRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)
	c := seedCustomer(t, repo, "Ana Silva", "123.456.789-00", "ana@email.com")

	found, err := repo.FindByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", found.Name)
	assert.Equal(t, "123.456.789-00", found.Document)
	assert.Equal(t, "ana@email.com", found.Email)
	assert.True(t, found.Active)
}

func TestCustomerRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New().String())
	require.Error(t, err)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestCustomerRepository_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)
	seedCustomer(t, repo, "Ana Silva", "123.456.789-00", "ana@email.com")
	seedCustomer(t, repo, "Joao Pedro", "987.654.321-00", "joao@email.com")

	results, err := repo.Search(context.Background(), "ana")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Ana Silva", results[0].Name)

	results, err = repo.Search(context.Background(), "987.654")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Joao Pedro", results[0].Name)

	results, err = repo.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestCustomerRepository_UpdateAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerRepository(db)
	c := seedCustomer(t, repo, "Ana Silva", "123.456.789-00", "ana@email.com")

	c.Name = "Ana Souza"
	c.Phone = "(21) 98888-2222"
	require.NoError(t, repo.Update(context.Background(), c))

	found, err := repo.FindByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", found.Name)
	assert.Equal(t, "(21) 98888-2222", found.Phone)

	missing := c
	missing.ID = uuid.New().String()
	err = repo.Update(context.Background(), missing)
	require.Error(t, err)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)

	require.NoError(t, repo.Delete(context.Background(), c.ID))
	require.NoError(t, repo.Delete(context.Background(), c.ID))
}
