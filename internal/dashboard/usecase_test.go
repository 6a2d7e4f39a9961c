package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"balcao/internal/domain"
)

type mockProductLister struct {
	SearchFunc func(ctx context.Context, term string) ([]domain.Product, error)
}

func (m *mockProductLister) Search(ctx context.Context, term string) ([]domain.Product, error) {
	return m.SearchFunc(ctx, term)
}

type mockCustomerLister struct {
	SearchFunc func(ctx context.Context, term string) ([]domain.Customer, error)
}

func (m *mockCustomerLister) Search(ctx context.Context, term string) ([]domain.Customer, error) {
	return m.SearchFunc(ctx, term)
}

type mockOrderLister struct {
	SearchFunc func(ctx context.Context, term string) ([]domain.Order, error)
}

func (m *mockOrderLister) Search(ctx context.Context, term string) ([]domain.Order, error) {
	return m.SearchFunc(ctx, term)
}

func TestGetSummary(t *testing.T) {
	products := &mockProductLister{
		SearchFunc: func(ctx context.Context, term string) ([]domain.Product, error) {
			return []domain.Product{{ID: "p1"}, {ID: "p2"}}, nil
		},
	}
	customers := &mockCustomerLister{
		SearchFunc: func(ctx context.Context, term string) ([]domain.Customer, error) {
			return []domain.Customer{{ID: "c1"}}, nil
		},
	}
	orders := &mockOrderLister{
		SearchFunc: func(ctx context.Context, term string) ([]domain.Order, error) {
			return []domain.Order{
				{DisplayID: "VND-003", CustomerName: "Ana Silva", Status: domain.OrderStatusPaid, Total: 300},
				{DisplayID: "VND-002", CustomerName: "Joao Pedro", Status: domain.OrderStatusCanceled, Total: 150},
				{DisplayID: "VND-001", CustomerName: "Ana Silva", Status: domain.OrderStatusPaid, Total: 100},
			}, nil
		},
	}

	uc := NewUseCase(products, customers, orders)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, 1, summary.TotalCustomers)
	assert.Equal(t, 3, summary.TotalSales)
	// Only PAID orders count toward revenue.
	assert.Equal(t, 400.0, summary.Revenue)
	require.Len(t, summary.LastSales, 3)
	assert.Equal(t, "VND-003", summary.LastSales[0].ID)
}

func TestGetSummary_CapsLastSalesAtFive(t *testing.T) {
	orders := make([]domain.Order, 8)
	for i := range orders {
		orders[i] = domain.Order{DisplayID: "VND-00x", Status: domain.OrderStatusPending}
	}

	uc := NewUseCase(
		&mockProductLister{SearchFunc: func(ctx context.Context, term string) ([]domain.Product, error) {
			return nil, nil
		}},
		&mockCustomerLister{SearchFunc: func(ctx context.Context, term string) ([]domain.Customer, error) {
			return nil, nil
		}},
		&mockOrderLister{SearchFunc: func(ctx context.Context, term string) ([]domain.Order, error) {
			return orders, nil
		}},
	)

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Len(t, summary.LastSales, 5)
	assert.Zero(t, summary.Revenue)
}
