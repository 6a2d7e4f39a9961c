package dashboard

import (
	"context"

	"balcao/internal/domain"

	"golang.org/x/sync/errgroup"
)

type ProductLister interface {
	Search(ctx context.Context, term string) ([]domain.Product, error)
}

type CustomerLister interface {
	Search(ctx context.Context, term string) ([]domain.Customer, error)
}

type OrderLister interface {
	Search(ctx context.Context, term string) ([]domain.Order, error)
}

type Summary struct {
	TotalProducts  int         `json:"totalProducts"`
	TotalCustomers int         `json:"totalCustomers"`
	TotalSales     int         `json:"totalSales"`
	Revenue        float64     `json:"revenue"`
	LastSales      []SalePoint `json:"lastSales"`
}

type SalePoint struct {
	ID       string  `json:"id"`
	Customer string  `json:"customer"`
	Total    float64 `json:"total"`
	Status   string  `json:"status"`
}

type UseCase struct {
	products  ProductLister
	customers CustomerLister
	orders    OrderLister
}

func NewUseCase(products ProductLister, customers CustomerLister, orders OrderLister) *UseCase {
	return &UseCase{
		products:  products,
		customers: customers,
		orders:    orders,
	}
}

// GetSummary aggregates the dashboard counters. The three listings are
// independent reads, so they fan out concurrently.
func (uc *UseCase) GetSummary(ctx context.Context) (*Summary, error) {
	var (
		products  []domain.Product
		customers []domain.Customer
		orders    []domain.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = uc.products.Search(gctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = uc.customers.Search(gctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = uc.orders.Search(gctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	revenue := 0.0
	for _, o := range orders {
		if o.Status == domain.OrderStatusPaid {
			revenue += o.Total
		}
	}

	// Orders arrive most recent first.
	lastSales := make([]SalePoint, 0, 5)
	for _, o := range orders {
		if len(lastSales) == 5 {
			break
		}
		lastSales = append(lastSales, SalePoint{
			ID:       o.DisplayID,
			Customer: o.CustomerName,
			Total:    o.Total,
			Status:   o.Status,
		})
	}

	return &Summary{
		TotalProducts:  len(products),
		TotalCustomers: len(customers),
		TotalSales:     len(orders),
		Revenue:        revenue,
		LastSales:      lastSales,
	}, nil
}
