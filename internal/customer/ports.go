package customer

import (
	"context"

	"balcao/internal/domain"
)

type UseCase interface {
	ListCustomers(ctx context.Context, search string) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, input UpsertCustomerInput) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, input UpsertCustomerInput) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type Repository interface {
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	Search(ctx context.Context, term string) ([]domain.Customer, error)
	Insert(ctx context.Context, c domain.Customer) error
	Update(ctx context.Context, c domain.Customer) error
	Delete(ctx context.Context, id string) error
}
