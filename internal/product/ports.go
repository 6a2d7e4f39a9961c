package product

import (
	"context"

	"balcao/internal/domain"
)

type UseCase interface {
	ListProducts(ctx context.Context, search string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, input UpsertProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input UpsertProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type Repository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, term string) ([]domain.Product, error)
	Insert(ctx context.Context, p domain.Product) error
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id string) error
}
