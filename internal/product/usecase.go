package product

import (
	"context"
	"strings"
	"time"

	"balcao/internal/domain"
	apperrors "balcao/internal/errors"

	"github.com/google/uuid"
)

type useCase struct {
	repo Repository
}

func NewUseCase(repo Repository) UseCase {
	return &useCase{repo: repo}
}

func (uc *useCase) ListProducts(ctx context.Context, search string) ([]domain.Product, error) {
	return uc.repo.Search(ctx, strings.TrimSpace(search))
}

func (uc *useCase) CreateProduct(ctx context.Context, input UpsertProductInput) (*domain.Product, error) {
	if err := validateUpsertInput(input); err != nil {
		return nil, err
	}

	p := domain.Product{
		ID:        uuid.New().String(),
		Name:      input.Name,
		SKU:       input.SKU,
		Price:     input.Price,
		Stock:     input.Stock,
		Active:    input.Active,
		CreatedAt: time.Now(),
	}

	if err := uc.repo.Insert(ctx, p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (uc *useCase) UpdateProduct(ctx context.Context, id string, input UpsertProductInput) (*domain.Product, error) {
	if err := validateUpsertInput(input); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Identity and creation time survive edits.
	updated := *existing
	updated.Name = input.Name
	updated.SKU = input.SKU
	updated.Price = input.Price
	updated.Stock = input.Stock
	updated.Active = input.Active

	if err := uc.repo.Update(ctx, updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (uc *useCase) DeleteProduct(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func validateUpsertInput(input UpsertProductInput) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(input.Name) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(input.SKU) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "sku", Message: "sku is required"})
	}
	if input.Price < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "price", Message: "price must not be negative"})
	}
	if input.Stock < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "stock", Message: "stock must not be negative"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid product payload", details...)
	}
	return nil
}
