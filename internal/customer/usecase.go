package customer

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

func (uc *useCase) ListCustomers(ctx context.Context, search string) ([]domain.Customer, error) {
	return uc.repo.Search(ctx, strings.TrimSpace(search))
}

func (uc *useCase) CreateCustomer(ctx context.Context, input UpsertCustomerInput) (*domain.Customer, error) {
	if err := validateUpsertInput(input); err != nil {
		return nil, err
	}

	c := domain.Customer{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Document:  input.Document,
		Email:     input.Email,
		Phone:     input.Phone,
		Active:    input.Active,
		CreatedAt: time.Now(),
	}

	if err := uc.repo.Insert(ctx, c); err != nil {
		return nil, err
	}

	return &c, nil
}

func (uc *useCase) UpdateCustomer(ctx context.Context, id string, input UpsertCustomerInput) (*domain.Customer, error) {
	if err := validateUpsertInput(input); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Name = input.Name
	updated.Document = input.Document
	updated.Email = input.Email
	updated.Phone = input.Phone
	updated.Active = input.Active

	if err := uc.repo.Update(ctx, updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (uc *useCase) DeleteCustomer(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func validateUpsertInput(input UpsertCustomerInput) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(input.Name) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "email is required"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid customer payload", details...)
	}
	return nil
}
