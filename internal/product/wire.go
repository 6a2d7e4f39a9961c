package product

import (
	"database/sql"

	"balcao/internal/product/repository"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLProductRepository(db)
	uc := NewUseCase(repo)
	return NewController(uc, logger)
}
