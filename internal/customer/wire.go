package customer

import (
	"database/sql"

	"balcao/internal/customer/repository"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLCustomerRepository(db)
	uc := NewUseCase(repo)
	return NewController(uc, logger)
}
