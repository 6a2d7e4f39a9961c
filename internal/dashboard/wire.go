package dashboard

import (
	"database/sql"

	customerrepo "balcao/internal/customer/repository"
	orderrepo "balcao/internal/order/repository"
	productrepo "balcao/internal/product/repository"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	uc := NewUseCase(
		productrepo.NewMySQLProductRepository(db),
		customerrepo.NewMySQLCustomerRepository(db),
		orderrepo.NewMySQLOrderRepository(db),
	)
	return NewController(uc, logger)
}
