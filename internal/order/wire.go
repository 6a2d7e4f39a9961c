package order

import (
	"database/sql"

	"balcao/internal/config"
	customerrepo "balcao/internal/customer/repository"
	"balcao/internal/infrastructure/mysql"
	"balcao/internal/order/controller"
	orderrepo "balcao/internal/order/repository"
	"balcao/internal/order/usecase"
	productrepo "balcao/internal/product/repository"
	"balcao/internal/stock"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.OrderController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	orderItemRepo := orderrepo.NewMySQLOrderItemRepository(db)
	productRepo := productrepo.NewMySQLProductRepository(db)
	customerRepo := customerrepo.NewMySQLCustomerRepository(db)

	ledger := stock.NewLedger(productRepo, logger)
	txRunner := mysql.NewTxRunner(db, cfg.Order.TxTimeout)

	uc := usecase.NewOrderUseCase(
		txRunner,
		orderRepo,
		orderItemRepo,
		productRepo,
		customerRepo,
		ledger,
		logger,
		cfg.Order.MaxRetryAttempts,
	)

	return controller.NewOrderController(uc, logger)
}
