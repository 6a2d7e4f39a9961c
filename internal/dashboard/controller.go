package dashboard

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Controller struct {
	useCase *UseCase
	logger  *zap.Logger
}

func NewController(useCase *UseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.useCase.GetSummary(r.Context())
	if err != nil {
		c.logger.Error("dashboard summary failed", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
