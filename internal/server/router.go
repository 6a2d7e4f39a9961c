package server

import (
	"net/http"
	"time"

	"balcao/internal/customer"
	"balcao/internal/dashboard"
	ordercontroller "balcao/internal/order/controller"
	"balcao/internal/product"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(
	orderCtrl *ordercontroller.OrderController,
	productCtrl *product.Controller,
	customerCtrl *customer.Controller,
	dashboardCtrl *dashboard.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderCtrl.List)
			r.Post("/", orderCtrl.Create)
			r.Patch("/{orderId}/status", orderCtrl.UpdateStatus)
			r.Delete("/{orderId}", orderCtrl.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productCtrl.HandleList)
			r.Post("/", productCtrl.HandleCreate)
			r.Put("/{productId}", productCtrl.HandleUpdate)
			r.Delete("/{productId}", productCtrl.HandleDelete)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", customerCtrl.HandleList)
			r.Post("/", customerCtrl.HandleCreate)
			r.Put("/{customerId}", customerCtrl.HandleUpdate)
			r.Delete("/{customerId}", customerCtrl.HandleDelete)
		})

		r.Get("/dashboard", dashboardCtrl.HandleSummary)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("requestId", middleware.GetReqID(r.Context())),
			)
		})
	}
}
