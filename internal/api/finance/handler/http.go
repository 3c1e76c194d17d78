package financeHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	financeService "duitai/internal/api/finance/service"
	"duitai/internal/middleware"
)

type FinanceHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	financeService financeService.IFinanceService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	financeService financeService.IFinanceService,
) *FinanceHandler {
	return &FinanceHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		financeService: financeService,
	}
}

func (h *FinanceHandler) Start(srv fiber.Router) {
	srv.Get("/transactions", h.ListTransactions)
	srv.Post("/transactions", h.CreateTransaction)
	srv.Put("/transactions/:id", h.UpdateTransaction)
	srv.Delete("/transactions/:id", h.DeleteTransaction)

	srv.Get("/wallets", h.ListWallets)
	srv.Post("/wallets", h.CreateWallet)
	srv.Put("/wallets/:id", h.UpdateWallet)
	srv.Delete("/wallets/:id", h.DeleteWallet)

	srv.Get("/budgets", h.ListBudgets)
	srv.Put("/budgets", h.UpsertBudget)

	srv.Get("/categories", h.ListCategories)
	srv.Post("/categories", h.CreateCategory)
	srv.Delete("/categories/:name", h.DeleteCategory)
}
