package reportHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	reportService "duitai/internal/api/report/service"
	"duitai/internal/middleware"
	contextPkg "duitai/pkg/context"
	"duitai/pkg/handlerUtil"
)

type ReportHandler struct {
	log           *logrus.Logger
	middleware    middleware.Middleware
	reportService reportService.IReportService
}

func New(log *logrus.Logger, middleware middleware.Middleware, reportService reportService.IReportService) *ReportHandler {
	return &ReportHandler{
		log:           log,
		middleware:    middleware,
		reportService: reportService,
	}
}

func (h *ReportHandler) Start(srv fiber.Router) {
	srv.Get("/reports", h.MonthlyReport)
}

func (h *ReportHandler) MonthlyReport(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	res, err := h.reportService.MonthlyReport(c, ctx.Query("month"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "monthly_report")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
