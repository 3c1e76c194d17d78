package settingsHandler

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"duitai/internal/api/settings"
	settingsService "duitai/internal/api/settings/service"
	"duitai/internal/middleware"
	contextPkg "duitai/pkg/context"
	"duitai/pkg/handlerUtil"
)

type SettingsHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	settingsService settingsService.ISettingsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	settingsService settingsService.ISettingsService,
) *SettingsHandler {
	return &SettingsHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		settingsService: settingsService,
	}
}

func (h *SettingsHandler) Start(srv fiber.Router) {
	srv.Get("/settings/first-day", h.GetFirstDay)
	srv.Put("/settings/first-day", h.UpdateFirstDay)
	srv.Put("/settings/api-key", h.UpdateAPIKey)
	srv.Delete("/settings/api-key", h.DeleteAPIKey)
}

func (h *SettingsHandler) GetFirstDay(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	res, err := h.settingsService.GetFirstDay(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_first_day")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *SettingsHandler) UpdateFirstDay(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req settings.UpdateFirstDayRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.settingsService.UpdateFirstDay(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_first_day")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *SettingsHandler) UpdateAPIKey(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req settings.UpdateAPIKeyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.settingsService.UpdateAPIKey(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_api_key")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *SettingsHandler) DeleteAPIKey(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	res, err := h.settingsService.DeleteAPIKey(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_api_key")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
