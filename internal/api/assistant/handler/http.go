package assistantHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	assistantService "duitai/internal/api/assistant/service"
	"duitai/internal/middleware"
)

type AssistantHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	assistantService assistantService.IAssistantService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	assistantService assistantService.IAssistantService,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		assistantService: assistantService,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	assistant := srv.Group("/assistant")

	assistant.Post("/messages", h.middleware.NewRateLimiter, h.SendMessage)
	assistant.Get("/messages", h.GetMessages)
}
