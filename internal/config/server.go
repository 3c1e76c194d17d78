package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	assistantHandler "duitai/internal/api/assistant/handler"
	assistantService "duitai/internal/api/assistant/service"
	backupHandler "duitai/internal/api/backup/handler"
	backupService "duitai/internal/api/backup/service"
	financeHandler "duitai/internal/api/finance/handler"
	financeService "duitai/internal/api/finance/service"
	reportHandler "duitai/internal/api/report/handler"
	reportService "duitai/internal/api/report/service"
	settingsHandler "duitai/internal/api/settings/handler"
	settingsService "duitai/internal/api/settings/service"
	"duitai/internal/middleware"
	"duitai/internal/state"
	"duitai/internal/storage"
	"duitai/pkg/gemini"
	"duitai/pkg/nlp"
	"duitai/pkg/utils"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	store        storage.IStore
	geminiClient gemini.IGemini
	handlers     []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithStore picks the persistence driver: Redis by default, in-process memory
// when STORAGE_DRIVER=memory (local runs without a Redis instance).
func WithStore() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before store")
		}
		if os.Getenv("STORAGE_DRIVER") == "memory" {
			s.store = storage.NewMemoryStore()
			return nil
		}
		s.store = storage.NewRedisStore(s.log)
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		s.geminiClient = gemini.NewGeminiClient()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler(ctx context.Context) error {
	stateController := state.New(s.log, s.store, s.utils)
	if err := stateController.Load(ctx); err != nil {
		return fmt.Errorf("failed to load application state: %w", err)
	}

	// Assistant Domain
	assistantServices := assistantService.New(s.log, stateController, s.geminiClient, nlp.NewLocalParser(), s.utils)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices)

	// Finance Domain
	financeServices := financeService.New(s.log, stateController)
	financeHandlers := financeHandler.New(s.log, s.validator, s.middleware, financeServices)

	// Reports
	reportServices := reportService.New(s.log, stateController)
	reportHandlers := reportHandler.New(s.log, s.middleware, reportServices)

	// Backup
	backupServices := backupService.New(s.log, stateController)
	backupHandlers := backupHandler.New(s.log, s.middleware, backupServices)

	// Settings
	settingsServices := settingsService.New(s.log, stateController)
	settingsHandlers := settingsHandler.New(s.log, s.validator, s.middleware, settingsServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, assistantHandlers, financeHandlers, reportHandlers, backupHandlers, settingsHandlers)

	return nil
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
