package backupHandler

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"duitai/internal/api/backup"
	backupService "duitai/internal/api/backup/service"
	"duitai/internal/middleware"
	contextPkg "duitai/pkg/context"
	"duitai/pkg/handlerUtil"
	"duitai/pkg/log"
)

type BackupHandler struct {
	log           *logrus.Logger
	middleware    middleware.Middleware
	backupService backupService.IBackupService
}

func New(log *logrus.Logger, middleware middleware.Middleware, backupService backupService.IBackupService) *BackupHandler {
	return &BackupHandler{
		log:           log,
		middleware:    middleware,
		backupService: backupService,
	}
}

func (h *BackupHandler) Start(srv fiber.Router) {
	srv.Get("/backup/export", h.Export)
	srv.Post("/backup/import", h.Import)
}

func (h *BackupHandler) Export(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	snapshot, filename, err := h.backupService.Export(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "export_backup")
	}

	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, snapshot)
}

func (h *BackupHandler) Import(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing backup import request")

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return errHandler.Handle(ctx, requestID, backup.ErrMissingFile, ctx.Path(), "parse_backup_file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_backup_file")
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "read_backup_file")
	}

	confirmed := ctx.FormValue("confirm") == "true"

	if err := h.backupService.Import(c, raw, confirmed); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "import_backup")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, backup.ImportResponse{
			Message: "Backup restored successfully",
		})
	}
}
