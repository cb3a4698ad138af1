package routers

import (
	"log"

	"file-converter/internal/delivery/http/handlers"
	"file-converter/internal/pkg/config"
	"file-converter/internal/usecases"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
)

func SetupConvertRoutes(app *fiber.App, cfg *config.Config, convertHandler *handlers.ConvertHandler, cleanupUC usecases.CleanupService) {
	c := cron.New(cron.WithSeconds())

	c.AddFunc("0 */5 * * * *", func() {
		if err := cleanupUC.CleanupStaleWorkspace(cfg.Cleanup.MaxAge); err != nil {
			log.Printf("Error cleaning up stale workspace files: %v", err)
		}
	})
	c.Start()

	// Routes:
	api := app.Group("/api/v1")
	api.Post("/files", convertHandler.AcceptFiles)
	api.Get("/files", convertHandler.ListEntries)
	api.Get("/files/:id", convertHandler.GetEntry)
	api.Patch("/files/:id/format", convertHandler.SetFormat)
	api.Post("/files/:id/convert", convertHandler.Convert)
	api.Get("/files/:id/download", convertHandler.Download)
	api.Get("/files/:id/preview", convertHandler.Preview)
	api.Delete("/files/:id", convertHandler.RemoveEntry)
}
