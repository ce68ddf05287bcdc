package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"os-scheduler/config"
)

// NewApp wires the scheduler handlers under /api/v1.
func NewApp(cfg *config.SchedulerConfig, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler := NewSchedulerHandlerImpl(cfg, logger)
	Register(app, handler)
	return app
}

func Register(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/deadline", handler.EarliestDeadline)
		v1.Post("/mlq", handler.MultilevelQueue)
		v1.Post("/simulate/:policy", handler.ByName)
		v1.Post("/all", handler.AllAlgorithms)
	}
}
