package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// NewApp builds the fiber application with every route registered.
func NewApp(handler SchedulerHandler, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Get("/example", handler.Example)

		v1.Post("/rr/steps", handler.InitStep)
		v1.Post("/rr/steps/:id/next", handler.NextStep)
		v1.Post("/rr/steps/:id/reset", handler.ResetStep)
		v1.Delete("/rr/steps/:id", handler.DeleteStep)

		v1.Get("/runs", handler.ListRuns)
		v1.Get("/runs/:id", handler.GetRun)
	}
	return app
}

func errorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		logger.Debug().Err(err).Int("status", code).Str("method", ctx.Method()).Str("path", ctx.Path()).Msg("request error")
		return ctx.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
