package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, nc *nats.Conn, handler *AlarmHandler) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		checks := map[string]string{
			"nats": "ok",
		}
		status := "ok"
		code := fiber.StatusOK

		if nc == nil || !nc.IsConnected() {
			checks["nats"] = "disconnected"
			status = "degraded"
			code = fiber.StatusServiceUnavailable
		} else if err := nc.FlushTimeout(1 * time.Second); err != nil {
			checks["nats"] = err.Error()
			status = "degraded"
			code = fiber.StatusServiceUnavailable
		}

		return c.Status(code).JSON(fiber.Map{
			"status": status,
			"checks": checks,
		})
	})

	// API routes
	v1 := app.Group("/api/v1")
	v1.Get("/services", handler.ListServicesHandler)
	v1.Get("/services/:serviceId/information", handler.ServiceInformationHandler)
	v1.Get("/services/:serviceId/sections", handler.SectionsHandler)
	v1.Get("/services/:serviceId/gates", handler.GatesHandler)
	v1.Get("/services/:serviceId/thermostats", handler.ThermostatsHandler)
	v1.Get("/services/:serviceId/keyboards", handler.KeyboardsHandler)
	v1.Get("/services/:serviceId/history", handler.HistoryHandler)
	v1.Get("/services/:serviceId/settings", handler.SettingsHandler)
	v1.Put("/services/:serviceId/settings", handler.UpdateSettingsHandler)
	v1.Get("/services/:serviceId/devices/:deviceId/schedule", handler.DeviceScheduleHandler)

	v1.Post("/services/:serviceId/sections/control", handler.ControlSectionHandler)
	v1.Post("/services/:serviceId/gates/control", handler.ControlGateHandler)
	v1.Post("/services/:serviceId/thermostats/control", handler.ControlThermostatHandler)
}
