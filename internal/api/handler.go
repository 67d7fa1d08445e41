package api

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/alarmbridge/jablonet-adapter/internal/jablonet"
	"github.com/alarmbridge/jablonet-adapter/pkg/model"
)

// AlarmService defines the alarm operations needed by the HTTP handlers.
type AlarmService interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	DescribeService(ctx context.Context, serviceID int) (*model.ServiceInformation, error)
	ListSections(ctx context.Context, serviceID int) ([]model.Section, error)
	ListGates(ctx context.Context, serviceID int) ([]model.Gate, error)
	ListThermostats(ctx context.Context, serviceID int) ([]model.Thermostat, error)
	ListKeyboards(ctx context.Context, serviceID int) ([]model.KeyboardSegment, error)
	History(ctx context.Context, serviceID int, filter jablonet.HistoryFilter) ([]model.HistoryEvent, error)
	ControlSection(ctx context.Context, serviceID int, componentID string, state jablonet.SectionState, pinCode string, force bool) (bool, error)
	ControlGate(ctx context.Context, serviceID int, componentID string, state jablonet.GateState, pinCode string) (bool, error)
	ControlThermostat(ctx context.Context, serviceID int, componentID string, mode jablonet.HeatingMode, temperature *float64, pinCode string) (bool, error)
	Settings(ctx context.Context, serviceID int) ([]jablonet.ServiceSetting, error)
	UpdateSettings(ctx context.Context, serviceID int, settings []jablonet.ServiceSetting) error
	DeviceSchedule(ctx context.Context, serviceID int, deviceID string) (*model.DeviceSchedule, error)
}

// AlarmHandler handles HTTP API requests for alarm operations.
type AlarmHandler struct {
	logger  *zap.Logger
	service AlarmService
}

// NewAlarmHandler creates a new AlarmHandler.
func NewAlarmHandler(logger *zap.Logger, service AlarmService) *AlarmHandler {
	return &AlarmHandler{
		logger:  logger,
		service: service,
	}
}

func serviceID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("serviceId")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "serviceId must be a positive integer")
	}
	return id, nil
}

// ListServicesHandler returns the installations visible to the account.
func (h *AlarmHandler) ListServicesHandler(c *fiber.Ctx) error {
	services, err := h.service.ListServices(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(services)
}

// ServiceInformationHandler returns metadata for one installation.
func (h *AlarmHandler) ServiceInformationHandler(c *fiber.Ctx) error {
	id, err := serviceID(c)
	if err != nil {
		return err
	}
	info, err := h.service.DescribeService(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(info)
}

// SectionsHandler returns the sections of a service with their states.
func (h *AlarmHandler) SectionsHandler(c *fiber.Ctx) error {
	id, err := serviceID(c)
	if err != nil {
		return err
	}
	sections, err := h.service.ListSections(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(sections)
}

// GatesHandler returns the programmable outputs of a service.
func (h *AlarmHandler) GatesHandler(c *fiber.Ctx) error {
	id, err := serviceID(c)
	if err != nil {
		return err
	}
	gates, err := h.service.ListGates(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(gates)
}

// ThermostatsHandler returns the thermo devices of a service.
func (h *AlarmHandler) ThermostatsHandler(c *fiber.Ctx) error {
	id, err := serviceID(c)
	if err != nil {
		return err
	}
	devices, err := h.service.ListThermostats(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(devices)
}

// KeyboardsHandler returns the keyboard segments of a service.
func (h *AlarmHandler) KeyboardsHandler(c *fiber.Ctx) error {
	id, err := serviceID(c)
	if err != nil {
		return err
	}
	segments, err := h.service.ListKeyboards(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(segments)
}

// HistoryHandler returns historical events, newest first.
func (h *AlarmHandler) HistoryHandler(c *fiber.Ctx) error {
	id, err := serviceID(c)
	if err != nil {
		return err
	}
	filter := jablonet.HistoryFilter{
		Limit:       c.QueryInt("limit"),
		DateFrom:    c.Query("dateFrom"),
		DateTo:      c.Query("dateTo"),
		EventIDFrom: c.Query("eventIdFrom"),
		EventIDTo:   c.Query("eventIdTo"),
	}
	events, err := h.service.History(c.Context(), id, filter)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(events)
}

// ControlSectionHandler arms or disarms a section.
func (h *AlarmHandler) ControlSectionHandler(c *fiber.Ctx) error {
	id, err := serviceID(c)
	if err != nil {
		return err
	}
	var req SectionControlRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	reached, err := h.service.ControlSection(c.Context(), id, req.ComponentID,
		jablonet.SectionState(req.State), req.PinCode, req.Force)
	if err != nil {
		h.logger.Error("api.control_section.failed",
			zap.Int("service_id", id),
			zap.String("component", req.ComponentID),
			zap.Error(err))
		return c.Status(statusFor(err)).JSON(ControlResponse{
			ComponentID: req.ComponentID,
			Desired:     req.State,
			ErrorMsg:    err.Error(),
		})
	}
	return c.JSON(ControlResponse{
		ComponentID: req.ComponentID,
		Desired:     req.State,
		Reached:     reached,
	})
}

// ControlGateHandler toggles a programmable output.
func (h *AlarmHandler) ControlGateHandler(c *fiber.Ctx) error {
	id, err := serviceID(c)
	if err != nil {
		return err
	}
	var req GateControlRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	reached, err := h.service.ControlGate(c.Context(), id, req.ComponentID,
		jablonet.GateState(req.State), req.PinCode)
	if err != nil {
		h.logger.Error("api.control_gate.failed",
			zap.Int("service_id", id),
			zap.String("component", req.ComponentID),
			zap.Error(err))
		return c.Status(statusFor(err)).JSON(ControlResponse{
			ComponentID: req.ComponentID,
			Desired:     req.State,
			ErrorMsg:    err.Error(),
		})
	}
	return c.JSON(ControlResponse{
		ComponentID: req.ComponentID,
		Desired:     req.State,
		Reached:     reached,
	})
}

// ControlThermostatHandler changes the mode and/or temperature of a thermo
// device.
func (h *AlarmHandler) ControlThermostatHandler(c *fiber.Ctx) error {
	id, err := serviceID(c)
	if err != nil {
		return err
	}
	var req ThermostatControlRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	reached, err := h.service.ControlThermostat(c.Context(), id, req.ComponentID,
		jablonet.HeatingMode(req.Mode), req.Temperature, req.PinCode)
	if err != nil {
		h.logger.Error("api.control_thermostat.failed",
			zap.Int("service_id", id),
			zap.String("component", req.ComponentID),
			zap.Error(err))
		return c.Status(statusFor(err)).JSON(ControlResponse{
			ComponentID: req.ComponentID,
			Desired:     req.Mode,
			ErrorMsg:    err.Error(),
		})
	}
	return c.JSON(ControlResponse{
		ComponentID: req.ComponentID,
		Desired:     req.Mode,
		Reached:     reached,
	})
}

// SettingsHandler returns the thermostat configuration of a service.
func (h *AlarmHandler) SettingsHandler(c *fiber.Ctx) error {
	id, err := serviceID(c)
	if err != nil {
		return err
	}
	settings, err := h.service.Settings(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(settings)
}

// UpdateSettingsHandler writes thermostat configuration entries.
func (h *AlarmHandler) UpdateSettingsHandler(c *fiber.Ctx) error {
	id, err := serviceID(c)
	if err != nil {
		return err
	}
	var req SettingsUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	if err := h.service.UpdateSettings(c.Context(), id, req.Settings); err != nil {
		h.logger.Error("api.update_settings.failed",
			zap.Int("service_id", id),
			zap.Error(err))
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeviceScheduleHandler returns the weekly schedule of one thermo device.
func (h *AlarmHandler) DeviceScheduleHandler(c *fiber.Ctx) error {
	id, err := serviceID(c)
	if err != nil {
		return err
	}
	deviceID := c.Params("deviceId")
	if deviceID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "deviceId is required")
	}
	schedule, err := h.service.DeviceSchedule(c.Context(), id, deviceID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(schedule)
}
