package alarm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/alarmbridge/jablonet-adapter/internal/jablonet"
	"github.com/alarmbridge/jablonet-adapter/internal/metrics"
	"github.com/alarmbridge/jablonet-adapter/pkg/config"
	"github.com/alarmbridge/jablonet-adapter/pkg/model"
)

// settingsUpdatedSubject carries non-canonical internal notifications about
// configuration writes, separate from the canonical control-result stream.
const settingsUpdatedSubject = "internal.jablonet.settings.updated"

// EventPublisher emits adapter events. *publisher.Publisher satisfies it.
type EventPublisher interface {
	PublishControlResult(ctx context.Context, res model.ControlResult) error
	Publish(ctx context.Context, subject string, payload any) error
}

// Service orchestrates alarm operations against the Jablotron Cloud:
// typed reads mapped onto the canonical model, control actions with
// outcome verification, and event publishing for control outcomes.
//
// The vendor client holds a single session and is not safe for concurrent
// use, so Service serializes every client call behind one mutex. HTTP
// handlers and any background callers can therefore share one Service.
type Service struct {
	logger    *zap.Logger
	cfg       config.Config
	client    *jablonet.Client
	mapper    *Mapper
	publisher EventPublisher

	// mu guards client: one vendor call (including any re-login it
	// triggers) at a time.
	mu sync.Mutex
}

// NewService constructs a fully wired alarm service. pub may be nil for
// library use without an event stream.
func NewService(cfg config.Config, logger *zap.Logger, client *jablonet.Client, pub EventPublisher) *Service {
	return &Service{
		logger:    logger,
		cfg:       cfg,
		client:    client,
		mapper:    NewMapper(),
		publisher: pub,
	}
}

// ListServices returns the registered alarm installations.
func (s *Service) ListServices(ctx context.Context) ([]model.Service, error) {
	s.mu.Lock()
	services, err := s.client.GetServices(ctx)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("alarm.list_services.failed", zap.Error(err))
		return nil, fmt.Errorf("list services: %w", err)
	}
	return s.mapper.FromServices(services), nil
}

// DescribeService returns metadata for one installation.
func (s *Service) DescribeService(ctx context.Context, serviceID int) (*model.ServiceInformation, error) {
	s.mu.Lock()
	info, err := s.client.GetServiceInformation(ctx, serviceID)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("alarm.describe_service.failed",
			zap.Int("service_id", serviceID),
			zap.Error(err))
		return nil, fmt.Errorf("describe service %d: %w", serviceID, err)
	}
	return s.mapper.FromServiceInformation(info), nil
}

// ListSections returns the alarm sections of a service with their states.
func (s *Service) ListSections(ctx context.Context, serviceID int) ([]model.Section, error) {
	s.mu.Lock()
	sections, err := s.client.GetSections(ctx, serviceID, s.cfg.ServiceType)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("alarm.list_sections.failed",
			zap.Int("service_id", serviceID),
			zap.Error(err))
		return nil, fmt.Errorf("list sections for service %d: %w", serviceID, err)
	}
	return s.mapper.FromSections(sections), nil
}

// ListGates returns the programmable outputs of a service with their states.
func (s *Service) ListGates(ctx context.Context, serviceID int) ([]model.Gate, error) {
	s.mu.Lock()
	gates, err := s.client.GetProgrammableGates(ctx, serviceID, s.cfg.ServiceType)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("alarm.list_gates.failed",
			zap.Int("service_id", serviceID),
			zap.Error(err))
		return nil, fmt.Errorf("list gates for service %d: %w", serviceID, err)
	}
	return s.mapper.FromGates(gates), nil
}

// ListThermostats returns the thermo devices of a service.
func (s *Service) ListThermostats(ctx context.Context, serviceID int) ([]model.Thermostat, error) {
	s.mu.Lock()
	devices, err := s.client.GetThermoDevices(ctx, serviceID, s.cfg.ServiceType)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("alarm.list_thermostats.failed",
			zap.Int("service_id", serviceID),
			zap.Error(err))
		return nil, fmt.Errorf("list thermostats for service %d: %w", serviceID, err)
	}
	return s.mapper.FromThermoDevices(devices), nil
}

// ListKeyboards returns the keyboard segments of a service.
func (s *Service) ListKeyboards(ctx context.Context, serviceID int) ([]model.KeyboardSegment, error) {
	s.mu.Lock()
	keyboards, err := s.client.GetKeyboardSegments(ctx, serviceID, s.cfg.ServiceType)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("alarm.list_keyboards.failed",
			zap.Int("service_id", serviceID),
			zap.Error(err))
		return nil, fmt.Errorf("list keyboards for service %d: %w", serviceID, err)
	}
	return s.mapper.FromKeyboards(keyboards), nil
}

// History returns historical events of a service.
func (s *Service) History(ctx context.Context, serviceID int, filter jablonet.HistoryFilter) ([]model.HistoryEvent, error) {
	s.mu.Lock()
	events, err := s.client.GetEventHistory(ctx, serviceID, filter, s.cfg.ServiceType)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("alarm.history.failed",
			zap.Int("service_id", serviceID),
			zap.Error(err))
		return nil, fmt.Errorf("history for service %d: %w", serviceID, err)
	}
	return s.mapper.FromHistory(events), nil
}

// ControlSection arms or disarms a section. The boolean reports whether the
// section reached the desired state.
func (s *Service) ControlSection(ctx context.Context, serviceID int, componentID string, state jablonet.SectionState, pinCode string, force bool) (bool, error) {
	s.logger.Info("alarm.control_section",
		zap.Int("service_id", serviceID),
		zap.String("component", componentID),
		zap.String("state", string(state)),
		zap.Bool("force", force))

	s.mu.Lock()
	reached, err := s.client.ControlSection(ctx, jablonet.SectionControl{
		ServiceID:   serviceID,
		ComponentID: componentID,
		State:       state,
		PinCode:     pinCode,
		ServiceType: s.cfg.ServiceType,
		Force:       force,
	})
	s.mu.Unlock()
	s.finishControl(ctx, "section", serviceID, componentID, string(state), reached, err)
	return reached, err
}

// ControlGate toggles a programmable output. The boolean reports whether
// the output reached the desired state.
func (s *Service) ControlGate(ctx context.Context, serviceID int, componentID string, state jablonet.GateState, pinCode string) (bool, error) {
	s.logger.Info("alarm.control_gate",
		zap.Int("service_id", serviceID),
		zap.String("component", componentID),
		zap.String("state", string(state)))

	s.mu.Lock()
	reached, err := s.client.ControlGate(ctx, jablonet.GateControl{
		ServiceID:   serviceID,
		ComponentID: componentID,
		State:       state,
		PinCode:     pinCode,
		ServiceType: s.cfg.ServiceType,
	})
	s.mu.Unlock()
	s.finishControl(ctx, "gate", serviceID, componentID, string(state), reached, err)
	return reached, err
}

// ControlThermostat sets the heating mode and/or target temperature of a
// thermo device.
func (s *Service) ControlThermostat(ctx context.Context, serviceID int, componentID string, mode jablonet.HeatingMode, temperature *float64, pinCode string) (bool, error) {
	fields := []zap.Field{
		zap.Int("service_id", serviceID),
		zap.String("component", componentID),
		zap.String("mode", string(mode)),
	}
	if temperature != nil {
		fields = append(fields, zap.Float64("temperature", *temperature))
	}
	s.logger.Info("alarm.control_thermostat", fields...)

	s.mu.Lock()
	reached, err := s.client.ControlThermoDevice(ctx, jablonet.ThermoControl{
		ServiceID:   serviceID,
		ComponentID: componentID,
		Mode:        mode,
		Temperature: temperature,
		PinCode:     pinCode,
		ServiceType: s.cfg.ServiceType,
	})
	s.mu.Unlock()
	s.finishControl(ctx, "thermostat", serviceID, componentID, string(mode), reached, err)
	return reached, err
}

// Settings returns the thermostat configuration of a service.
func (s *Service) Settings(ctx context.Context, serviceID int) ([]jablonet.ServiceSetting, error) {
	s.mu.Lock()
	settings, err := s.client.GetServiceSettings(ctx, serviceID)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("alarm.settings.failed",
			zap.Int("service_id", serviceID),
			zap.Error(err))
		return nil, fmt.Errorf("settings for service %d: %w", serviceID, err)
	}
	return settings, nil
}

// UpdateSettings writes thermostat configuration entries and notifies the
// internal event stream on success.
func (s *Service) UpdateSettings(ctx context.Context, serviceID int, settings []jablonet.ServiceSetting) error {
	s.mu.Lock()
	err := s.client.UpdateServiceSettings(ctx, serviceID, settings)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("alarm.update_settings.failed",
			zap.Int("service_id", serviceID),
			zap.Error(err))
		return err
	}
	s.logger.Info("alarm.settings_updated",
		zap.Int("service_id", serviceID),
		zap.Int("entries", len(settings)))

	if s.publisher != nil {
		evt := struct {
			ServiceID int       `json:"service_id"`
			Entries   int       `json:"entries"`
			Timestamp time.Time `json:"timestamp"`
		}{serviceID, len(settings), time.Now().UTC()}
		if pubErr := s.publisher.Publish(ctx, settingsUpdatedSubject, evt); pubErr != nil {
			s.logger.Warn("alarm.publish_failed",
				zap.String("subject", settingsUpdatedSubject),
				zap.Error(pubErr))
		}
	}
	return nil
}

// DeviceSchedule returns the weekly heating schedule of one thermo device.
func (s *Service) DeviceSchedule(ctx context.Context, serviceID int, deviceID string) (*model.DeviceSchedule, error) {
	s.mu.Lock()
	schedule, err := s.client.GetDeviceSchedule(ctx, serviceID, deviceID)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("alarm.device_schedule.failed",
			zap.Int("service_id", serviceID),
			zap.String("device", deviceID),
			zap.Error(err))
		return nil, fmt.Errorf("schedule for device %s: %w", deviceID, err)
	}
	return s.mapper.FromSchedule(schedule), nil
}

// finishControl records metrics for a control action and publishes the
// outcome event when the action itself succeeded.
func (s *Service) finishControl(ctx context.Context, kind string, serviceID int, componentID, desired string, reached bool, err error) {
	switch {
	case err != nil:
		metrics.IncControlAction(kind, "error")
		s.logger.Error("alarm.control_failed",
			zap.String("kind", kind),
			zap.Int("service_id", serviceID),
			zap.String("component", componentID),
			zap.Error(err))
		return
	case reached:
		metrics.IncControlAction(kind, "reached")
	default:
		metrics.IncControlAction(kind, "not_reached")
	}

	if s.publisher == nil {
		return
	}
	result := model.ControlResult{
		ServiceID:   serviceID,
		ComponentID: componentID,
		Kind:        kind,
		Desired:     desired,
		Reached:     reached,
		Timestamp:   time.Now().UTC(),
	}
	if pubErr := s.publisher.PublishControlResult(ctx, result); pubErr != nil {
		s.logger.Warn("alarm.publish_failed",
			zap.String("kind", kind),
			zap.String("component", componentID),
			zap.Error(pubErr))
	}
}
