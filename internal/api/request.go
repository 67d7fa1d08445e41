package api

import (
	"fmt"

	"github.com/alarmbridge/jablonet-adapter/internal/jablonet"
)

// SectionControlRequest is the payload to arm or disarm an alarm section.
type SectionControlRequest struct {
	ComponentID string `json:"componentId" example:"SEC-123456789"`
	State       string `json:"state" example:"ARM"`
	PinCode     string `json:"pinCode,omitempty"`
	Force       bool   `json:"force,omitempty"`
}

// Validate checks the request for structural problems before it reaches the
// service layer.
func (r SectionControlRequest) Validate() error {
	if r.ComponentID == "" {
		return fmt.Errorf("componentId is required")
	}
	switch jablonet.SectionState(r.State) {
	case jablonet.SectionArm, jablonet.SectionPartialArm, jablonet.SectionDisarm:
		return nil
	default:
		return fmt.Errorf("state must be one of ARM, PARTIAL_ARM, DISARM")
	}
}

// GateControlRequest is the payload to toggle a programmable output.
type GateControlRequest struct {
	ComponentID string `json:"componentId" example:"PG-123456789"`
	State       string `json:"state" example:"ON"`
	PinCode     string `json:"pinCode,omitempty"`
}

func (r GateControlRequest) Validate() error {
	if r.ComponentID == "" {
		return fmt.Errorf("componentId is required")
	}
	switch jablonet.GateState(r.State) {
	case jablonet.GateOn, jablonet.GateOff:
		return nil
	default:
		return fmt.Errorf("state must be ON or OFF")
	}
}

// ThermostatControlRequest is the payload to change a thermo device.
// Mode and temperature are both optional but at least one must be set.
type ThermostatControlRequest struct {
	ComponentID string   `json:"componentId" example:"THM-123456789"`
	Mode        string   `json:"mode,omitempty" example:"MANUAL"`
	Temperature *float64 `json:"temperature,omitempty" example:"21.5"`
	PinCode     string   `json:"pinCode,omitempty"`
}

func (r ThermostatControlRequest) Validate() error {
	if r.ComponentID == "" {
		return fmt.Errorf("componentId is required")
	}
	if r.Mode == "" && r.Temperature == nil {
		return fmt.Errorf("mode or temperature is required")
	}
	if r.Mode != "" {
		switch jablonet.HeatingMode(r.Mode) {
		case jablonet.HeatingManual, jablonet.HeatingScheduled, jablonet.HeatingOff:
		default:
			return fmt.Errorf("mode must be one of MANUAL, SCHEDULED, OFF")
		}
	}
	return nil
}

// SettingsUpdateRequest is the payload to write thermostat configuration
// entries.
type SettingsUpdateRequest struct {
	Settings []jablonet.ServiceSetting `json:"settings"`
}

func (r SettingsUpdateRequest) Validate() error {
	if len(r.Settings) == 0 {
		return fmt.Errorf("settings must not be empty")
	}
	return nil
}
