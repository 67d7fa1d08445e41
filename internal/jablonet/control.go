package jablonet

import (
	"context"
	"fmt"
	"strings"
)

// SectionState is a target state for an alarm section.
type SectionState string

const (
	SectionArm        SectionState = "ARM"
	SectionPartialArm SectionState = "PARTIAL_ARM"
	SectionDisarm     SectionState = "DISARM"
)

// GateState is a target state for a programmable output.
type GateState string

const (
	GateOn  GateState = "ON"
	GateOff GateState = "OFF"
)

// HeatingMode is a target mode for a thermo device.
type HeatingMode string

const (
	HeatingManual    HeatingMode = "MANUAL"
	HeatingScheduled HeatingMode = "SCHEDULED"
	HeatingOff       HeatingMode = "OFF"
)

// SectionControl describes one arm/disarm action.
type SectionControl struct {
	ServiceID   int
	ComponentID string
	State       SectionState
	// PinCode overrides the client's default authorization code.
	PinCode     string
	ServiceType string
	// Force overrides a blockage (e.g. an open door contact).
	Force bool
}

// GateControl describes one programmable output toggle.
type GateControl struct {
	ServiceID   int
	ComponentID string
	State       GateState
	PinCode     string
	ServiceType string
	Force       bool
}

// ThermoControl describes one thermo device change. Mode and Temperature
// are both optional but at least one must be set; a SCHEDULED mode with an
// explicit temperature is rejected locally because the upstream API would
// silently reinterpret it as a manual override.
type ThermoControl struct {
	ServiceID   int
	ComponentID string
	Mode        HeatingMode
	Temperature *float64
	PinCode     string
	ServiceType string
}

// resolvePinCode returns the explicit code when given, else the client's
// default, else ErrNoPinCode. Every control operation resolves its code
// before building a payload so an unauthorized action is never sent.
func (c *Client) resolvePinCode(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if c.pin != "" {
		return c.pin, nil
	}
	return "", ErrNoPinCode
}

// evaluateControlOutcome inspects a control response. A WRONG-CODE entry
// anywhere in the error list wins over every other error; any remaining
// error fails with the first offending entry. Otherwise the result is a
// plain boolean: whether the component reached the desired state. False
// without error means the action simply has not (yet) reached the target;
// the API does not distinguish rejection from verification timing there.
func evaluateControlOutcome(data ControlResponse, componentID, desiredState string) (bool, error) {
	for _, e := range data.ControlErrors {
		if e.ControlError == "WRONG-CODE" {
			return false, ErrIncorrectPinCode
		}
	}
	if len(data.ControlErrors) > 0 {
		first := data.ControlErrors[0]
		return false, &ControlActionError{ComponentID: first.ComponentID, Code: first.ControlError}
	}

	want := strings.ToUpper(desiredState)
	for _, st := range data.States {
		if st.ComponentID == componentID && st.State == want {
			return true, nil
		}
	}
	return false, nil
}

// ControlSection sets an alarm section to the desired state. The boolean
// reports whether the section reached that state.
func (c *Client) ControlSection(ctx context.Context, req SectionControl) (bool, error) {
	pin, err := c.resolvePinCode(req.PinCode)
	if err != nil {
		return false, err
	}

	payload := controlPayload{
		ServiceID:     req.ServiceID,
		Authorization: authorization{AuthorizationCode: pin},
		ControlComponents: []controlComponent{{
			Actions:     controlAction{Action: "CONTROL-SECTION", Value: string(req.State)},
			ComponentID: req.ComponentID,
			Force:       req.Force,
		}},
	}

	var env struct {
		Data ControlResponse `json:"data"`
	}
	if err := c.dispatch(ctx, typedEndpoint(req.ServiceType, "controlComponent.json"), payload, encodeJSON, &env); err != nil {
		return false, err
	}
	return evaluateControlOutcome(env.Data, req.ComponentID, string(req.State))
}

// ControlGate toggles a programmable output. The boolean reports whether
// the output reached the desired state.
func (c *Client) ControlGate(ctx context.Context, req GateControl) (bool, error) {
	pin, err := c.resolvePinCode(req.PinCode)
	if err != nil {
		return false, err
	}

	payload := controlPayload{
		ServiceID:     req.ServiceID,
		Authorization: authorization{AuthorizationCode: pin},
		ControlComponents: []controlComponent{{
			Actions:     controlAction{Action: "CONTROL-PG", Value: string(req.State)},
			ComponentID: req.ComponentID,
			Force:       req.Force,
		}},
	}

	var env struct {
		Data ControlResponse `json:"data"`
	}
	if err := c.dispatch(ctx, typedEndpoint(req.ServiceType, "controlComponent.json"), payload, encodeJSON, &env); err != nil {
		return false, err
	}
	return evaluateControlOutcome(env.Data, req.ComponentID, string(req.State))
}

// ControlThermoDevice sets the heating mode and/or target temperature of a
// thermo device.
func (c *Client) ControlThermoDevice(ctx context.Context, req ThermoControl) (bool, error) {
	if req.Mode == "" && req.Temperature == nil {
		return false, fmt.Errorf("jablonet: thermo control needs a mode or a temperature: %w", ErrBadRequest)
	}
	if req.Mode == HeatingScheduled && req.Temperature != nil {
		return false, fmt.Errorf("jablonet: scheduled heating mode cannot carry an explicit temperature: %w", ErrBadRequest)
	}

	pin, err := c.resolvePinCode(req.PinCode)
	if err != nil {
		return false, err
	}

	action := controlAction{Action: "CONTROL-THERMO-DEVICE", Temperature: req.Temperature}
	if req.Mode != "" {
		action.Value = string(req.Mode)
	}
	payload := controlPayload{
		ServiceID:     req.ServiceID,
		Authorization: authorization{AuthorizationCode: pin},
		ControlComponents: []controlComponent{{
			Actions:     action,
			ComponentID: req.ComponentID,
		}},
	}

	var env struct {
		Data ControlResponse `json:"data"`
	}
	if err := c.dispatch(ctx, typedEndpoint(req.ServiceType, "controlThermoDevice.json"), payload, encodeJSON, &env); err != nil {
		return false, err
	}

	if req.Mode != "" {
		return evaluateControlOutcome(env.Data, req.ComponentID, string(req.Mode))
	}
	// Temperature-only change: there is no target state to verify, only
	// control errors to surface.
	if _, err := evaluateControlOutcome(env.Data, req.ComponentID, ""); err != nil {
		return false, err
	}
	return true, nil
}
