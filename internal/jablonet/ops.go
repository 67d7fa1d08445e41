package jablonet

import "context"

const defaultHistoryLimit = 20

// GetServices returns the services registered to the account.
func (c *Client) GetServices(ctx context.Context) ([]Service, error) {
	var env struct {
		Data struct {
			Services []Service `json:"services"`
		} `json:"data"`
	}
	err := c.dispatch(ctx, "serviceListGet.json", map[string]any{
		"list-type":  "EXTENDED",
		"visibility": "DEFAULT",
	}, encodeJSON, &env)
	if err != nil {
		return nil, err
	}
	return env.Data.Services, nil
}

// GetServiceInformation returns device, installer and support metadata for
// one service.
func (c *Client) GetServiceInformation(ctx context.Context, serviceID int) (*ServiceInformation, error) {
	var env struct {
		Data ServiceInformation `json:"data"`
	}
	err := c.dispatch(ctx, "serviceInformationGet.json", map[string]any{
		"service-id": serviceID,
	}, encodeJSON, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// GetSections returns the alarm sections of a service together with their
// states.
func (c *Client) GetSections(ctx context.Context, serviceID int, serviceType string) (*Sections, error) {
	var env struct {
		Data Sections `json:"data"`
	}
	err := c.dispatch(ctx, typedEndpoint(serviceType, "sectionsGet.json"), map[string]any{
		"connect-device": true,
		"list-type":      "FULL",
		"service-id":     serviceID,
		"service-states": true,
	}, encodeJSON, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// GetThermoDevices returns the thermo devices of a service, each joined
// with its last reported measurement by object-device-id.
func (c *Client) GetThermoDevices(ctx context.Context, serviceID int, serviceType string) ([]ThermoDevice, error) {
	var env struct {
		Data struct {
			Devices []ThermoDeviceInfo `json:"thermo-devices"`
			States  []ThermoState      `json:"states"`
		} `json:"data"`
	}
	err := c.dispatch(ctx, typedEndpoint(serviceType, "thermoDevicesGet.json"), map[string]any{
		// Connect to the device so measurements are current, not cached.
		"connect-device": true,
		"list-type":      "FULL",
		"service-id":     serviceID,
		"service-states": false,
	}, encodeJSON, &env)
	if err != nil {
		return nil, err
	}

	states := make(map[string]ThermoState, len(env.Data.States))
	for _, st := range env.Data.States {
		states[st.ObjectDeviceID] = st
	}

	devices := make([]ThermoDevice, 0, len(env.Data.Devices))
	for _, d := range env.Data.Devices {
		td := ThermoDevice{
			ObjectDeviceID: d.ObjectDeviceID,
			Name:           d.Name,
			CanControl:     d.CanControl,
		}
		if st, ok := states[d.ObjectDeviceID]; ok {
			td.Temperature = st.Temperature
			td.LastTemperatureTime = st.LastTemperatureTime
		}
		devices = append(devices, td)
	}
	return devices, nil
}

// GetKeyboardSegments returns the wall keyboards of a service with their
// segments.
func (c *Client) GetKeyboardSegments(ctx context.Context, serviceID int, serviceType string) ([]Keyboard, error) {
	var env struct {
		Data struct {
			Keyboards []Keyboard `json:"keyboards"`
		} `json:"data"`
	}
	err := c.dispatch(ctx, typedEndpoint(serviceType, "keyboardSegmentsGet.json"), map[string]any{
		// Keyboards rarely change, no need to wake the device.
		"connect-device": false,
		"list-type":      "FULL",
		"service-id":     serviceID,
		"service-states": false,
	}, encodeJSON, &env)
	if err != nil {
		return nil, err
	}
	return env.Data.Keyboards, nil
}

// GetProgrammableGates returns the programmable outputs of a service
// together with their states.
func (c *Client) GetProgrammableGates(ctx context.Context, serviceID int, serviceType string) (*ProgrammableGates, error) {
	var env struct {
		Data ProgrammableGates `json:"data"`
	}
	err := c.dispatch(ctx, typedEndpoint(serviceType, "programmableGatesGet.json"), map[string]any{
		"connect-device": true,
		"list-type":      "FULL",
		"service-id":     serviceID,
		"service-states": true,
	}, encodeJSON, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// GetEventHistory returns historical events of a service, newest first.
// Without a filter the last 20 events are returned.
func (c *Client) GetEventHistory(ctx context.Context, serviceID int, filter HistoryFilter, serviceType string) ([]HistoryEvent, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	payload := map[string]any{
		"service-id": serviceID,
		"limit":      limit,
	}
	for key, val := range map[string]string{
		"date-from":     filter.DateFrom,
		"date-to":       filter.DateTo,
		"event-id-from": filter.EventIDFrom,
		"event-id-to":   filter.EventIDTo,
	} {
		if val != "" {
			payload[key] = val
		}
	}

	var env struct {
		Data struct {
			Events []HistoryEvent `json:"events"`
		} `json:"data"`
	}
	if err := c.dispatch(ctx, typedEndpoint(serviceType, "eventHistoryGet.json"), payload, encodeJSON, &env); err != nil {
		return nil, err
	}
	return env.Data.Events, nil
}
