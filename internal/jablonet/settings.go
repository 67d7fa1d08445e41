package jablonet

import "context"

// GetServiceSettings returns the thermostat configuration entries of a
// service.
func (c *Client) GetServiceSettings(ctx context.Context, serviceID int) ([]ServiceSetting, error) {
	var env struct {
		Data struct {
			Settings []ServiceSetting `json:"settings"`
		} `json:"data"`
	}
	err := c.dispatch(ctx, "getServiceSettings.json", map[string]any{
		"service-id": serviceID,
	}, encodeJSON, &env)
	if err != nil {
		return nil, err
	}
	return env.Data.Settings, nil
}

// UpdateServiceSettings writes thermostat configuration entries. The update
// only counts as successful when the server status flag is true; otherwise
// the server's error status and message are surfaced verbatim.
func (c *Client) UpdateServiceSettings(ctx context.Context, serviceID int, settings []ServiceSetting) error {
	payload := settingsUpdatePayload{ServiceID: serviceID, Settings: settings}

	var resp settingsUpdateResponse
	if err := c.dispatch(ctx, "updateServiceSettings.json", payload, encodeForm, &resp); err != nil {
		return err
	}
	if !resp.Status {
		return &ControlActionError{Code: resp.ErrorStatus, Message: resp.ErrorMessage}
	}
	return nil
}

// GetDeviceSchedule returns the weekly heating schedule of one thermo
// device.
func (c *Client) GetDeviceSchedule(ctx context.Context, serviceID int, deviceID string) (*DeviceSchedule, error) {
	var env struct {
		Data struct {
			Schedule DeviceSchedule `json:"schedule"`
		} `json:"data"`
	}
	err := c.dispatch(ctx, "getDeviceSchedule.json", map[string]any{
		"service-id":       serviceID,
		"object-device-id": deviceID,
	}, encodeJSON, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data.Schedule, nil
}
