package model

// Service is one registered alarm installation bound to the cloud account.
type Service struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ServiceType string `json:"service_type"` // e.g. "JA100"
	Status      string `json:"status"`
	Level       string `json:"level"`
	Visible     bool   `json:"visible"`
	Message     string `json:"message,omitempty"`
	LastEventAt string `json:"last_event_at,omitempty"`
}

// ServiceInformation holds device/installer/support metadata for a service.
type ServiceInformation struct {
	Model           string `json:"model,omitempty"`
	Family          string `json:"family,omitempty"`
	RegistrationKey string `json:"registration_key,omitempty"`
	RegisteredAt    string `json:"registered_at,omitempty"`
	Firmware        string `json:"firmware,omitempty"`
	InstallerName   string `json:"installer_name,omitempty"`
	InstallerPhone  string `json:"installer_phone,omitempty"`
	InstallerEmail  string `json:"installer_email,omitempty"`
	SupportName     string `json:"support_name,omitempty"`
	SupportPhone    string `json:"support_phone,omitempty"`
	SupportEmail    string `json:"support_email,omitempty"`
}

// Section is an alarm zone that can be armed or disarmed.
type Section struct {
	ComponentID       string `json:"component_id"`
	Name              string `json:"name"`
	State             string `json:"state"` // ARM | PARTIAL_ARM | DISARM
	CanControl        bool   `json:"can_control"`
	NeedAuthorization bool   `json:"need_authorization"`
	PartialArmEnabled bool   `json:"partial_arm_enabled"`
}

// Gate is a remotely toggleable programmable output.
type Gate struct {
	ComponentID string `json:"component_id"`
	Name        string `json:"name"`
	State       string `json:"state"` // ON | OFF
	CanControl  bool   `json:"can_control"`
}

// Thermostat is a thermo device joined with its last reported measurement.
type Thermostat struct {
	DeviceID    string  `json:"device_id"`
	Name        string  `json:"name,omitempty"`
	Temperature float64 `json:"temperature"`
	MeasuredAt  string  `json:"measured_at,omitempty"`
}

// KeyboardSegment is one segment of a wall keyboard.
type KeyboardSegment struct {
	KeyboardID string `json:"keyboard_id"`
	Keyboard   string `json:"keyboard"`
	SegmentID  string `json:"segment_id"`
	Name       string `json:"name"`
	Function   string `json:"function,omitempty"`
	CanControl bool   `json:"can_control"`
}

// HistoryEvent is one entry of a service's event history.
type HistoryEvent struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Icon        string `json:"icon,omitempty"`
	Text        string `json:"text"`
	SectionName string `json:"section_name,omitempty"`
	InvokerName string `json:"invoker_name,omitempty"`
	InvokerType string `json:"invoker_type,omitempty"`
}

// ScheduleSlot is one heating window of a per-device schedule.
type ScheduleSlot struct {
	Day         string  `json:"day"`
	From        string  `json:"from"`
	To          string  `json:"to"`
	Temperature float64 `json:"temperature"`
}

// DeviceSchedule is the weekly heating schedule of one thermo device.
type DeviceSchedule struct {
	DeviceID string         `json:"device_id"`
	RoomID   string         `json:"room_id,omitempty"`
	Slots    []ScheduleSlot `json:"slots"`
}
