package jablonet

//
// ────────────────────────────────────────────────
//   Services
// ────────────────────────────────────────────────
//

// ExtendedState is one typed status value attached to a service list entry.
type ExtendedState struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Service is one entry of serviceListGet.json.
type Service struct {
	ServiceID      int             `json:"service-id"`
	CloudEntityID  string          `json:"cloud-entity-id"`
	Name           string          `json:"name"`
	ServiceType    string          `json:"service-type"`
	Icon           string          `json:"icon"`
	Index          int             `json:"index"`
	Level          string          `json:"level"`
	Status         string          `json:"status"`
	Visible        bool            `json:"visible"`
	Message        string          `json:"message"`
	EventLastTime  string          `json:"event-last-time"`
	ShareStatus    string          `json:"share-status"`
	ExtendedStates []ExtendedState `json:"extended-states"`
}

//
// ────────────────────────────────────────────────
//   Service information
// ────────────────────────────────────────────────
//

// InformationDevice describes the central unit of a service.
type InformationDevice struct {
	Family           string `json:"family"`
	ModelName        string `json:"model-name"`
	ServiceName      string `json:"service-name"`
	RegistrationKey  string `json:"registration-key"`
	RegistrationDate string `json:"registration-date"`
	PhoneNumber      string `json:"phone-number"`
	Firmware         string `json:"firmware"`
}

// InformationContact is an installation-company or support contact.
type InformationContact struct {
	Name        string `json:"name,omitempty"`
	Distributor string `json:"distributor,omitempty"`
	PhoneNumber string `json:"phone-number"`
	Email       string `json:"email"`
}

// ServiceInformation is the payload of serviceInformationGet.json.
// InstallationCompany is absent for self-installed systems.
type ServiceInformation struct {
	Device              InformationDevice   `json:"device"`
	InstallationCompany *InformationContact `json:"installation-company"`
	Support             InformationContact  `json:"support"`
}

//
// ────────────────────────────────────────────────
//   Sections
// ────────────────────────────────────────────────
//

// ComponentState pairs a cloud component with its reported state.
type ComponentState struct {
	CloudComponentID string `json:"cloud-component-id"`
	State            string `json:"state"`
}

// Section is one alarm zone definition.
type Section struct {
	CloudComponentID  string `json:"cloud-component-id"`
	Name              string `json:"name"`
	CanControl        bool   `json:"can-control"`
	NeedAuthorization bool   `json:"need-authorization"`
	PartialArmEnabled bool   `json:"partial-arm-enabled"`
}

// ServiceStates carries service-level state attached to a sections response.
type ServiceStates struct {
	ServiceName string `json:"service-name"`
}

// Sections is the payload of {type}/sectionsGet.json: section definitions
// plus their states, joined by cloud-component-id.
type Sections struct {
	ServiceStates ServiceStates    `json:"service-states"`
	States        []ComponentState `json:"states"`
	Sections      []Section        `json:"sections"`
}

//
// ────────────────────────────────────────────────
//   Thermo devices
// ────────────────────────────────────────────────
//

// ThermoDeviceInfo is one thermo device definition.
type ThermoDeviceInfo struct {
	ObjectDeviceID string `json:"object-device-id"`
	Name           string `json:"name"`
	CanControl     bool   `json:"can-control"`
}

// ThermoState is one thermo device measurement.
type ThermoState struct {
	ObjectDeviceID      string  `json:"object-device-id"`
	Temperature         float64 `json:"temperature"`
	LastTemperatureTime string  `json:"last-temperature-time"`
}

// ThermoDevice is a thermo device joined with its last measurement by
// object-device-id.
type ThermoDevice struct {
	ObjectDeviceID      string  `json:"object-device-id"`
	Name                string  `json:"name,omitempty"`
	CanControl          bool    `json:"can-control"`
	Temperature         float64 `json:"temperature"`
	LastTemperatureTime string  `json:"last-temperature-time,omitempty"`
}

//
// ────────────────────────────────────────────────
//   Keyboards
// ────────────────────────────────────────────────
//

// KeyboardSegment is one controllable segment of a wall keyboard.
type KeyboardSegment struct {
	SegmentID          string `json:"segment-id"`
	Name               string `json:"name"`
	CanControl         bool   `json:"can-control"`
	NeedAuthorization  bool   `json:"need-authorization"`
	DisplayComponentID string `json:"display-component-id"`
	ControlComponentID string `json:"control-component-id"`
	SegmentFunction    string `json:"segment-function"`
}

// Keyboard is one entry of {type}/keyboardSegmentsGet.json.
type Keyboard struct {
	ObjectDeviceID string            `json:"object-device-id"`
	Name           string            `json:"name"`
	Segments       []KeyboardSegment `json:"segments"`
}

//
// ────────────────────────────────────────────────
//   Programmable gates
// ────────────────────────────────────────────────
//

// Gate is one programmable output definition.
type Gate struct {
	CloudComponentID string `json:"cloud-component-id"`
	Name             string `json:"name"`
	CanControl       bool   `json:"can-control"`
}

// ProgrammableGates is the payload of {type}/programmableGatesGet.json.
type ProgrammableGates struct {
	ServiceStates ServiceStates    `json:"service-states"`
	Gates         []Gate           `json:"programmableGates"`
	States        []ComponentState `json:"states"`
}

//
// ────────────────────────────────────────────────
//   Event history
// ────────────────────────────────────────────────
//

// HistoryEvent is one entry of {type}/eventHistoryGet.json.
type HistoryEvent struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	IconType    string `json:"icon-type"`
	EventText   string `json:"event-text"`
	SectionName string `json:"section-name"`
	InvokerName string `json:"invoker-name"`
	InvokerType string `json:"invoker-type"`
}

// HistoryFilter narrows an event history query. Zero values are omitted
// from the request; Limit defaults to 20 when unset.
type HistoryFilter struct {
	DateFrom    string
	DateTo      string
	EventIDFrom string
	EventIDTo   string
	Limit       int
}

//
// ────────────────────────────────────────────────
//   Component control
// ────────────────────────────────────────────────
//

// ControlResponseError is one rejected component of a control call.
type ControlResponseError struct {
	ComponentID  string `json:"component-id"`
	ControlError string `json:"control-error"`
}

// ControlResponseState is one component state reported after a control call.
type ControlResponseState struct {
	ComponentID string `json:"component-id"`
	State       string `json:"state"`
}

// ControlResponse is the payload of {type}/controlComponent.json and
// {type}/controlThermoDevice.json.
type ControlResponse struct {
	ControlErrors []ControlResponseError `json:"control-errors"`
	States        []ControlResponseState `json:"states"`
}

type authorization struct {
	AuthorizationCode string `json:"authorization-code"`
}

type controlAction struct {
	Action      string   `json:"action"`
	Value       string   `json:"value,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

type controlComponent struct {
	Actions     controlAction `json:"actions"`
	ComponentID string        `json:"component-id"`
	Force       bool          `json:"force"`
}

type controlPayload struct {
	ServiceID         int                `json:"service-id"`
	Authorization     authorization      `json:"authorization"`
	ControlComponents []controlComponent `json:"control-components"`
}

//
// ────────────────────────────────────────────────
//   Service settings and schedules
// ────────────────────────────────────────────────
//

// ServiceSetting is one device-scoped thermostat configuration entry.
type ServiceSetting struct {
	ObjectDeviceID string `json:"object-device-id"`
	Key            string `json:"key"`
	Value          string `json:"value"`
}

type settingsUpdatePayload struct {
	ServiceID int              `json:"service-id"`
	Settings  []ServiceSetting `json:"settings"`
}

// settingsUpdateResponse is the top-level response of updateServiceSettings.json.
// Unlike the other endpoints it carries no data envelope, only a status flag.
type settingsUpdateResponse struct {
	Status       bool   `json:"status"`
	ErrorStatus  string `json:"error-status"`
	ErrorMessage string `json:"error-message"`
}

// ScheduleSlot is one heating window of a device schedule.
type ScheduleSlot struct {
	Day         string  `json:"day"`
	From        string  `json:"from"`
	To          string  `json:"to"`
	Temperature float64 `json:"temperature"`
}

// DeviceSchedule is the payload of getDeviceSchedule.json.
type DeviceSchedule struct {
	ObjectDeviceID string         `json:"object-device-id"`
	RoomID         string         `json:"room-id"`
	Slots          []ScheduleSlot `json:"slots"`
}
