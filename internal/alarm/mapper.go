package alarm

import (
	"github.com/alarmbridge/jablonet-adapter/internal/jablonet"
	"github.com/alarmbridge/jablonet-adapter/pkg/model"
)

// Mapper converts Jablotron wire shapes into the canonical alarm model.
type Mapper struct{}

// NewMapper creates a new Mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// FromService converts one service list entry.
func (m *Mapper) FromService(s jablonet.Service) model.Service {
	return model.Service{
		ID:          s.ServiceID,
		Name:        s.Name,
		ServiceType: s.ServiceType,
		Status:      s.Status,
		Level:       s.Level,
		Visible:     s.Visible,
		Message:     s.Message,
		LastEventAt: s.EventLastTime,
	}
}

// FromServices converts a service list.
func (m *Mapper) FromServices(in []jablonet.Service) []model.Service {
	out := make([]model.Service, 0, len(in))
	for _, s := range in {
		out = append(out, m.FromService(s))
	}
	return out
}

// FromServiceInformation flattens the device/installer/support metadata.
func (m *Mapper) FromServiceInformation(info *jablonet.ServiceInformation) *model.ServiceInformation {
	if info == nil {
		return nil
	}
	out := &model.ServiceInformation{
		Model:           info.Device.ModelName,
		Family:          info.Device.Family,
		RegistrationKey: info.Device.RegistrationKey,
		RegisteredAt:    info.Device.RegistrationDate,
		Firmware:        info.Device.Firmware,
		SupportName:     info.Support.Distributor,
		SupportPhone:    info.Support.PhoneNumber,
		SupportEmail:    info.Support.Email,
	}
	if ic := info.InstallationCompany; ic != nil {
		out.InstallerName = ic.Name
		out.InstallerPhone = ic.PhoneNumber
		out.InstallerEmail = ic.Email
	}
	return out
}

// FromSections joins section definitions with their states by
// cloud-component-id.
func (m *Mapper) FromSections(in *jablonet.Sections) []model.Section {
	if in == nil {
		return nil
	}
	states := stateIndex(in.States)

	out := make([]model.Section, 0, len(in.Sections))
	for _, sec := range in.Sections {
		out = append(out, model.Section{
			ComponentID:       sec.CloudComponentID,
			Name:              sec.Name,
			State:             states[sec.CloudComponentID],
			CanControl:        sec.CanControl,
			NeedAuthorization: sec.NeedAuthorization,
			PartialArmEnabled: sec.PartialArmEnabled,
		})
	}
	return out
}

// FromGates joins gate definitions with their states by cloud-component-id.
func (m *Mapper) FromGates(in *jablonet.ProgrammableGates) []model.Gate {
	if in == nil {
		return nil
	}
	states := stateIndex(in.States)

	out := make([]model.Gate, 0, len(in.Gates))
	for _, g := range in.Gates {
		out = append(out, model.Gate{
			ComponentID: g.CloudComponentID,
			Name:        g.Name,
			State:       states[g.CloudComponentID],
			CanControl:  g.CanControl,
		})
	}
	return out
}

// FromThermoDevices converts joined thermo devices.
func (m *Mapper) FromThermoDevices(in []jablonet.ThermoDevice) []model.Thermostat {
	out := make([]model.Thermostat, 0, len(in))
	for _, d := range in {
		out = append(out, model.Thermostat{
			DeviceID:    d.ObjectDeviceID,
			Name:        d.Name,
			Temperature: d.Temperature,
			MeasuredAt:  d.LastTemperatureTime,
		})
	}
	return out
}

// FromKeyboards flattens keyboards into their segments.
func (m *Mapper) FromKeyboards(in []jablonet.Keyboard) []model.KeyboardSegment {
	var out []model.KeyboardSegment
	for _, kb := range in {
		for _, seg := range kb.Segments {
			out = append(out, model.KeyboardSegment{
				KeyboardID: kb.ObjectDeviceID,
				Keyboard:   kb.Name,
				SegmentID:  seg.SegmentID,
				Name:       seg.Name,
				Function:   seg.SegmentFunction,
				CanControl: seg.CanControl,
			})
		}
	}
	return out
}

// FromHistory converts history events.
func (m *Mapper) FromHistory(in []jablonet.HistoryEvent) []model.HistoryEvent {
	out := make([]model.HistoryEvent, 0, len(in))
	for _, ev := range in {
		out = append(out, model.HistoryEvent{
			ID:          ev.ID,
			Date:        ev.Date,
			Icon:        ev.IconType,
			Text:        ev.EventText,
			SectionName: ev.SectionName,
			InvokerName: ev.InvokerName,
			InvokerType: ev.InvokerType,
		})
	}
	return out
}

// FromSchedule converts a device schedule.
func (m *Mapper) FromSchedule(in *jablonet.DeviceSchedule) *model.DeviceSchedule {
	if in == nil {
		return nil
	}
	out := &model.DeviceSchedule{
		DeviceID: in.ObjectDeviceID,
		RoomID:   in.RoomID,
		Slots:    make([]model.ScheduleSlot, 0, len(in.Slots)),
	}
	for _, slot := range in.Slots {
		out.Slots = append(out.Slots, model.ScheduleSlot{
			Day:         slot.Day,
			From:        slot.From,
			To:          slot.To,
			Temperature: slot.Temperature,
		})
	}
	return out
}

func stateIndex(states []jablonet.ComponentState) map[string]string {
	idx := make(map[string]string, len(states))
	for _, st := range states {
		idx[st.CloudComponentID] = st.State
	}
	return idx
}
