package econet

import "encoding/json"

// DeviceParams is the primary live-data document from getDeviceParams.
// Curr values arrive untyped: numbers, strings or null.
type DeviceParams struct {
	UID          string            `json:"uid"`
	Curr         map[string]any    `json:"curr"`
	CurrUnits    map[string]string `json:"currUnits"`
	WifiQuality  any               `json:"wifiQuality"`
	WifiStrength any               `json:"wifiStrength"`
}

// WifiParam returns the wifi field for a well-known key, nil when absent.
func (p *DeviceParams) WifiParam(key string) any {
	switch key {
	case "wifiQuality":
		return p.WifiQuality
	case "wifiStrength":
		return p.WifiStrength
	}
	return nil
}

type EditableParam struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// EditableParams is the secondary document from getDeviceEditableParams:
// setpoint-style parameters keyed by numeric id, plus the loosely structured
// informationParams block that is decoded lazily per entry.
type EditableParams struct {
	Data              map[string]EditableParam   `json:"data"`
	InformationParams map[string]json.RawMessage `json:"informationParams"`
}

type userDevicesResponse struct {
	Devices []string `json:"devices"`
}
