package model

type DiscoveryDevice struct {
	Identifiers  []string `json:"identifiers"`
	Name         string   `json:"name"`
	Manufacturer string   `json:"manufacturer"`
	Model        string   `json:"model"`
	ViaDevice    string   `json:"via_device"`
}

// DiscoveryMessage is the retained Home Assistant discovery document that
// tells the consumer how to present a sensor and which topic carries it.
type DiscoveryMessage struct {
	Name        string          `json:"name"`
	UniqueID    string          `json:"unique_id"`
	ObjectID    string          `json:"object_id"`
	StateTopic  string          `json:"state_topic"`
	DeviceClass string          `json:"device_class,omitempty"`
	Unit        string          `json:"unit_of_measurement,omitempty"`
	Icon        string          `json:"icon,omitempty"`
	Device      DiscoveryDevice `json:"device"`
}
