package model

// Device is one physical HVAC unit registered to the cloud account,
// addressed by the opaque UID the API returns.
type Device struct {
	UID  string
	Slug string
	Name string
}

// Reading is a single sensor observation from one poll cycle. Value holds
// what the API returned for the key: float64, string or nil.
type Reading struct {
	Key   string
	Value any
}
