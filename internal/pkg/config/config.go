package config

import "time"

type Config struct {
	EconetCfg *EconetConfig
	MqttCfg   *MqttConfig
	BridgeCfg *BridgeConfig
	LogLevel  string
}

type EconetConfig struct {
	Username string
	Password string
	// ApiBase is the econet24 cloud base URL, overridable for tests.
	ApiBase string
}

type MqttConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	ClientID string
}

type BridgeConfig struct {
	PollInterval time.Duration
	// DeviceName overrides the derived device slug/display name when set.
	DeviceName      string
	TopicPrefix     string
	DiscoveryPrefix string
}
