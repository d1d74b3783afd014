package cmd

import "github.com/urfave/cli/v2"

// Flags declares the bridge's command line surface. Every flag has an
// environment variable alias for container deployments.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "econet-username",
			EnvVars:  []string{"ECONET24_USERNAME"},
			Required: true,
		},
		&cli.StringFlag{
			Name:     "econet-password",
			EnvVars:  []string{"ECONET24_PASSWORD"},
			Required: true,
		},
		&cli.StringFlag{
			Name:    "api-base",
			EnvVars: []string{"ECONET24_API_BASE"},
			Value:   "https://www.econet24.com",
		},
		&cli.StringFlag{
			Name:    "mqtt-host",
			EnvVars: []string{"MQTT_HOST"},
			Value:   "localhost",
		},
		&cli.IntFlag{
			Name:    "mqtt-port",
			EnvVars: []string{"MQTT_PORT"},
			Value:   1883,
		},
		&cli.StringFlag{
			Name:    "mqtt-user",
			EnvVars: []string{"MQTT_USERNAME"},
			Value:   "",
		},
		&cli.StringFlag{
			Name:    "mqtt-pass",
			EnvVars: []string{"MQTT_PASSWORD"},
			Value:   "",
		},
		&cli.IntFlag{
			Name:    "poll-interval",
			EnvVars: []string{"POLL_INTERVAL"},
			Value:   60,
			Usage:   "seconds between poll cycles, minimum 1",
		},
		&cli.StringFlag{
			Name:    "device-name",
			EnvVars: []string{"DEVICE_NAME"},
			Value:   "",
			Usage:   "optional friendly device name used for entity ids",
		},
		&cli.StringFlag{
			Name:    "topic-prefix",
			EnvVars: []string{"TOPIC_PREFIX"},
			Value:   "econet24",
		},
		&cli.StringFlag{
			Name:    "discovery-prefix",
			EnvVars: []string{"DISCOVERY_PREFIX"},
			Value:   "homeassistant",
		},
		&cli.StringFlag{
			Name:    "log-level",
			EnvVars: []string{"LOG_LEVEL"},
			Value:   "INFO",
		},
	}
}
