package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/anicoll/econet-integration/cmd"
)

func main() {
	app := &cli.App{
		Name:   "econet-bridge",
		Usage:  "publishes econet24 HVAC telemetry to MQTT with Home Assistant discovery",
		Action: cmd.BridgeCommand,
		Flags:  cmd.Flags(),
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
