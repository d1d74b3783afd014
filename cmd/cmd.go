package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/anicoll/econet-integration/internal/pkg/bridge"
	"github.com/anicoll/econet-integration/internal/pkg/config"
	"github.com/anicoll/econet-integration/internal/pkg/econet"
	"github.com/anicoll/econet-integration/internal/pkg/mqtt"
)

const mqttClientID = "econet-bridge"

func BridgeCommand(ctx *cli.Context) error {
	return run(ctx.Context, buildConfig(ctx))
}

func buildConfig(ctx *cli.Context) *config.Config {
	return &config.Config{
		EconetCfg: &config.EconetConfig{
			Username: ctx.String("econet-username"),
			Password: ctx.String("econet-password"),
			ApiBase:  ctx.String("api-base"),
		},
		MqttCfg: &config.MqttConfig{
			Host:     ctx.String("mqtt-host"),
			Port:     ctx.Int("mqtt-port"),
			Username: ctx.String("mqtt-user"),
			Password: ctx.String("mqtt-pass"),
			ClientID: mqttClientID,
		},
		BridgeCfg: &config.BridgeConfig{
			PollInterval:    time.Duration(ctx.Int("poll-interval")) * time.Second,
			DeviceName:      ctx.String("device-name"),
			TopicPrefix:     ctx.String("topic-prefix"),
			DiscoveryPrefix: ctx.String("discovery-prefix"),
		},
		LogLevel: ctx.String("log-level"),
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	var err error
	logCfg := zap.NewProductionConfig()

	logCfg.Level, err = zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logCfg.OutputPaths = []string{"stdout"}
	logCfg.ErrorOutputPaths = []string{"stdout"}
	logCfg.Sampling = nil
	logger := zap.Must(logCfg.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)))
	defer func() {
		_ = logger.Sync() // flushes buffer, if any.
	}()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	econetSvc, err := econet.New(cfg.EconetCfg)
	if err != nil {
		return err
	}
	// an invalid credential set is fatal at startup; later expiries are
	// recovered inside the poll loop
	if err := econetSvc.Login(ctx); err != nil {
		logger.Error("initial login failed", zap.Error(err))
		return err
	}

	mqttSvc := mqtt.New(cfg.MqttCfg)
	if err := mqttSvc.Connect(); err != nil {
		logger.Error("mqtt connect failed", zap.Error(err))
		return err
	}
	defer mqttSvc.Disconnect()

	bridgeSvc := bridge.New(cfg.BridgeCfg, econetSvc, mqttSvc)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return bridgeSvc.Run(ctx)
	})
	return eg.Wait()
}
