package mqtt

import (
	"errors"
	"fmt"
	"time"

	paho_mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/anicoll/econet-integration/internal/pkg/config"
)

const (
	connectTimeout = 10 * time.Second
	// quiesce window for in-flight messages on shutdown, in milliseconds
	disconnectQuiesce = 1000
)

type service struct {
	client paho_mqtt.Client
	logger *zap.Logger
}

// New builds a client for the configured broker. Lifecycle events are
// informational only; paho handles reconnection itself.
func New(cfg *config.MqttConfig) *service {
	s := &service{logger: zap.L()}

	opts := paho_mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.Host, cfg.Port)).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetOrderMatters(true)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetOnConnectHandler(func(_ paho_mqtt.Client) {
		s.logger.Info("connected to mqtt broker", zap.String("host", cfg.Host), zap.Int("port", cfg.Port))
	})
	opts.SetConnectionLostHandler(func(_ paho_mqtt.Client, err error) {
		s.logger.Warn("mqtt connection lost, awaiting auto-reconnect", zap.Error(err))
	})

	s.client = paho_mqtt.NewClient(opts)
	return s
}

// NewWithClient wires a prebuilt paho client, used by tests.
func NewWithClient(client paho_mqtt.Client) *service {
	return &service{client: client, logger: zap.L()}
}

func (s *service) Connect() error {
	token := s.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return errors.New("unable to connect in time")
	}
	return token.Error()
}

// Disconnect flushes in-flight messages within the quiesce window and closes
// the connection.
func (s *service) Disconnect() {
	s.client.Disconnect(disconnectQuiesce)
	s.logger.Info("disconnected from mqtt broker")
}
