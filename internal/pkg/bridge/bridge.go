package bridge

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/anicoll/econet-integration/internal/pkg/catalog"
	"github.com/anicoll/econet-integration/internal/pkg/config"
	"github.com/anicoll/econet-integration/internal/pkg/econet"
	"github.com/anicoll/econet-integration/internal/pkg/model"
)

type sessionClient interface {
	Login(ctx context.Context) error
	Devices() []string
	DeviceParams(ctx context.Context, uid string) (*econet.DeviceParams, error)
	EditableParams(ctx context.Context, uid string) (*econet.EditableParams, error)
}

type publisher interface {
	PublishRetained(topic string, payload []byte) error
}

// service owns the poll loop and all session-wide mutable state: the
// discovery dedup set and the per-UID device cache. Both are touched only by
// the poll goroutine.
type service struct {
	cfg        *config.BridgeConfig
	client     sessionClient
	publisher  publisher
	logger     *zap.Logger
	discovered map[string]struct{}
	devices    map[string]*model.Device
}

func New(cfg *config.BridgeConfig, client sessionClient, publisher publisher) *service {
	return &service{
		cfg:        cfg,
		client:     client,
		publisher:  publisher,
		logger:     zap.L(),
		discovered: make(map[string]struct{}),
		devices:    make(map[string]*model.Device),
	}
}

// Run drives the poll loop until ctx is cancelled. A failing cycle is logged
// and swallowed; nothing short of cancellation stops the loop.
func (s *service) Run(ctx context.Context) error {
	interval := s.cfg.PollInterval
	if interval < time.Second {
		interval = time.Second
	}
	s.logger.Info("starting poll loop", zap.Duration("interval", interval))

	for cycle := 1; ; cycle++ {
		s.logger.Debug("poll cycle", zap.Int("cycle", cycle))
		s.pollOnce(ctx)

		if err := s.sleep(ctx, interval); err != nil {
			s.logger.Info("poll loop stopped")
			return nil
		}
	}
}

// sleep waits out the interval in one-second steps so shutdown latency stays
// bounded by a second regardless of the configured interval.
func (s *service) sleep(ctx context.Context, interval time.Duration) error {
	deadline := time.Now().Add(interval)
	for remaining := interval; remaining > 0; remaining = time.Until(deadline) {
		step := time.Second
		if remaining < step {
			step = remaining
		}
		timer := time.NewTimer(step)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}

func (s *service) pollOnce(ctx context.Context) {
	for _, uid := range s.client.Devices() {
		err := s.pollDevice(ctx, uid)
		if err == nil {
			continue
		}
		if errors.Is(err, econet.ErrSessionExpired) {
			s.logger.Warn("session expired, re-logging in", zap.String("uid", uid), zap.Error(err))
			if lerr := s.client.Login(ctx); lerr != nil {
				s.logger.Error("re-login failed, will retry next cycle", zap.Error(lerr))
			}
			// the device's remaining work waits for the next cycle
			continue
		}
		s.logger.Error("poll failed for device", zap.String("uid", uid), zap.Error(err))
	}
}

func (s *service) pollDevice(ctx context.Context, uid string) error {
	params, err := s.client.DeviceParams(ctx, uid)
	if err != nil {
		return err
	}
	device := s.device(uid)

	// wifi fields live on the document itself, outside curr
	for _, key := range catalog.WifiKeys {
		if v := params.WifiParam(key); v != nil {
			s.publishReading(device, model.Reading{Key: key, Value: v})
		}
	}

	readings := validReadings(params.Curr)
	for _, reading := range readings {
		s.publishReading(device, reading)
	}
	s.logger.Info("published sensor values", zap.String("device", device.Slug), zap.Int("count", len(readings)))
	s.logKeyReadings(params.Curr)

	s.publishDeltaT(device, params.Curr)

	// the secondary payload is fault-isolated: only a session error may
	// escape, everything else leaves steps 1-4 intact
	if err := s.publishEditable(ctx, device); err != nil {
		if errors.Is(err, econet.ErrSessionExpired) {
			return err
		}
		s.logger.Debug("could not fetch editable params", zap.Error(err))
	}
	return nil
}

// validReadings drops nulls and the 999.0 not-connected sentinel and returns
// the rest in deterministic key order.
func validReadings(curr map[string]any) []model.Reading {
	keys := lo.Keys(curr)
	sort.Strings(keys)

	readings := make([]model.Reading, 0, len(keys))
	for _, key := range keys {
		value := curr[key]
		if value == nil {
			continue
		}
		if f, ok := value.(float64); ok && f == catalog.SentinelNotConnected {
			continue
		}
		readings = append(readings, model.Reading{Key: key, Value: value})
	}
	return readings
}

// publishReading announces the sensor on first sight, then publishes the
// value. The discovery document always precedes the first value on a key.
func (s *service) publishReading(device *model.Device, reading model.Reading) {
	if err := s.ensureDiscovered(device, reading.Key); err != nil {
		s.logger.Error("discovery publish failed, holding back value", zap.String("key", reading.Key), zap.Error(err))
		return
	}
	topic := fmt.Sprintf("%s/%s/%s", s.cfg.TopicPrefix, device.UID, reading.Key)
	if err := s.publisher.PublishRetained(topic, []byte(formatValue(reading.Value))); err != nil {
		s.logger.Error("value publish failed", zap.String("topic", topic), zap.Error(err))
	}
}

func (s *service) publishDeltaT(device *model.Device, curr map[string]any) {
	flow, okFlow := numeric(curr[catalog.KeyFlowTemp])
	ret, okReturn := numeric(curr[catalog.KeyReturnTemp])
	if !okFlow || !okReturn {
		return
	}
	// one decimal place, half away from zero
	delta := math.Round((flow-ret)*10) / 10
	s.publishReading(device, model.Reading{Key: catalog.KeyDeltaT, Value: delta})
	s.logger.Debug("calculated delta t", zap.Float64("flow", flow), zap.Float64("return", ret), zap.Float64("delta", delta))
}

func (s *service) publishEditable(ctx context.Context, device *model.Device) error {
	editable, err := s.client.EditableParams(ctx, device.UID)
	if err != nil {
		return err
	}

	setpoints := 0
	for _, id := range sortedKeys(editable.Data) {
		param := editable.Data[id]
		if !catalog.IsEditableWanted(param.Name) || param.Value == nil {
			continue
		}
		s.publishReading(device, model.Reading{Key: param.Name, Value: param.Value})
		setpoints++
	}
	if setpoints > 0 {
		s.logger.Info("published setpoint values", zap.Int("count", setpoints))
	}

	infos := 0
	for _, id := range sortedKeys(editable.InformationParams) {
		result := catalog.DecodeInformationParam(id, editable.InformationParams[id])
		if result.Skipped {
			s.logger.Debug("skipped information param", zap.String("id", id), zap.String("reason", result.Reason))
			continue
		}
		s.publishReading(device, model.Reading{Key: result.Key, Value: result.Value})
		infos++
	}
	if infos > 0 {
		s.logger.Info("published information params", zap.Int("count", infos))
	}
	return nil
}

// keySensors are surfaced at INFO each cycle for quick diagnostics.
var keySensors = []string{catalog.KeyFlowTemp, catalog.KeyReturnTemp, "TempCWU", "GrantCompressorFreq"}

func (s *service) logKeyReadings(curr map[string]any) {
	fields := make([]zap.Field, 0, len(keySensors))
	for _, key := range keySensors {
		if f, ok := numeric(curr[key]); ok {
			fields = append(fields, zap.Float64(key, f))
		}
	}
	if len(fields) > 0 {
		s.logger.Info("key readings", fields...)
	}
}

func numeric(v any) (float64, bool) {
	f, ok := v.(float64)
	if !ok || f == catalog.SentinelNotConnected {
		return 0, false
	}
	return f, true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}

// formatValue renders a payload the consumer parses as a bare scalar.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
