package bridge

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/anicoll/econet-integration/internal/pkg/catalog"
	"github.com/anicoll/econet-integration/internal/pkg/config"
	"github.com/anicoll/econet-integration/internal/pkg/model"
	"github.com/anicoll/econet-integration/pkg/slugify"
)

const (
	manufacturer = "Plum"
	deviceModel  = "ecoMAX360i"
	bridgeID     = "econet24_bridge"
)

// ensureDiscovered publishes the discovery document for a (device, key) pair
// the first time it is seen. The dedup set only ever grows; a duplicate
// discovery after restart is harmless because the topic is retained.
func (s *service) ensureDiscovered(device *model.Device, key string) error {
	dedupKey := device.UID + "/" + key
	if _, exists := s.discovered[dedupKey]; exists {
		return nil
	}

	def := catalog.Lookup(key)
	msg := buildDiscovery(s.cfg, device, key, def)
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	topic := fmt.Sprintf("%s/sensor/%s/config", s.cfg.DiscoveryPrefix, msg.UniqueID)
	if err := s.publisher.PublishRetained(topic, payload); err != nil {
		return err
	}
	s.discovered[dedupKey] = struct{}{}
	s.logger.Info("registered new sensor", zap.String("sensor", def.Name), zap.String("unique_id", msg.UniqueID))
	return nil
}

// buildDiscovery derives the discovery document. The unique id depends only
// on the device slug and the sensor display name, so rebuilding it for the
// same inputs is byte-identical across restarts.
func buildDiscovery(cfg *config.BridgeConfig, device *model.Device, key string, def catalog.SensorDefinition) model.DiscoveryMessage {
	uniqueID := fmt.Sprintf("econet24_%s_%s", device.Slug, slugify.Make(def.Name))
	return model.DiscoveryMessage{
		Name:        def.Name,
		UniqueID:    uniqueID,
		ObjectID:    uniqueID,
		StateTopic:  fmt.Sprintf("%s/%s/%s", cfg.TopicPrefix, device.UID, key),
		DeviceClass: def.DeviceClass.String(),
		Unit:        def.Unit,
		Icon:        def.Icon,
		Device: model.DiscoveryDevice{
			Identifiers:  []string{"econet24_" + device.UID},
			Name:         device.Name,
			Manufacturer: manufacturer,
			Model:        deviceModel,
			ViaDevice:    bridgeID,
		},
	}
}

// device memoises the slug and display name for a UID for the process
// lifetime: the operator-supplied name when configured, otherwise the first
// eight characters of the UID lower-cased.
func (s *service) device(uid string) *model.Device {
	if d, ok := s.devices[uid]; ok {
		return d
	}

	short := uid
	if len(short) > 8 {
		short = short[:8]
	}
	d := &model.Device{UID: uid}
	if s.cfg.DeviceName != "" {
		d.Slug = slugify.Make(s.cfg.DeviceName)
		d.Name = s.cfg.DeviceName
	} else {
		d.Slug = strings.ToLower(short)
		d.Name = "Econet24 " + short
	}

	s.devices[uid] = d
	return d
}
