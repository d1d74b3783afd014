package mqtt

import (
	"testing"
	"time"

	paho_mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
)

type stubToken struct {
	err error
}

func (t *stubToken) Wait() bool                     { return true }
func (t *stubToken) WaitTimeout(time.Duration) bool { return true }
func (t *stubToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *stubToken) Error() error { return t.err }

type publishCall struct {
	topic    string
	qos      byte
	retained bool
	payload  any
}

type stubClient struct {
	paho_mqtt.Client
	published []publishCall
	connected bool
}

func (c *stubClient) Connect() paho_mqtt.Token {
	c.connected = true
	return &stubToken{}
}

func (c *stubClient) Publish(topic string, qos byte, retained bool, payload any) paho_mqtt.Token {
	c.published = append(c.published, publishCall{topic: topic, qos: qos, retained: retained, payload: payload})
	return &stubToken{}
}

func (c *stubClient) Disconnect(quiesce uint) {
	c.connected = false
}

func TestConnect(t *testing.T) {
	client := &stubClient{}
	svc := NewWithClient(client)

	assert.NoError(t, svc.Connect())
	assert.True(t, client.connected)
}

func TestPublishRetained(t *testing.T) {
	client := &stubClient{}
	svc := NewWithClient(client)

	err := svc.PublishRetained("econet24/ABC12345XY/TempCWU", []byte("48.5"))
	assert.NoError(t, err)

	assert.Len(t, client.published, 1)
	call := client.published[0]
	assert.Equal(t, "econet24/ABC12345XY/TempCWU", call.topic)
	assert.True(t, call.retained, "sensor topics must be retained")
	assert.Equal(t, byte(0), call.qos)
	assert.Equal(t, []byte("48.5"), call.payload)
}

func TestDisconnect(t *testing.T) {
	client := &stubClient{connected: true}
	svc := NewWithClient(client)

	svc.Disconnect()
	assert.False(t, client.connected)
}
