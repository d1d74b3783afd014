package mqtt

import "go.uber.org/zap"

// PublishRetained queues a retained message and returns without waiting for
// broker acknowledgement, so the poll loop never blocks on the network.
// Delivery failures are logged once the token completes; retained topics make
// the next cycle's publish a safe retry.
func (s *service) PublishRetained(topic string, payload []byte) error {
	token := s.client.Publish(topic, 0, true, payload)
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			s.logger.Warn("publish failed", zap.String("topic", topic), zap.Error(err))
		}
	}()
	return nil
}
