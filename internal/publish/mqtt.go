// Package publish sends a vehicle's statistics to an MQTT broker, one
// retained JSON summary plus one retained topic per primary statistic, so
// home automation dashboards can pick them up.
package publish

import (
	"errors"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/xolan/fuel/internal/config"
	"github.com/xolan/fuel/internal/logging"
)

// ErrDisabled is returned when publishing isn't enabled in the config.
var ErrDisabled = errors.New("mqtt publishing is not enabled in config")

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 10 * time.Second
	qos            = 1
)

// Sender delivers messages to a broker.
type Sender interface {
	Send(msgs []Message) error
	Close()
}

// MQTTSender publishes over a paho client.
type MQTTSender struct {
	client mqtt.Client
	log    logging.Logger
}

// brokerURL adds the tcp scheme when the address has none.
func brokerURL(broker string) string {
	if strings.Contains(broker, "://") {
		return broker
	}
	return "tcp://" + broker
}

// Connect opens a connection to the configured broker.
func Connect(cfg config.MQTTConfig, log logging.Logger) (*MQTTSender, error) {
	if log == nil {
		log = logging.Nop{}
	}
	if !cfg.Enabled {
		return nil, ErrDisabled
	}
	if cfg.Broker == "" {
		return nil, fmt.Errorf("MQTT broker address is required when enabled")
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL(cfg.Broker))
	opts.SetClientID(cfg.ClientID)
	opts.SetAutoReconnect(false)
	opts.SetConnectTimeout(connectTimeout)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("connecting to MQTT broker %s: timed out", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connecting to MQTT broker: %w", err)
	}
	log.Debugf("connected to %s", cfg.Broker)
	return &MQTTSender{client: client, log: log}, nil
}

// Send publishes msgs in order and stops at the first failure.
func (s *MQTTSender) Send(msgs []Message) error {
	for _, m := range msgs {
		token := s.client.Publish(m.Topic, qos, m.Retained, m.Payload)
		if !token.WaitTimeout(publishTimeout) {
			return fmt.Errorf("publishing to %s: timed out", m.Topic)
		}
		if err := token.Error(); err != nil {
			return fmt.Errorf("publishing to %s: %w", m.Topic, err)
		}
		s.log.Debugf("published %d bytes to %s", len(m.Payload), m.Topic)
	}
	return nil
}

// Close disconnects from the MQTT broker
func (s *MQTTSender) Close() {
	if s.client != nil && s.client.IsConnected() {
		s.client.Disconnect(250)
	}
}
