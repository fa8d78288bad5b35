// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stream

import (
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/gogpu/keyframes"
)

// DefaultTopic is the topic frames are published to when none is set.
const DefaultTopic = "keyframes/stream"

// ErrPublishTimeout is returned when the broker does not acknowledge a
// frame in time.
var ErrPublishTimeout = errors.New("stream: publish timed out")

// Client is the subset of mqtt.Client the publisher needs.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

var _ Client = mqtt.Client(nil)

// Publisher sends evaluated frames to an MQTT topic.
// The Publisher is not safe for concurrent use.
type Publisher struct {
	client  Client
	topic   string
	qos     byte
	timeout time.Duration

	frame Frame
	buf   []byte
	sent  int
}

// NewPublisher creates a publisher for topic. An empty topic selects
// DefaultTopic.
func NewPublisher(client Client, topic string, qos byte) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		client:  client,
		topic:   topic,
		qos:     qos,
		timeout: 5 * time.Second,
	}
}

// SetTimeout sets how long Publish waits for the broker. Zero waits
// forever.
func (p *Publisher) SetTimeout(d time.Duration) {
	p.timeout = d
}

// Topic returns the topic frames are published to.
func (p *Publisher) Topic() string {
	return p.topic
}

// Sent returns the number of frames published successfully.
func (p *Publisher) Sent() int {
	return p.sent
}

// Publish snapshots the evaluator's current frame and publishes it.
func (p *Publisher) Publish(ev *keyframes.Evaluator) error {
	p.frame.Snapshot(ev)
	var err error
	p.buf, err = p.frame.AppendBinary(p.buf[:0])
	if err != nil {
		return err
	}

	// The payload is handed to the client, which may hold it until sent.
	payload := append([]byte(nil), p.buf...)
	token := p.client.Publish(p.topic, p.qos, false, payload)
	if p.timeout > 0 {
		if !token.WaitTimeout(p.timeout) {
			return fmt.Errorf("%w after %v (topic %s)", ErrPublishTimeout, p.timeout, p.topic)
		}
	} else {
		token.Wait()
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("stream: publish to %s: %w", p.topic, err)
	}
	p.sent++
	keyframes.Logger().Debug("frame published", "topic", p.topic, "bytes", len(payload), "progress", p.frame.Progress)
	return nil
}
