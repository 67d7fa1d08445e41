package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alarmbridge/jablonet-adapter/pkg/model"
)

// mockJetStream records published messages. The embedded interface covers
// the methods the tests never touch.
type mockJetStream struct {
	nats.JetStreamContext
	published []*nats.Msg
	fail      bool
}

func (m *mockJetStream) PublishMsg(msg *nats.Msg, opts ...nats.PubOpt) (*nats.PubAck, error) {
	if m.fail {
		return nil, errors.New("mock publish error")
	}
	m.published = append(m.published, msg)
	return &nats.PubAck{Stream: "mock-stream"}, nil
}

func newTestPublisher(fail bool) (*Publisher, *mockJetStream) {
	js := &mockJetStream{fail: fail}
	return &Publisher{
		js:      js,
		subject: "evt.alarm.state.v1.JABLONET",
		service: "JABLONET_EVENTS",
	}, js
}

func TestPublishControlResult(t *testing.T) {
	pub, js := newTestPublisher(false)

	err := pub.PublishControlResult(context.Background(), model.ControlResult{
		ServiceID:   1234567,
		ComponentID: "SEC-1",
		Kind:        "section",
		Desired:     "ARM",
		Reached:     true,
		Timestamp:   time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Len(t, js.published, 1)

	msg := js.published[0]
	assert.Equal(t, "evt.alarm.state.v1.JABLONET", msg.Subject)
	assert.Equal(t, "alarm.control.result", msg.Header.Get("event_type"))
	assert.Equal(t, "JABLONET_EVENTS", msg.Header.Get("service"))

	var env model.Envelope
	require.NoError(t, json.Unmarshal(msg.Data, &env))
	assert.Equal(t, 1234567, env.ServiceID)
	assert.Equal(t, "1.0.0", env.Version)

	var res model.ControlResult
	require.NoError(t, json.Unmarshal(env.Payload, &res))
	assert.Equal(t, "SEC-1", res.ComponentID)
	assert.True(t, res.Reached)
}

func TestPublishEnvelopeFailure(t *testing.T) {
	pub, _ := newTestPublisher(true)

	err := pub.PublishControlResult(context.Background(), model.ControlResult{
		ServiceID:   1234567,
		ComponentID: "PG-1",
		Kind:        "gate",
	})
	assert.Error(t, err)
}

func TestPublishRawPayload(t *testing.T) {
	pub, js := newTestPublisher(false)

	err := pub.Publish(context.Background(), "internal.debug", map[string]string{"key": "value"})
	require.NoError(t, err)
	require.Len(t, js.published, 1)
	assert.Equal(t, "internal.debug", js.published[0].Subject)
	assert.Equal(t, "JABLONET_EVENTS", js.published[0].Header.Get("source"))
}
