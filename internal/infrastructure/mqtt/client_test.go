package mqtt

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"system status", Topics{}.SystemStatus(), "punchline/system/status"},
		{"joke created", Topics{}.JokeCreated(), "punchline/events/joke/created"},
		{"joke updated", Topics{}.JokeUpdated(), "punchline/events/joke/updated"},
		{"joke deleted", Topics{}.JokeDeleted(), "punchline/events/joke/deleted"},
		{"arbitrary kind", Topics{}.JokeEvent("archived"), "punchline/events/joke/archived"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("topic = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestClient_Publish_Validation(t *testing.T) {
	c := &Client{}

	t.Run("rejects empty topic", func(t *testing.T) {
		err := c.Publish("", []byte("{}"), 1, false)
		if !errors.Is(err, ErrInvalidTopic) {
			t.Errorf("Publish() error = %v, want ErrInvalidTopic", err)
		}
	})

	t.Run("rejects invalid QoS", func(t *testing.T) {
		err := c.Publish("punchline/events/joke/created", []byte("{}"), 3, false)
		if !errors.Is(err, ErrInvalidQoS) {
			t.Errorf("Publish() error = %v, want ErrInvalidQoS", err)
		}
	})

	t.Run("rejects oversized payload", func(t *testing.T) {
		payload := []byte(strings.Repeat("x", maxPayloadSize+1))
		err := c.Publish("punchline/events/joke/created", payload, 1, false)
		if !errors.Is(err, ErrPublishFailed) {
			t.Errorf("Publish() error = %v, want ErrPublishFailed", err)
		}
	})

	t.Run("fails fast when not connected", func(t *testing.T) {
		err := c.Publish("punchline/events/joke/created", []byte("{}"), 1, false)
		if !errors.Is(err, ErrNotConnected) {
			t.Errorf("Publish() error = %v, want ErrNotConnected", err)
		}
	})
}

func TestClient_Close_NilClient(t *testing.T) {
	c := &Client{}
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestClient_HealthCheck(t *testing.T) {
	c := &Client{}

	t.Run("reports not connected", func(t *testing.T) {
		err := c.HealthCheck(context.Background())
		if !errors.Is(err, ErrNotConnected) {
			t.Errorf("HealthCheck() error = %v, want ErrNotConnected", err)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := c.HealthCheck(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("HealthCheck() error = %v, want context.Canceled", err)
		}
	})
}
