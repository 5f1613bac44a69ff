package messaging

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func TestNewBus(t *testing.T) {
	tests := map[string]struct {
		opts   []BusOpt
		expErr string
	}{
		"defaults": {},
		"random port": {
			opts: []BusOpt{WithListenAddr("", -1)},
		},
		"port out of range": {
			opts:   []BusOpt{WithListenAddr("127.0.0.1", 70000)},
			expErr: "port 70000 out of range",
		},
		"empty name": {
			opts:   []BusOpt{WithBusName("")},
			expErr: "name is required",
		},
		"zero start timeout": {
			opts:   []BusOpt{WithStartTimeout(0)},
			expErr: "start timeout must be positive",
		},
		"negative payload": {
			opts:   []BusOpt{WithMaxPayload(-1)},
			expErr: "max payload must be positive",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewBus(tt.opts...)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestBus_NotStarted(t *testing.T) {
	b, err := NewBus(WithListenAddr("", -1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertErrorContains(t, b.Publish("workbench.x.events", nil), "bus not started")
	_, err = b.Subscribe("workbench.x.events", func([]byte) {})
	testutil.AssertErrorContains(t, err, "bus not started")
}

func TestBus_PublishSubscribe(t *testing.T) {
	b, err := NewBus(WithListenAddr("", -1), WithMaxPayload(64))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Start(ctx) }()

	select {
	case <-b.Ready():
	case err := <-done:
		t.Fatalf("bus stopped early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("bus never became ready")
	}

	got := make(chan string, 1)
	unsubscribe, err := b.Subscribe("workbench.local.events", func(data []byte) {
		got <- string(data)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := b.Publish("workbench.local.events", []byte(`{"type":"reset"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case data := <-got:
		testutil.AssertEqual(t, "payload", data, `{"type":"reset"}`)
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}
	unsubscribe()

	err = b.Publish("workbench.local.events", []byte(strings.Repeat("x", 65)))
	testutil.AssertErrorContains(t, err, "exceeds max payload 64")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("bus did not shut down")
	}
}
