package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/pixil98/go-errors"
)

const (
	DefaultBusName      = "workbench"
	DefaultBusHost      = "127.0.0.1"
	DefaultStartTimeout = 10 * time.Second

	// DefaultMaxPayload fits a full region snapshot with tooltips.
	DefaultMaxPayload = 256 * 1024
)

// Bus is the embedded message bus sessions talk over. Clients reach a
// session on its "workbench.<id>.*" subjects; the bus holds one in-process
// connection that sessions share.
type Bus struct {
	ns    *server.Server
	conn  *nats.Conn
	ready chan struct{}

	name         string
	host         string
	port         int
	startTimeout time.Duration
	maxPayload   int32
}

func NewBus(opts ...BusOpt) (*Bus, error) {
	b := &Bus{
		ready:        make(chan struct{}),
		name:         DefaultBusName,
		host:         DefaultBusHost,
		startTimeout: DefaultStartTimeout,
		maxPayload:   DefaultMaxPayload,
	}

	for _, opt := range opts {
		opt(b)
	}

	if err := b.validate(); err != nil {
		return nil, err
	}

	ns, err := server.NewServer(&server.Options{
		ServerName: b.name,
		Host:       b.host,
		Port:       b.port,
		MaxPayload: b.maxPayload,
		NoSigs:     true, // Let the application handle signals
	})
	if err != nil {
		return nil, fmt.Errorf("creating bus server: %w", err)
	}
	b.ns = ns

	return b, nil
}

func (b *Bus) validate() error {
	el := errors.NewErrorList()

	if b.name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if b.host == "" {
		el.Add(fmt.Errorf("host is required"))
	}
	if b.port < -1 || b.port > 65535 {
		el.Add(fmt.Errorf("port %d out of range", b.port))
	}
	if b.startTimeout <= 0 {
		el.Add(fmt.Errorf("start timeout must be positive"))
	}
	if b.maxPayload <= 0 {
		el.Add(fmt.Errorf("max payload must be positive"))
	}

	return el.Err()
}

func (b *Bus) Start(ctx context.Context) error {
	b.ns.Start()

	if !b.ns.ReadyForConnections(b.startTimeout) {
		b.ns.Shutdown()
		return fmt.Errorf("bus not ready for connections after %s", b.startTimeout)
	}

	conn, err := nats.Connect(b.ns.ClientURL(), nats.Name(b.name+"-sessions"))
	if err != nil {
		b.ns.Shutdown()
		return fmt.Errorf("connecting sessions to bus: %w", err)
	}
	b.conn = conn
	close(b.ready)

	slog.InfoContext(ctx, "session bus listening", "name", b.name, "url", b.ns.ClientURL())

	<-ctx.Done()
	b.conn.Close()
	b.ns.Shutdown()
	b.ns.WaitForShutdown()

	return nil
}

// Ready is closed once sessions can subscribe and publish.
func (b *Bus) Ready() <-chan struct{} {
	return b.ready
}

// Subscribe calls handler with the payload of every message on subject.
// The returned function removes the subscription.
func (b *Bus) Subscribe(subject string, handler func(data []byte)) (func(), error) {
	if b.conn == nil {
		return nil, fmt.Errorf("bus not started")
	}
	sub, err := b.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", subject, err)
	}
	return func() {
		if err := sub.Unsubscribe(); err != nil {
			slog.Warn("unsubscribing", "subject", subject, "error", err)
		}
	}, nil
}

func (b *Bus) Publish(subject string, data []byte) error {
	if b.conn == nil {
		return fmt.Errorf("bus not started")
	}
	if len(data) > int(b.maxPayload) {
		return fmt.Errorf("publishing %s: %d bytes exceeds max payload %d", subject, len(data), b.maxPayload)
	}
	return b.conn.Publish(subject, data)
}
