package messaging

import "time"

type BusOpt func(*Bus)

// WithBusName names the bus server and its session connection.
func WithBusName(name string) BusOpt {
	return func(b *Bus) {
		b.name = name
	}
}

// WithListenAddr sets where external clients connect. Port 0 keeps the
// NATS default and -1 picks a free port.
func WithListenAddr(host string, port int) BusOpt {
	return func(b *Bus) {
		if host != "" {
			b.host = host
		}
		b.port = port
	}
}

func WithStartTimeout(d time.Duration) BusOpt {
	return func(b *Bus) {
		b.startTimeout = d
	}
}

// WithMaxPayload caps the size of a single session message in bytes.
func WithMaxPayload(n int32) BusOpt {
	return func(b *Bus) {
		b.maxPayload = n
	}
}
