package messaging

type SessionOpt func(*Session)

// WithSessionID replaces the generated session id.
func WithSessionID(id string) SessionOpt {
	return func(s *Session) {
		s.id = id
	}
}

// WithQueueSize sets how many requests may wait before new ones are dropped.
func WithQueueSize(n int) SessionOpt {
	return func(s *Session) {
		s.queue = make(chan []byte, n)
	}
}

// WithWrapWidth sets the width text replies are wrapped to.
func WithWrapWidth(width int) SessionOpt {
	return func(s *Session) {
		s.wrapWidth = width
	}
}
