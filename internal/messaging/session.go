package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pixil98/go-workbench/internal/display"
	"github.com/pixil98/go-workbench/internal/slot"
	"github.com/pixil98/go-workbench/internal/transfer"
	"github.com/pixil98/go-workbench/internal/workbench"
)

const (
	SubjectPrefix = "workbench"

	DefaultQueueSize = 64
)

// Session bridges one workbench to the message bus. Requests are queued by
// the subscription and handled one at a time on the goroutine running Start,
// which is the only goroutine that touches the workbench.
type Session struct {
	id        string
	bench     *workbench.Workbench
	broker    Broker
	publisher *JSONPublisher
	tooltip   *display.Tooltip
	wrapWidth int

	queue chan []byte
}

func NewSession(bench *workbench.Workbench, broker Broker, tooltip *display.Tooltip, opts ...SessionOpt) *Session {
	s := &Session{
		id:        uuid.New().String(),
		bench:     bench,
		broker:    broker,
		publisher: NewJSONPublisher(broker),
		tooltip:   tooltip,
		wrapWidth: display.DefaultWidth,
		queue:     make(chan []byte, DefaultQueueSize),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Session) ID() string {
	return s.id
}

// Subject returns the session's subject for kind, such as "events".
func (s *Session) Subject(kind string) string {
	return fmt.Sprintf("%s.%s.%s", SubjectPrefix, s.id, kind)
}

func (s *Session) Start(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case <-s.broker.Ready():
	}

	unsubscribe, err := s.broker.Subscribe(s.Subject("events"), s.enqueue)
	if err != nil {
		return fmt.Errorf("subscribing to session events: %w", err)
	}
	defer unsubscribe()

	stopChanges := s.bench.Subscribe(func(c slot.Change) {
		s.publishRegion(c.Region)
	})
	defer stopChanges()

	for _, r := range s.bench.Regions() {
		s.publishRegion(r)
	}

	slog.InfoContext(ctx, "workbench session started", "session", s.id, "events", s.Subject("events"))

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "workbench session stopped", "session", s.id)
			return nil
		case data := <-s.queue:
			s.Handle(ctx, data)
		}
	}
}

func (s *Session) enqueue(data []byte) {
	select {
	case s.queue <- data:
	default:
		slog.Warn("session queue full, dropping request", "session", s.id)
	}
}

// Handle decodes and applies a single request and publishes the reply.
func (s *Session) Handle(ctx context.Context, data []byte) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		slog.WarnContext(ctx, "decoding session request", "session", s.id, "error", err)
		s.reply(Reply{Error: fmt.Sprintf("decoding request: %v", err)})
		return
	}
	if req.Action == "" {
		req.Action = ActionPointer
	}

	reply := Reply{Action: req.Action}
	if err := s.apply(req, &reply); err != nil {
		if transfer.IsRejection(err) {
			reply.Rejected = display.Capitalize(rejectionReason(err))
		} else {
			slog.ErrorContext(ctx, "handling session request", "session", s.id, "action", req.Action, "error", err)
			reply.Error = err.Error()
		}
	}

	if held, ok := s.bench.Held(); ok {
		reply.Held = &held
	}
	s.reply(reply)
}

func (s *Session) apply(req Request, reply *Reply) error {
	switch req.Action {
	case ActionPointer:
		outcome, err := s.bench.PointerDown(req.event())
		reply.Outcome = outcome
		return err
	case ActionGive:
		return s.bench.Give(req.Item, req.Full)
	case ActionReset:
		return s.bench.ResetCrafting()
	case ActionDescribe:
		text, err := s.describe(req.Region, req.Index)
		reply.Text = text
		return err
	case ActionSearch:
		text, err := s.search(req.Query)
		reply.Text = text
		return err
	case ActionRecipes:
		text, err := s.recipes()
		reply.Text = text
		return err
	default:
		return fmt.Errorf("unknown action %q", req.Action)
	}
}

func (s *Session) describe(r slot.Region, index int) (string, error) {
	def, st, err := s.bench.SlotItem(r, index)
	if err != nil {
		return "", err
	}
	if def == nil {
		return "", nil
	}
	return s.tooltip.Render(*def, st)
}

func (s *Session) search(query string) (string, error) {
	var lines []string
	for _, def := range s.bench.SearchItems(query) {
		text, err := s.tooltip.Render(def, nil)
		if err != nil {
			return "", err
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n"), nil
}

func (s *Session) recipes() (string, error) {
	var blocks []string
	for _, p := range s.bench.Recipes() {
		name := p.Key
		if def, err := s.bench.Catalog().Lookup(p.Result.ItemID); err == nil {
			tip, err := s.tooltip.Render(*def, nil)
			if err != nil {
				return "", err
			}
			name = tip
		}

		cells := make([]string, len(p.Cells))
		for i, c := range p.Cells {
			cells[i] = c.String()
		}
		header := display.WrapWidth(fmt.Sprintf("%s x%d", name, p.Result.Count), s.wrapWidth)
		blocks = append(blocks, header+"\n"+display.Grid(cells, workbench.InputWidth))
	}
	return strings.Join(blocks, "\n\n"), nil
}

func (s *Session) publishRegion(r slot.Region) {
	slots, err := s.bench.Snapshot(r)
	if err != nil {
		slog.Error("snapshotting region", "session", s.id, "region", r, "error", err)
		return
	}
	if err := s.publisher.Publish(s.Subject("changes"), RegionSnapshot{Region: r, Slots: slots}); err != nil {
		slog.Error("publishing region", "session", s.id, "region", r, "error", err)
	}
}

func (s *Session) reply(r Reply) {
	if err := s.publisher.Publish(s.Subject("replies"), r); err != nil {
		slog.Error("publishing reply", "session", s.id, "error", err)
	}
}

func rejectionReason(err error) string {
	var r *transfer.Rejection
	if errors.As(err, &r) {
		return r.Reason
	}
	return err.Error()
}
