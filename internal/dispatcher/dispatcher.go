package dispatcher

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/angeloszaimis/handler-chain/internal/chain"
	"github.com/angeloszaimis/handler-chain/internal/metrics"
)

type Dispatcher[Req, Res any] struct {
	logger  *slog.Logger
	head    chain.Handler[Req, Res]
	metrics *metrics.Metrics
}

// Outcome is the record of one dispatch. Result is the zero value when
// Handled is false.
type Outcome[Req, Res any] struct {
	ID       string        `json:"id"`
	Request  Req           `json:"request"`
	Result   Res           `json:"result,omitempty"`
	Handled  bool          `json:"handled"`
	Duration time.Duration `json:"duration"`
}

func (d *Dispatcher[Req, Res]) Dispatch(req Req) Outcome[Req, Res] {
	id := uuid.NewString()
	label := fmt.Sprint(req)

	start := time.Now()
	result, ok := d.head.Handle(req)
	duration := time.Since(start)

	if ok {
		d.logger.Debug("Request handled",
			slog.String("dispatch_id", id),
			slog.String("request", label),
			slog.Duration("duration", duration))
	} else {
		d.logger.Info("Request left untouched",
			slog.String("dispatch_id", id),
			slog.String("request", label),
			slog.Int("handlers", chain.Len(d.head)))
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(label, ok, duration)
	}

	return Outcome[Req, Res]{
		ID:       id,
		Request:  req,
		Result:   result,
		Handled:  ok,
		Duration: duration,
	}
}

// DispatchAll dispatches reqs one after another, in order.
func (d *Dispatcher[Req, Res]) DispatchAll(reqs []Req) []Outcome[Req, Res] {
	outcomes := make([]Outcome[Req, Res], 0, len(reqs))
	for _, req := range reqs {
		outcomes = append(outcomes, d.Dispatch(req))
	}
	return outcomes
}

// Handlers names the chain's handlers in dispatch order.
func (d *Dispatcher[Req, Res]) Handlers() []string {
	var names []string

	chain.Walk(d.head, func(h chain.Handler[Req, Res]) bool {
		names = append(names, handlerName(h))
		return true
	})

	return names
}

// Describe renders the chain as "A -> B -> C".
func (d *Dispatcher[Req, Res]) Describe() string {
	return strings.Join(d.Handlers(), " -> ")
}

func (d *Dispatcher[Req, Res]) Snapshot() (metrics.Snapshot, bool) {
	if d.metrics == nil {
		return metrics.Snapshot{}, false
	}
	return d.metrics.Snapshot(d.Describe()), true
}

func handlerName(h any) string {
	if n, ok := h.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", h)
}

// New freezes the chain starting at head. The metrics store may be nil; a nil
// logger falls back to slog.Default().
func New[Req, Res any](logger *slog.Logger, head chain.Handler[Req, Res], m *metrics.Metrics) (*Dispatcher[Req, Res], error) {
	if head == nil {
		return nil, chain.ErrNilHandler
	}

	if logger == nil {
		logger = slog.Default()
	}

	chain.Freeze(head)

	d := &Dispatcher[Req, Res]{
		logger:  logger,
		head:    head,
		metrics: m,
	}

	logger.Debug("Chain frozen", slog.String("chain", d.Describe()))

	return d, nil
}
