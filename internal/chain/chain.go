package chain

import (
	"errors"
	"fmt"
)

var (
	ErrNilHandler = errors.New("chain: nil handler")
	ErrCycle      = errors.New("chain: successor would form a cycle")
	ErrFrozen     = errors.New("chain: handler belongs to a frozen chain")
	ErrEmptyChain = errors.New("chain: no handlers to link")
)

// Handler is a node of a chain. Handle reports false when neither this
// handler nor any successor accepts the request.
//
// Implementations must embed Link, which supplies SetNext and Next.
type Handler[Req, Res any] interface {
	Handle(req Req) (Res, bool)
	SetNext(next Handler[Req, Res]) (Handler[Req, Res], error)
	Next() (Handler[Req, Res], bool)

	link() *Link[Req, Res]
}

// Link holds the successor of a handler. The zero value has no successor.
type Link[Req, Res any] struct {
	next   Handler[Req, Res]
	frozen bool
}

// SetNext makes next the successor of this handler and returns next, so
// chains can be built as a.SetNext(b) then b.SetNext(c). Calling it again
// replaces the previous successor.
func (l *Link[Req, Res]) SetNext(next Handler[Req, Res]) (Handler[Req, Res], error) {
	if next == nil {
		return nil, ErrNilHandler
	}

	if l.frozen {
		return nil, ErrFrozen
	}

	for n := next; n != nil; n = n.link().next {
		if n.link() == l {
			return nil, ErrCycle
		}
	}

	l.next = next
	return next, nil
}

// Next returns the successor, if one is linked.
func (l *Link[Req, Res]) Next() (Handler[Req, Res], bool) {
	return l.next, l.next != nil
}

// Frozen reports whether the link can still be changed.
func (l *Link[Req, Res]) Frozen() bool {
	return l.frozen
}

func (l *Link[Req, Res]) link() *Link[Req, Res] {
	return l
}

// Forward hands req to the successor of from. Handlers call it once their
// own predicate has declined the request.
func Forward[Req, Res any](from Handler[Req, Res], req Req) (Res, bool) {
	next, ok := from.Next()
	if !ok {
		var zero Res
		return zero, false
	}

	return next.Handle(req)
}

// Build links handlers in the order given and returns the head. The last
// handler keeps whatever successor it already had. On error every link is
// left as it was before the call.
func Build[Req, Res any](handlers ...Handler[Req, Res]) (Handler[Req, Res], error) {
	if len(handlers) == 0 {
		return nil, ErrEmptyChain
	}

	for i, h := range handlers {
		if h == nil {
			return nil, fmt.Errorf("chain: handler %d: %w", i, ErrNilHandler)
		}
	}

	prev := make([]Handler[Req, Res], len(handlers)-1)
	for i := 0; i < len(handlers)-1; i++ {
		prev[i] = handlers[i].link().next
		if _, err := handlers[i].SetNext(handlers[i+1]); err != nil {
			for j := i - 1; j >= 0; j-- {
				handlers[j].link().next = prev[j]
			}
			return nil, fmt.Errorf("chain: link %d -> %d: %w", i, i+1, err)
		}
	}

	return handlers[0], nil
}

// Freeze locks every link reachable from head. A frozen chain is safe to
// dispatch on from several goroutines.
func Freeze[Req, Res any](head Handler[Req, Res]) {
	Walk(head, func(h Handler[Req, Res]) bool {
		h.link().frozen = true
		return true
	})
}

// Walk calls fn for head and each successor in order, stopping early when fn
// returns false.
func Walk[Req, Res any](head Handler[Req, Res], fn func(Handler[Req, Res]) bool) {
	for n := head; n != nil; n = n.link().next {
		if !fn(n) {
			return
		}
	}
}

// Len counts the handlers reachable from head.
func Len[Req, Res any](head Handler[Req, Res]) int {
	n := 0
	Walk(head, func(Handler[Req, Res]) bool {
		n++
		return true
	})
	return n
}
