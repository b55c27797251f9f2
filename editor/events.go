package editor

import (
	"log/slog"
	"runtime/debug"
)

// EventKind classifies document change notifications. Kinds are bits so an
// observer can subscribe to several at once.
type EventKind int

const (
	// EventLineChanged fires when one line's content or render state
	// changed. Event.Line carries the line index.
	EventLineChanged EventKind = 1 << iota
	// EventLinesChanged fires when the line structure changed: lines were
	// inserted, deleted or reordered.
	EventLinesChanged
	// EventCursorsChanged fires when any cursor moved, changed selection,
	// or the cursor set changed.
	EventCursorsChanged
	// EventDocumentReset fires when the whole document was replaced.
	EventDocumentReset

	// EventAny subscribes to every kind.
	EventAny = EventLineChanged | EventLinesChanged | EventCursorsChanged | EventDocumentReset
)

// Event is one change notification.
type Event struct {
	Kind EventKind
	// Line is the affected line index for EventLineChanged, otherwise -1.
	Line int
}

type observer struct {
	id   int
	mask EventKind
	fn   func(Event)
}

// notifier delivers document events synchronously, in subscription order.
// Events emitted while a delivery is in progress are queued and delivered
// after the current one completes, so observers always see changes in the
// order they happened. A panicking observer is logged and skipped; delivery
// continues with the rest.
type notifier struct {
	logger     *slog.Logger
	observers  []observer
	nextID     int
	delivering bool
	queue      []Event
}

func newNotifier(logger *slog.Logger) *notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &notifier{logger: logger}
}

// observe registers fn for the kinds in mask and returns a closure that
// removes the registration.
func (n *notifier) observe(mask EventKind, fn func(Event)) func() {
	id := n.nextID
	n.nextID++
	n.observers = append(n.observers, observer{id: id, mask: mask, fn: fn})
	return func() {
		for i, o := range n.observers {
			if o.id == id {
				n.observers = append(n.observers[:i], n.observers[i+1:]...)
				return
			}
		}
	}
}

// emit delivers ev to all matching observers.
func (n *notifier) emit(ev Event) {
	if n.delivering {
		n.queue = append(n.queue, ev)
		return
	}
	n.delivering = true
	n.deliver(ev)
	for len(n.queue) > 0 {
		next := n.queue[0]
		n.queue = n.queue[1:]
		n.deliver(next)
	}
	n.delivering = false
}

func (n *notifier) deliver(ev Event) {
	// Snapshot so observers can unsubscribe (or subscribe) during delivery.
	obs := append([]observer(nil), n.observers...)
	for _, o := range obs {
		if o.mask&ev.Kind == 0 {
			continue
		}
		n.call(o, ev)
	}
}

func (n *notifier) call(o observer, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("document observer panicked",
				"kind", ev.Kind,
				"line", ev.Line,
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	o.fn(ev)
}
