package trace

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/guarded/pkg/guard"
)

// EventType enumerates resource lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDestroyed
)

// Entry identifies one tracked resource.
type Entry struct {
	ID        uuid.UUID
	Kind      string
	CreatedAt time.Time
}

// Event is a resource lifecycle notification.
type Event struct {
	Type  EventType
	Entry Entry
}

// Observer receives lifecycle events from a Tracker.
type Observer interface {
	OnGuardEvent(Event)
}

// ObserverFunc adapts a closure into an Observer.
type ObserverFunc func(Event)

// OnGuardEvent implements Observer.
func (f ObserverFunc) OnGuardEvent(e Event) {
	f(e)
}

// Tracker maintains the live set of tracked resources. Subscription and the
// live set are internally synchronized because observers may be registered
// from anywhere; tracked guards themselves remain single-owner.
type Tracker struct {
	mu        sync.Mutex
	live      map[uuid.UUID]Entry
	observers []subscriber
	nextSub   int
}

type subscriber struct {
	id int
	o  Observer
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		live: make(map[uuid.UUID]Entry),
	}
}

// Subscribe adds an observer for lifecycle events and returns a function
// that removes it again. Removal goes through the returned handle rather
// than by observer value, so ObserverFunc closures, which are not
// comparable, unsubscribe like any other observer.
func (t *Tracker) Subscribe(o Observer) (unsubscribe func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextSub++
	id := t.nextSub
	t.observers = append(t.observers, subscriber{id: id, o: o})
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		for i, s := range t.observers {
			if s.id == id {
				t.observers = append(t.observers[:i], t.observers[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of live tracked resources.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// Live returns the entries still alive, the leak candidates if the program
// expects quiescence.
func (t *Tracker) Live() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	entries := make([]Entry, 0, len(t.live))
	for _, e := range t.live {
		entries = append(entries, e)
	}
	return entries
}

func (t *Tracker) created(kind string) Entry {
	entry := Entry{
		ID:        uuid.New(),
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	t.mu.Lock()
	t.live[entry.ID] = entry
	observers := t.snapshotObservers()
	t.mu.Unlock()

	Logger().Debug("resource created",
		zap.String("id", entry.ID.String()),
		zap.String("kind", entry.Kind),
	)
	for _, o := range observers {
		o.OnGuardEvent(Event{Type: EventCreated, Entry: entry})
	}
	return entry
}

func (t *Tracker) destroyed(entry Entry) {
	t.mu.Lock()
	delete(t.live, entry.ID)
	observers := t.snapshotObservers()
	t.mu.Unlock()

	Logger().Debug("resource destroyed",
		zap.String("id", entry.ID.String()),
		zap.String("kind", entry.Kind),
		zap.Duration("lifetime", time.Since(entry.CreatedAt)),
	)
	for _, o := range observers {
		o.OnGuardEvent(Event{Type: EventDestroyed, Entry: entry})
	}
}

// snapshotObservers copies the observer list in subscription order; callers
// must hold t.mu.
func (t *Tracker) snapshotObservers() []Observer {
	observers := make([]Observer, len(t.observers))
	for i, s := range t.observers {
		observers[i] = s.o
	}
	return observers
}

// Traced decorates a destroyable resource, notifying its tracker when the
// resource is destroyed. It is itself destroyable, so it nests anywhere the
// plain resource would.
type Traced[R guard.Destroyable[D], D any] struct {
	Resource R
	entry    Entry
	tracker  *Tracker
}

// Track registers a resource with the tracker under the given kind and
// returns it wrapped in a guard scoped to destroyer. Destruction through the
// guard, or through the decorated resource after a Take, notifies the
// tracker.
func Track[R guard.Destroyable[D], D any](t *Tracker, kind string, resource R, destroyer D) *guard.Guard[Traced[R, D], D] {
	traced := Traced[R, D]{
		Resource: resource,
		entry:    t.created(kind),
		tracker:  t,
	}
	return guard.New(traced, destroyer)
}

// Entry returns the identity assigned at Track time.
func (tr Traced[R, D]) Entry() Entry {
	return tr.entry
}

// DestroyWith implements guard.Destroyable.
func (tr Traced[R, D]) DestroyWith(destroyer D) {
	tr.Resource.DestroyWith(destroyer)
	tr.tracker.destroyed(tr.entry)
}

// TracedAlloc is the Traced counterpart for alloc-parameterized resources.
type TracedAlloc[R guard.AllocDestroyable[D, A], D, A any] struct {
	Resource R
	entry    Entry
	tracker  *Tracker
}

// TrackAlloc registers an alloc-parameterized resource with the tracker and
// returns it wrapped in a guard carrying the given allocation callbacks.
func TrackAlloc[R guard.AllocDestroyable[D, A], D, A any](t *Tracker, kind string, resource R, destroyer D, allocCB A) *guard.AllocGuard[TracedAlloc[R, D, A], D, A] {
	traced := TracedAlloc[R, D, A]{
		Resource: resource,
		entry:    t.created(kind),
		tracker:  t,
	}
	return guard.NewAlloc(traced, destroyer, allocCB)
}

// Entry returns the identity assigned at TrackAlloc time.
func (tr TracedAlloc[R, D, A]) Entry() Entry {
	return tr.entry
}

// DestroyWith implements guard.AllocDestroyable.
func (tr TracedAlloc[R, D, A]) DestroyWith(destroyer D, allocCB A) {
	tr.Resource.DestroyWith(destroyer, allocCB)
	tr.tracker.destroyed(tr.entry)
}
