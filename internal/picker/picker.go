package picker

import (
	"context"
	"errors"
	"log"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ironsheep/color-picker-mcp/internal/colorspace"
	"github.com/ironsheep/color-picker-mcp/internal/metrics"
)

// DefaultBufferSize is the number of pending snapshots kept per subscriber.
const DefaultBufferSize = 8

// ErrClosed is returned by Subscribe and Apply after Close.
var ErrClosed = errors.New("picker closed")

// Picker holds the current color and fans every change out to its
// subscribers.
//
// A Picker is safe for concurrent use.
type Picker struct {
	mu      sync.Mutex
	current colorspace.Color
	subs    map[uuid.UUID]*Subscription
	buffer  int
	closed  bool
}

// Option configures a Picker.
type Option func(*Picker)

// WithBufferSize sets how many snapshots a subscriber may have pending before
// the oldest is dropped. Values below 1 are ignored.
func WithBufferSize(n int) Option {
	return func(p *Picker) {
		if n > 0 {
			p.buffer = n
		}
	}
}

// New creates a Picker showing initial.
func New(initial colorspace.Color, opts ...Option) *Picker {
	p := &Picker{
		current: initial,
		subs:    make(map[uuid.UUID]*Subscription),
		buffer:  DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewRandom creates a Picker showing a random color. Hue, saturation and
// value are drawn uniformly and rounded to whole numbers. A nil r uses the
// global source.
func NewRandom(r *rand.Rand, opts ...Option) *Picker {
	return New(RandomColor(r), opts...)
}

// RandomColor draws a color with whole-number HSV components.
func RandomColor(r *rand.Rand) colorspace.Color {
	draw := rand.Float64
	if r != nil {
		draw = r.Float64
	}
	h := math.Round(draw() * colorspace.MaxHue)
	s := math.Round(draw() * colorspace.MaxSVL)
	v := math.Round(draw() * colorspace.MaxSVL)
	return colorspace.FromHSVValues(h, s, v)
}

// Current returns the color the picker shows.
func (p *Picker) Current() colorspace.Color {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Snapshot returns the Snapshot of the current color.
func (p *Picker) Snapshot() Snapshot {
	return SnapshotOf(p.Current())
}

// Apply performs one intent. On success the new color becomes current, is
// published to every subscriber and its snapshot is returned.
//
// A rejected or invalid intent changes nothing and publishes nothing; the
// returned snapshot is then the unchanged current one, so views can restore
// their fields from it.
func (p *Picker) Apply(in Intent) (Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return SnapshotOf(p.current), ErrClosed
	}

	next, err := in.resolve(p.current)
	if err != nil {
		return SnapshotOf(p.current), err
	}

	p.current = next
	snap := SnapshotOf(next)
	p.publish(snap)
	debugf("applied %s intent, now %s", in.Kind, snap.Hex)
	return snap, nil
}

// publish sends snap to every subscriber. Callers hold p.mu.
func (p *Picker) publish(snap Snapshot) {
	metrics.Broadcasts.Inc()
	for _, sub := range p.subs {
		sub.offer(snap)
	}
}

// Subscribe attaches a new subscriber. The current snapshot is already
// waiting on the returned channel. The subscription ends when ctx is done or
// Unsubscribe is called, and its channel is then closed.
func (p *Picker) Subscribe(ctx context.Context) (*Subscription, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrClosed
	}

	ch := make(chan Snapshot, p.buffer)
	sub := &Subscription{
		ID:   uuid.New(),
		C:    ch,
		ch:   ch,
		done: make(chan struct{}),
	}
	sub.offer(SnapshotOf(p.current))
	p.subs[sub.ID] = sub
	metrics.Subscribers.Inc()
	debugf("subscriber %s attached (%d total)", sub.ID, len(p.subs))

	go func() {
		select {
		case <-ctx.Done():
			p.Unsubscribe(sub.ID)
		case <-sub.done:
		}
	}()

	return sub, nil
}

// Unsubscribe detaches the subscriber with the given id and closes its
// channel. Unknown ids are ignored.
func (p *Picker) Unsubscribe(id uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detach(id)
}

// detach removes one subscriber. Callers hold p.mu.
func (p *Picker) detach(id uuid.UUID) {
	sub, ok := p.subs[id]
	if !ok {
		return
	}
	delete(p.subs, id)
	close(sub.ch)
	close(sub.done)
	metrics.Subscribers.Dec()
	debugf("subscriber %s detached (%d left)", id, len(p.subs))
}

// SubscriberCount returns the number of attached subscribers.
func (p *Picker) SubscriberCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.subs)
}

// Close detaches every subscriber. Later calls to Apply and Subscribe fail
// with ErrClosed. Close is idempotent.
func (p *Picker) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for id := range p.subs {
		p.detach(id)
	}
}

// Subscription is one attached view.
type Subscription struct {
	ID uuid.UUID

	// C delivers snapshots, oldest first. It is closed when the
	// subscription ends.
	C <-chan Snapshot

	ch   chan Snapshot
	done chan struct{}
}

// offer queues snap without blocking. When the buffer is full the oldest
// pending snapshot is discarded to make room. Callers hold the picker lock,
// which makes the picker the only sender.
func (s *Subscription) offer(snap Snapshot) {
	select {
	case s.ch <- snap:
		return
	default:
	}

	select {
	case <-s.ch:
		metrics.DroppedSnapshots.Inc()
	default:
	}

	select {
	case s.ch <- snap:
	default:
		metrics.DroppedSnapshots.Inc()
	}
}

var debugEnabled atomic.Bool

// SetDebug turns debug logging on or off for the package.
func SetDebug(on bool) {
	debugEnabled.Store(on)
}

func debugf(format string, args ...interface{}) {
	if debugEnabled.Load() {
		log.Printf("[DEBUG] picker: "+format, args...)
	}
}
