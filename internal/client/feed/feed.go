// Package feed implements the client-side infinite-scroll driver for
// listing streams
//
// A Controller owns one scroll session: it accumulates pages for the current
// filter set, re-arms on each sentinel sighting, and serializes fetches so a
// second trigger while one is in flight is a no-op. Changing the filter set
// abandons the in-flight fetch and starts a fresh query
package feed

import (
	"context"
	"sync"
	"time"

	perr "hirehub/internal/platform/errors"
	"hirehub/internal/services/listings/domain"
)

// State is the controller lifecycle state
type State int

// Controller states
const (
	// Idle means the next sentinel sighting may start a fetch
	Idle State = iota

	// Fetching means a page request is in flight
	Fetching

	// Exhausted is terminal for the current filter set: either the stream
	// ended (nil cursor) or retries ran out
	Exhausted
)

// Querier is the listing query surface the controller drives
// Satisfied by the in-process service and by the HTTP client alike
type Querier interface {
	Query(ctx context.Context, in domain.FilterSpec) (domain.Page, error)
}

// Option configures a Controller
type Option func(*Controller)

// WithMaxRetries sets how many times a retryable failure is retried
func WithMaxRetries(n int) Option {
	return func(c *Controller) { c.maxRetries = n }
}

// WithBackoff sets the sleep between retries
func WithBackoff(d time.Duration) Option {
	return func(c *Controller) { c.backoff = d }
}

// WithDebounce sets the quiet window that coalesces search-term keystrokes
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) { c.debounce = d }
}

// WithNotify installs a callback invoked after every state transition
// Called without the controller lock held
func WithNotify(fn func()) Option {
	return func(c *Controller) { c.notify = fn }
}

// Controller drives one infinite-scroll session
type Controller struct {
	q Querier

	mu      sync.Mutex
	filter  domain.FilterSpec
	items   []domain.Listing
	seen    map[string]struct{}
	cursor  *domain.Cursor
	state   State
	lastErr error

	// seq invalidates in-flight fetches across resets
	seq    int
	cancel context.CancelFunc

	pendingTerm string
	timer       *time.Timer

	maxRetries int
	backoff    time.Duration
	debounce   time.Duration
	notify     func()
}

// New creates a controller for the given filter set
func New(q Querier, filter domain.FilterSpec, opts ...Option) *Controller {
	c := &Controller{
		q:          q,
		filter:     filter,
		seen:       map[string]struct{}{},
		maxRetries: 2,
		backoff:    250 * time.Millisecond,
		debounce:   300 * time.Millisecond,
		notify:     func() {},
	}
	c.filter.Cursor = nil // sessions always start from the beginning
	for _, o := range opts {
		o(c)
	}
	return c
}

// Sentinel reports that the sentinel element became visible
// Starts a fetch only from Idle; returns whether one was started
func (c *Controller) Sentinel() bool {
	c.mu.Lock()
	if c.state != Idle {
		c.mu.Unlock()
		return false
	}
	c.state = Fetching
	seq := c.seq
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	in := c.filter
	in.Cursor = c.cursor
	c.mu.Unlock()

	go c.fetch(ctx, seq, in)
	return true
}

// fetch runs one page request with bounded retries, then applies the result
// unless the session moved on
func (c *Controller) fetch(ctx context.Context, seq int, in domain.FilterSpec) {
	var (
		page domain.Page
		err  error
	)
	for attempt := 0; ; attempt++ {
		page, err = c.q.Query(ctx, in)
		if err == nil || ctx.Err() != nil {
			break
		}
		if attempt >= c.maxRetries || !retryable(err) {
			break
		}
		select {
		case <-ctx.Done():
		case <-time.After(c.backoff):
		}
	}

	c.mu.Lock()
	if seq != c.seq || ctx.Err() != nil {
		// stale response from an abandoned session, discard
		c.mu.Unlock()
		return
	}
	if err != nil {
		// already-accumulated pages stay; only this request is lost
		c.state = Exhausted
		c.lastErr = err
		c.mu.Unlock()
		c.notify()
		return
	}

	for _, l := range page.Items {
		// defensive de-dup by id: no snapshot isolation across pages, a
		// concurrent pin or update can replay an item
		if _, dup := c.seen[l.ID]; dup {
			continue
		}
		c.seen[l.ID] = struct{}{}
		c.items = append(c.items, l)
	}
	c.cursor = page.Cursor
	if page.Cursor == nil {
		c.state = Exhausted
	} else {
		c.state = Idle
	}
	c.mu.Unlock()
	c.notify()
}

// SetFilter replaces the filter set: a fresh query, not a continuation
// Any in-flight fetch is abandoned and its response discarded
func (c *Controller) SetFilter(f domain.FilterSpec) {
	c.mu.Lock()
	c.resetLocked(f)
	c.mu.Unlock()
	c.notify()
}

// SetSearchTerm coalesces keystrokes: only the last value inside the quiet
// window triggers a reset
func (c *Controller) SetSearchTerm(term string) {
	c.mu.Lock()
	c.pendingTerm = term
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, c.applyPendingTerm)
	c.mu.Unlock()
}

func (c *Controller) applyPendingTerm() {
	c.mu.Lock()
	if c.pendingTerm == c.filter.SearchTerm {
		c.mu.Unlock()
		return
	}
	f := c.filter
	f.SearchTerm = c.pendingTerm
	c.resetLocked(f)
	c.mu.Unlock()
	c.notify()
}

// resetLocked rewinds the session for a new filter set; caller holds mu
func (c *Controller) resetLocked(f domain.FilterSpec) {
	c.seq++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	f.Cursor = nil
	c.filter = f
	c.pendingTerm = f.SearchTerm
	c.items = nil
	c.seen = map[string]struct{}{}
	c.cursor = nil
	c.state = Idle
	c.lastErr = nil
}

// Items returns a copy of the accumulated listings
func (c *Controller) Items() []domain.Listing {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Listing, len(c.items))
	copy(out, c.items)
	return out
}

// State returns the current controller state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the fault that drove the controller to Exhausted, if any
// A nil Err in Exhausted means the stream genuinely ended
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Filter returns the active filter set
func (c *Controller) Filter() domain.FilterSpec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// retryable follows the error taxonomy: internal faults may succeed on
// retry, argument and auth failures never do
func retryable(err error) bool {
	switch perr.CodeOf(err) {
	case perr.ErrorCodeDB, perr.ErrorCodeUnavailable, perr.ErrorCodeUnknown:
		return true
	}
	return false
}
