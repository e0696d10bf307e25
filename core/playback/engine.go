// ABOUTME: Playback engine owns the rotation timer of every rotating region plus the clock updater
// ABOUTME: Sync diffs region signatures so unchanged regions keep their timer and changed ones restart

package playback

import (
	"sort"
	"strings"
	"sync"
	"time"

	"signage-app-api/core/domain"
	"signage-app-api/core/interfaces"
	"signage-app-api/core/layout"
	"signage-app-api/core/render"
)

// ClockInterval is how often the clock updater ticks
const ClockInterval = time.Second

// Options configure an Engine
type Options struct {
	// NewTicker creates timers; defaults to RealTicker
	NewTicker TickerFunc

	// Now is read by the clock updater; defaults to time.Now
	Now func() time.Time

	// OnAdvance is called after a region's rotation index moves. It must not call Sync or Stop.
	OnAdvance func(ref string, index int)

	Logger interfaces.Logger
}

// signature identifies the inputs of a rotation. Any change cancels and restarts the timer.
type signature struct {
	contentType domain.ContentType
	feedURL     string
	images      string
	transition  int
	count       int
}

type rotation struct {
	sig   signature
	index int
	stop  chan struct{}
	done  chan struct{}
}

type clockLoop struct {
	stop chan struct{}
	done chan struct{}
}

// Engine drives rotation for one screen. It is safe for concurrent use.
type Engine struct {
	opts Options

	mu        sync.Mutex
	rotations map[string]*rotation
	clock     *clockLoop
	clockTime time.Time
	stopped   bool
}

// NewEngine creates an idle engine
func NewEngine(opts Options) *Engine {
	if opts.NewTicker == nil {
		opts.NewTicker = RealTicker
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Engine{
		opts:      opts,
		rotations: make(map[string]*rotation),
	}
}

// Sync reconciles the running timers with l. counts holds the item count of feed-backed
// regions by region ref; slideshow counts come from the image list. A nil layout stops
// every rotation.
func (e *Engine) Sync(l *domain.Layout, counts map[string]int) {
	want := map[string]signature{}
	needClock := false
	if l != nil {
		addRegion(want, layout.LeftRegion, l.LeftColumn.Region, counts)
		for i, section := range l.RightColumn.Content {
			addRegion(want, layout.SectionRef(i), section, counts)
			if section.ContentType == domain.ContentClock {
				needClock = true
			}
		}
	}

	var cancelled []chan struct{}

	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	for ref, r := range e.rotations {
		if sig, ok := want[ref]; ok && sig == r.sig {
			continue
		}
		close(r.stop)
		cancelled = append(cancelled, r.done)
		delete(e.rotations, ref)
	}
	for ref, sig := range want {
		if _, ok := e.rotations[ref]; ok {
			continue
		}
		e.rotations[ref] = e.startRotation(ref, sig)
	}

	switch {
	case needClock && e.clock == nil:
		e.clock = e.startClock()
	case !needClock && e.clock != nil:
		close(e.clock.stop)
		cancelled = append(cancelled, e.clock.done)
		e.clock = nil
	}
	e.mu.Unlock()

	for _, done := range cancelled {
		<-done
	}
	if e.opts.Logger != nil && len(cancelled) > 0 {
		e.opts.Logger.Debug("Playback timers restarted", map[string]interface{}{
			"cancelled": len(cancelled),
			"running":   len(want),
		})
	}
}

func addRegion(want map[string]signature, ref string, r domain.Region, counts map[string]int) {
	if !r.ContentType.Rotates() {
		return
	}
	count := counts[ref]
	if r.ContentType == domain.ContentSlideshow {
		count = len(r.Images)
	}
	// Idle: nothing to rotate through
	if count <= 0 {
		return
	}
	want[ref] = signature{
		contentType: r.ContentType,
		feedURL:     r.FeedURL(),
		images:      strings.Join(r.Images, "\n"),
		transition:  layout.ClampTransitionTime(r.Options.TransitionTime),
		count:       count,
	}
}

// startRotation must be called with e.mu held
func (e *Engine) startRotation(ref string, sig signature) *rotation {
	r := &rotation{
		sig:  sig,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	t := e.opts.NewTicker(render.TransitionInterval(sig.transition))
	go e.runRotation(ref, r, t)
	return r
}

func (e *Engine) runRotation(ref string, r *rotation, t Ticker) {
	defer close(r.done)
	defer t.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-t.C():
			e.advance(ref, r)
		}
	}
}

func (e *Engine) advance(ref string, r *rotation) {
	e.mu.Lock()
	if e.rotations[ref] != r {
		e.mu.Unlock()
		return
	}
	r.index = (r.index + 1) % r.sig.count
	idx := r.index
	e.mu.Unlock()

	if e.opts.OnAdvance != nil {
		e.opts.OnAdvance(ref, idx)
	}
}

// startClock must be called with e.mu held
func (e *Engine) startClock() *clockLoop {
	c := &clockLoop{stop: make(chan struct{}), done: make(chan struct{})}
	e.clockTime = e.opts.Now()
	t := e.opts.NewTicker(ClockInterval)

	go func() {
		defer close(c.done)
		defer t.Stop()
		for {
			select {
			case <-c.stop:
				return
			case <-t.C():
				now := e.opts.Now()
				e.mu.Lock()
				e.clockTime = now
				e.mu.Unlock()
			}
		}
	}()
	return c
}

// Index returns the current rotation index of ref, 0 when the region is idle
func (e *Engine) Index(ref string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if r, ok := e.rotations[ref]; ok {
		return r.index
	}
	return 0
}

// Indices returns every running region's index
func (e *Engine) Indices() map[string]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]int, len(e.rotations))
	for ref, r := range e.rotations {
		out[ref] = r.index
	}
	return out
}

// Active lists the refs of regions with a running rotation timer
func (e *Engine) Active() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	refs := make([]string, 0, len(e.rotations))
	for ref := range e.rotations {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

// ClockTime is the last time the clock updater ticked, zero when no clock section is shown
func (e *Engine) ClockTime() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.clock == nil {
		return time.Time{}
	}
	return e.clockTime
}

// Stop cancels every timer and waits for them to exit. The engine cannot be restarted.
func (e *Engine) Stop() {
	var cancelled []chan struct{}

	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	for ref, r := range e.rotations {
		close(r.stop)
		cancelled = append(cancelled, r.done)
		delete(e.rotations, ref)
	}
	if e.clock != nil {
		close(e.clock.stop)
		cancelled = append(cancelled, e.clock.done)
		e.clock = nil
	}
	e.mu.Unlock()

	for _, done := range cancelled {
		<-done
	}
}
