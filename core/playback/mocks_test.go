package playback

import (
	"sync"
	"time"
)

type fakeTicker struct {
	d       time.Duration
	c       chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.c }

func (f *fakeTicker) Stop() {
	f.mu.Lock()
	f.stopped = true
	f.mu.Unlock()
}

func (f *fakeTicker) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

// tick blocks until the engine goroutine has taken the tick
func (f *fakeTicker) tick() {
	f.c <- time.Now()
}

type fakeClock struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (fc *fakeClock) NewTicker(d time.Duration) Ticker {
	t := &fakeTicker{d: d, c: make(chan time.Time)}
	fc.mu.Lock()
	fc.tickers = append(fc.tickers, t)
	fc.mu.Unlock()
	return t
}

func (fc *fakeClock) all() []*fakeTicker {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return append([]*fakeTicker(nil), fc.tickers...)
}
