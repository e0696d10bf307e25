// ABOUTME: Ticker abstraction lets the playback engine run on real or simulated time
// ABOUTME: Tests inject a TickerFunc that hands out manually driven tickers

package playback

import "time"

// Ticker delivers ticks until stopped
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d
type TickerFunc func(d time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// RealTicker is the TickerFunc backed by time.Ticker
func RealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}
