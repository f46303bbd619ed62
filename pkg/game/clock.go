package game

import (
	"time"
)

// Clock delivers the automatic drop ticks. Reset changes the period and
// restarts the countdown.
type Clock interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

// TickerClock is a Clock backed by a time.Ticker.
type TickerClock struct {
	ticker *time.Ticker
}

func NewTickerClock(d time.Duration) Clock {
	return &TickerClock{ticker: time.NewTicker(d)}
}

func (c *TickerClock) C() <-chan time.Time { return c.ticker.C }

func (c *TickerClock) Reset(d time.Duration) { c.ticker.Reset(d) }

func (c *TickerClock) Stop() { c.ticker.Stop() }
