package game

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

const CommandQueueSize = 10

const (
	LogStandard = iota
	LogDebug
	LogVerbose
)

// Loop is the single owner of a Game. Player actions arrive through Do from
// any goroutine; Run applies them and the drop ticks in order and hands a
// State copy to the draw callback after every step.
type Loop struct {
	game *Game
	draw func(State)

	actions  chan event.GameAction
	newClock func(time.Duration) Clock

	logger   *log.Logger
	LogLevel int

	intervalChanged bool

	done     chan struct{}
	doneOnce sync.Once
}

type LoopOption func(*Loop)

// WithClock replaces the time.Ticker based drop clock.
func WithClock(newClock func(time.Duration) Clock) LoopOption {
	return func(l *Loop) {
		l.newClock = newClock
	}
}

func WithLogger(logger *log.Logger, level int) LoopOption {
	return func(l *Loop) {
		l.logger = logger
		l.LogLevel = level
	}
}

func NewLoop(g *Game, draw func(State), opts ...LoopOption) *Loop {
	l := &Loop{
		game:     g,
		draw:     draw,
		actions:  make(chan event.GameAction, CommandQueueSize),
		newClock: NewTickerClock,
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(l)
	}

	g.AddEventHandler(l.handle)

	return l
}

func (l *Loop) Log(level int, a ...interface{}) {
	if l.logger == nil || level > l.LogLevel {
		return
	}

	l.logger.Print(a...)
}

func (l *Loop) Logf(level int, format string, a ...interface{}) {
	if l.logger == nil || level > l.LogLevel {
		return
	}

	l.logger.Printf(format, a...)
}

// Do queues a player action. It never blocks: the action is dropped when the
// queue is full or the loop has finished.
func (l *Loop) Do(a event.GameAction) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.actions <- a:
		return true
	default:
		l.Logf(LogDebug, "dropped action %s: queue full", a)
		return false
	}
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run drives the game until it is over, returning nil, or until ctx is
// cancelled, returning ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	defer l.doneOnce.Do(func() { close(l.done) })

	clock := l.newClock(l.game.DropInterval())
	defer clock.Stop()

	l.publish()

	for !l.game.GameOver() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a := <-l.actions:
			l.Logf(LogVerbose, "action %s", a)
			l.game.Process(a)
		case <-clock.C():
			l.game.Tick()
		}

		if l.intervalChanged {
			l.intervalChanged = false
			clock.Reset(l.game.DropInterval())
		}

		l.publish()
	}

	l.Logf(LogStandard, "Game over - score %d, lines %d, pieces %d", l.game.Score(), l.game.Lines(), l.game.Pieces())
	return nil
}

func (l *Loop) publish() {
	if l.draw != nil {
		l.draw(l.game.State())
	}
}

func (l *Loop) handle(e interface{}) {
	switch ev := e.(type) {
	case event.IntervalEvent:
		l.intervalChanged = true
		l.Logf(LogDebug, "Drop interval now %s", ev.Interval)
	case event.LinesClearedEvent:
		l.Logf(LogDebug, "Cleared %d line(s), %d total", ev.Lines, ev.Total)
	case event.ScoreEvent:
		l.Logf(LogVerbose, "Score %d (+%d)", ev.Score, ev.Delta)
	case event.SpawnEvent:
		l.Logf(LogVerbose, "Spawned %s", ev.Type)
	case event.GameOverEvent:
		l.Logf(LogDebug, "Spawn blocked, final score %d", ev.Score)
	default:
		l.Logf(LogStandard, "unknown event type: %T", e)
	}
}
