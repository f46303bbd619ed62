package event

import (
	"time"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// ScoreEvent is emitted whenever points are awarded.
type ScoreEvent struct {
	Score int
	Delta int
}

// LinesClearedEvent is emitted when a landed piece completes one or more rows.
type LinesClearedEvent struct {
	Lines int
	Total int
}

// IntervalEvent carries a new automatic drop interval. Whoever drives the
// drop timer must re-program it.
type IntervalEvent struct {
	Interval time.Duration
}

// SpawnEvent is emitted after a new piece has been placed.
type SpawnEvent struct {
	Type mino.Block
}

// GameOverEvent is emitted once, when a new piece could not be placed.
type GameOverEvent struct {
	Score int
}
