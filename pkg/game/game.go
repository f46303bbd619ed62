package game

import (
	"math/rand"
	"time"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	DefaultInterval = 500 * time.Millisecond
	MinInterval     = 100 * time.Millisecond

	// HardDropPoints is awarded for every row a hard drop descends.
	HardDropPoints = 2
	// LineClearPoints is multiplied by 2^n when n rows are cleared at once.
	LineClearPoints = 100
)

// Randomizer picks the next piece. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// Game is the engine state: the settled board, the falling piece, score and
// drop speed. It is not safe for concurrent use; a single owner (see Loop)
// must serialize every call.
type Game struct {
	board mino.Board
	piece mino.Piece

	score  int
	lines  int
	pieces int

	initialInterval time.Duration
	interval        time.Duration

	gameOver bool

	rand     Randomizer
	handlers []func(interface{})
}

// State is a copy of everything a renderer needs.
type State struct {
	Board    mino.Board
	Piece    mino.Piece
	Score    int
	Lines    int
	Pieces   int
	Interval time.Duration
	GameOver bool
}

type Option func(*Game)

func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rand = rand.New(rand.NewSource(seed))
	}
}

func WithRand(r Randomizer) Option {
	return func(g *Game) {
		g.rand = r
	}
}

// WithInitialInterval sets the starting drop interval. Values below
// MinInterval are raised to it.
func WithInitialInterval(d time.Duration) Option {
	return func(g *Game) {
		if d < MinInterval {
			d = MinInterval
		}
		g.initialInterval = d
	}
}

// WithBoard starts the game from a pre-filled board.
func WithBoard(b mino.Board) Option {
	return func(g *Game) {
		g.board = b
	}
}

func WithEventHandler(h func(interface{})) Option {
	return func(g *Game) {
		g.AddEventHandler(h)
	}
}

// NewGame creates a game and spawns its first piece. If that piece does not
// fit, the returned game is already over.
func NewGame(opts ...Option) *Game {
	g := &Game{initialInterval: DefaultInterval}

	for _, opt := range opts {
		opt(g)
	}

	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	}
	g.interval = g.initialInterval

	g.spawn()

	return g
}

// AddEventHandler registers h to receive every event from the pkg/event
// package. Handlers run synchronously on the goroutine driving the game.
func (g *Game) AddEventHandler(h func(interface{})) {
	if h != nil {
		g.handlers = append(g.handlers, h)
	}
}

func (g *Game) emit(e interface{}) {
	for _, h := range g.handlers {
		h(e)
	}
}

func (g *Game) Board() mino.Board           { return g.board }
func (g *Game) Piece() mino.Piece           { return g.piece }
func (g *Game) Score() int                  { return g.score }
func (g *Game) Lines() int                  { return g.lines }
func (g *Game) Pieces() int                 { return g.pieces }
func (g *Game) DropInterval() time.Duration { return g.interval }
func (g *Game) GameOver() bool              { return g.gameOver }

func (g *Game) State() State {
	return State{
		Board:    g.board,
		Piece:    g.piece,
		Score:    g.score,
		Lines:    g.lines,
		Pieces:   g.pieces,
		Interval: g.interval,
		GameOver: g.gameOver,
	}
}

// IsValid reports whether p fits on the current board.
func (g *Game) IsValid(p mino.Piece) bool {
	return g.board.Valid(p)
}

// spawn places a random tetromino centered on the top row. A spawn that does
// not fit ends the game.
func (g *Game) spawn() bool {
	i := g.rand.Intn(len(mino.Tetrominoes))
	shape := mino.Tetrominoes[i].Copy()

	g.piece = mino.NewPiece(shape, mino.Block(i+1), mino.Point{X: mino.Cols/2 - shape.Cols()/2, Y: 0})

	if !g.board.Valid(g.piece) {
		g.gameOver = true
		g.emit(event.GameOverEvent{Score: g.score})
		return false
	}

	g.pieces++
	g.emit(event.SpawnEvent{Type: g.piece.Type})
	return true
}

// commit replaces the active piece with candidate when it is valid.
func (g *Game) commit(candidate mino.Piece) bool {
	if g.gameOver || !g.board.Valid(candidate) {
		return false
	}

	g.piece = candidate
	return true
}

func (g *Game) MoveLeft() bool {
	return g.commit(g.piece.Moved(-1, 0))
}

func (g *Game) MoveRight() bool {
	return g.commit(g.piece.Moved(1, 0))
}

// Rotate turns the piece clockwise in place. There are no wall kicks: a
// rotation that does not fit is discarded.
func (g *Game) Rotate() bool {
	return g.commit(g.piece.Rotated())
}

// SoftDrop lowers the piece one row, or lands it when it cannot descend.
func (g *Game) SoftDrop() bool {
	if g.gameOver {
		return false
	}

	if !g.commit(g.piece.Moved(0, 1)) {
		g.land()
	}

	return true
}

// Tick is the automatic descent driven by the drop timer.
func (g *Game) Tick() bool {
	return g.SoftDrop()
}

// HardDrop drops the piece as far as it goes, awarding HardDropPoints per
// row, and lands it.
func (g *Game) HardDrop() bool {
	if g.gameOver {
		return false
	}

	rows := 0
	for g.commit(g.piece.Moved(0, 1)) {
		rows++
	}

	if rows > 0 {
		g.addScore(rows * HardDropPoints)
	}

	g.land()
	return true
}

// Process applies a player action.
func (g *Game) Process(a event.GameAction) bool {
	switch a {
	case event.ActionMoveLeft:
		return g.MoveLeft()
	case event.ActionMoveRight:
		return g.MoveRight()
	case event.ActionSoftDrop:
		return g.SoftDrop()
	case event.ActionRotate:
		return g.Rotate()
	case event.ActionHardDrop:
		return g.HardDrop()
	default:
		return false
	}
}

func (g *Game) land() {
	g.board.Merge(g.piece)
	g.clearLines()
	g.spawn()
}

func (g *Game) clearLines() {
	cleared := g.board.ClearFullLines()
	if cleared == 0 {
		return
	}

	g.lines += cleared
	g.emit(event.LinesClearedEvent{Lines: cleared, Total: g.lines})

	g.addScore((1 << cleared) * LineClearPoints)
	g.updateInterval()
}

func (g *Game) addScore(points int) {
	g.score += points
	g.emit(event.ScoreEvent{Score: g.score, Delta: points})
}

// updateInterval speeds the game up by one millisecond per ten points,
// never going below MinInterval.
func (g *Game) updateInterval() {
	next := g.initialInterval - time.Duration(g.score/10)*time.Millisecond
	if next < MinInterval {
		next = MinInterval
	}

	if next == g.interval {
		return
	}

	g.interval = next
	g.emit(event.IntervalEvent{Interval: next})
}
