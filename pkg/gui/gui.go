package gui

import (
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
)

const (
	pageGame     = "game"
	pageGameOver = "gameover"
)

// GUI is the terminal front end. It never touches the engine: states are
// handed over by the game loop through Update and player input leaves through
// the onAction callback.
type GUI struct {
	App   *tview.Application
	pages *tview.Pages
	board *tview.Box
	side  *tview.Box
	modal *tview.Modal

	theme    Theme
	nick     string
	bindings []Keybinding
	help     []string
	onAction func(event.GameAction) bool

	mu    sync.Mutex
	state game.State

	redraw chan struct{}
}

func NewGUI(theme Theme, nick string, bindings []Keybinding, onAction func(event.GameAction) bool) *GUI {
	g := &GUI{
		App:      tview.NewApplication(),
		theme:    theme,
		nick:     nick,
		bindings: bindings,
		help:     Help(bindings),
		onAction: onAction,
		redraw:   make(chan struct{}, 1),
	}

	g.board = tview.NewBox().SetDrawFunc(g.drawBoard)
	g.side = tview.NewBox().SetDrawFunc(g.drawSide)

	layout := tview.NewGrid().
		SetRows(-1, BoardHeight, -1).
		SetColumns(-1, BoardWidth, 2, SideWidth, -1).
		AddItem(g.board, 1, 1, 1, 1, 0, 0, true).
		AddItem(g.side, 1, 3, 1, 1, 0, 0, false)

	g.modal = tview.NewModal().
		AddButtons([]string{"Quit"}).
		SetDoneFunc(func(int, string) {
			g.Stop()
		})

	g.pages = tview.NewPages().
		AddPage(pageGame, layout, true, true).
		AddPage(pageGameOver, g.modal, true, false)

	g.App.SetInputCapture(g.HandleKey)

	return g
}

// HandleKey translates key presses into game actions. Keys without a binding
// are passed on to tview.
func (g *GUI) HandleKey(ev *tcell.EventKey) *tcell.EventKey {
	if name, _ := g.pages.GetFrontPage(); name == pageGameOver {
		return ev
	}

	b, ok := Match(g.bindings, ev)
	if !ok {
		return ev
	}

	if b.Quit {
		g.Stop()
		return nil
	}

	if g.onAction != nil {
		g.onAction(b.Action)
	}
	return nil
}

// Update stores the latest state and schedules a redraw. It does not block.
func (g *GUI) Update(st game.State) {
	g.mu.Lock()
	g.state = st
	g.mu.Unlock()

	select {
	case g.redraw <- struct{}{}:
	default:
	}
}

func (g *GUI) State() game.State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// ShowGameOver brings up the final score dialog.
func (g *GUI) ShowGameOver(score int) {
	g.App.QueueUpdateDraw(func() {
		g.modal.SetText(GameOverText(score))
		g.pages.ShowPage(pageGameOver)
		g.App.SetFocus(g.modal)
	})
}

func GameOverText(score int) string {
	return fmt.Sprintf("Game Over!\n\nScore: %s", humanize.Comma(int64(score)))
}

// Run blocks until the application is stopped.
func (g *GUI) Run() error {
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		for {
			select {
			case <-stop:
				return
			case <-g.redraw:
				g.App.QueueUpdateDraw(func() {})
			}
		}
	}()

	return g.App.SetRoot(g.pages, true).Run()
}

func (g *GUI) Stop() {
	g.App.Stop()
}

func (g *GUI) drawBoard(s tcell.Screen, x, y, width, height int) (int, int, int, int) {
	drawBoard(s, x, y, g.State(), g.theme)
	return x, y, width, height
}

func (g *GUI) drawSide(s tcell.Screen, x, y, width, height int) (int, int, int, int) {
	drawSide(s, x, y, width, g.nick, g.State(), g.help, g.theme)
	return x, y, width, height
}
