package gui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()

	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 30)
	t.Cleanup(s.Fini)
	return s
}

func readRow(s tcell.Screen, x, y, n int) string {
	var out []rune
	for i := 0; i < n; i++ {
		r, _, _, _ := s.GetContent(x+i, y)
		out = append(out, r)
	}
	return string(out)
}

func background(s tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func testState() game.State {
	var b mino.Board
	b[mino.Rows-1][0] = mino.BlockGarbage

	return game.State{
		Board:    b,
		Piece:    mino.NewPiece(mino.ShapeO, mino.BlockO, mino.Point{X: 4, Y: 0}),
		Score:    1234567,
		Lines:    12,
		Pieces:   40,
		Interval: 250 * time.Millisecond,
	}
}

func TestDrawBoard(t *testing.T) {
	s := newScreen(t)
	st := testState()

	drawBoard(s, 0, 0, st, ThemeBasic)

	r, _, _, _ := s.GetContent(0, 0)
	assert.Equal(t, tcell.RuneULCorner, r)
	r, _, _, _ = s.GetContent(BoardWidth-1, BoardHeight-1)
	assert.Equal(t, tcell.RuneLRCorner, r)

	// Cells are two columns wide, inside the border.
	oColor := ThemeBasic.BlockColor(mino.BlockO)
	for _, x := range []int{9, 10, 11, 12} {
		assert.Equal(t, oColor, background(s, x, 1), "column %d", x)
		assert.Equal(t, oColor, background(s, x, 2), "column %d", x)
	}
	assert.Equal(t, ThemeBasic.Empty, background(s, 7, 1))
	assert.Equal(t, ThemeBasic.Garbage, background(s, 1, mino.Rows))
	assert.Equal(t, ThemeBasic.Garbage, background(s, 2, mino.Rows))
}

func TestDrawBoardHidesPieceAboveTop(t *testing.T) {
	s := newScreen(t)
	st := testState()
	st.Piece.Y = -1

	drawBoard(s, 0, 0, st, ThemeBasic)

	assert.Equal(t, ThemeBasic.BlockColor(mino.BlockO), background(s, 9, 1))
	r, _, _, _ := s.GetContent(9, 0)
	assert.Equal(t, tcell.RuneHLine, r, "border must not be overwritten")
}

func TestDrawBoardGameOver(t *testing.T) {
	s := newScreen(t)
	st := testState()
	st.GameOver = true

	drawBoard(s, 0, 0, st, ThemeBasic)

	dimmed := ThemeBasic.Dimmed(0.6)
	assert.Equal(t, dimmed.Empty, background(s, 9, 1), "piece is not drawn after game over")
	assert.Equal(t, dimmed.Garbage, background(s, 1, mino.Rows))
}

func TestDrawSide(t *testing.T) {
	s := newScreen(t)
	st := testState()

	drawSide(s, 0, 0, SideWidth, "brave-otter", st, []string{"rotate     Up"}, ThemeBasic)

	assert.Equal(t, "Player  brave-otter", readRow(s, 0, 0, 19))
	assert.Equal(t, "Score   1,234,567", readRow(s, 0, 1, 17))
	assert.Equal(t, "Lines   12", readRow(s, 0, 2, 10))
	assert.Equal(t, "Pieces  40", readRow(s, 0, 3, 10))
	assert.Equal(t, "Speed   250ms", readRow(s, 0, 4, 13))
	assert.Equal(t, "rotate     Up", readRow(s, 0, 6, 13))
}

func TestDrawSideTruncates(t *testing.T) {
	s := newScreen(t)

	drawSide(s, 0, 0, 12, "a-very-long-nickname", testState(), nil, ThemeBasic)

	assert.Equal(t, "Player  a-v…", readRow(s, 0, 0, 12))
}

func TestHandleKey(t *testing.T) {
	bindings, err := ParseKeybindings(nil)
	require.NoError(t, err)

	var got []event.GameAction
	g := NewGUI(ThemeBasic, "nick", bindings, func(a event.GameAction) bool {
		got = append(got, a)
		return true
	})

	assert.Nil(t, g.HandleKey(key(tcell.KeyLeft)))
	assert.Nil(t, g.HandleKey(runeKey(' ')))

	ev := runeKey('z')
	assert.Equal(t, ev, g.HandleKey(ev))

	assert.Equal(t, []event.GameAction{event.ActionMoveLeft, event.ActionHardDrop}, got)
}

func TestUpdateDoesNotBlock(t *testing.T) {
	g := NewGUI(ThemeBasic, "nick", nil, nil)

	st := testState()
	for i := 0; i < 10; i++ {
		st.Score = i
		g.Update(st)
	}
	assert.Equal(t, 9, g.State().Score)
}

func TestGameOverText(t *testing.T) {
	assert.Equal(t, "Game Over!\n\nScore: 12,345", GameOverText(12345))
}
