package gui

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	// cellWidth is the number of terminal columns per board cell, which
	// makes cells roughly square
	cellWidth = 2

	BoardWidth  = mino.Cols*cellWidth + 2
	BoardHeight = mino.Rows + 2

	SideWidth = 24
)

// drawText places text at the specified coordinates with the provided style,
// truncating it to width columns
func drawText(s tcell.Screen, x, y, width int, style tcell.Style, text string) {
	text = runewidth.Truncate(text, width, "…")
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// drawCell fills one board cell, two columns wide
func drawCell(s tcell.Screen, x, y int, color tcell.Color) {
	style := tcell.StyleDefault.Background(color)
	for i := 0; i < cellWidth; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}

// drawBorder draws a box with the given inner size whose top left corner is
// at x, y
func drawBorder(s tcell.Screen, x, y, innerWidth, innerHeight int, t Theme) {
	style := tcell.StyleDefault.Foreground(t.Border)

	right, bottom := x+innerWidth+1, y+innerHeight+1
	for col := x + 1; col < right; col++ {
		drawRune(s, col, y, style, tcell.RuneHLine)
		drawRune(s, col, bottom, style, tcell.RuneHLine)
	}
	for row := y + 1; row < bottom; row++ {
		drawRune(s, x, row, style, tcell.RuneVLine)
		drawRune(s, right, row, style, tcell.RuneVLine)
	}

	drawRune(s, x, y, style, tcell.RuneULCorner)
	drawRune(s, right, y, style, tcell.RuneURCorner)
	drawRune(s, x, bottom, style, tcell.RuneLLCorner)
	drawRune(s, right, bottom, style, tcell.RuneLRCorner)
}

// drawBoard draws the settled cells and the falling piece. Parts of the piece
// above the top row are not shown.
func drawBoard(s tcell.Screen, x, y int, st game.State, t Theme) {
	drawBorder(s, x, y, mino.Cols*cellWidth, mino.Rows, t)

	board := st.Board
	if !st.GameOver {
		for _, p := range st.Piece.Points() {
			if mino.InBounds(p.X, p.Y) {
				board[p.Y][p.X] = st.Piece.Type
			}
		}
	} else {
		t = t.Dimmed(0.6)
	}

	for row := 0; row < mino.Rows; row++ {
		for col := 0; col < mino.Cols; col++ {
			drawCell(s, x+1+col*cellWidth, y+1+row, t.BlockColor(board[row][col]))
		}
	}
}

// sideLines returns the label/value pairs shown next to the board
func sideLines(nick string, st game.State) [][2]string {
	speed := fmt.Sprintf("%dms", st.Interval.Milliseconds())

	return [][2]string{
		{"Player", nick},
		{"Score", humanize.Comma(int64(st.Score))},
		{"Lines", humanize.Comma(int64(st.Lines))},
		{"Pieces", humanize.Comma(int64(st.Pieces))},
		{"Speed", speed},
	}
}

// drawSide draws the player stats and the key help
func drawSide(s tcell.Screen, x, y, width int, nick string, st game.State, help []string, t Theme) {
	labelStyle := tcell.StyleDefault.Foreground(t.Label)
	textStyle := tcell.StyleDefault.Foreground(t.Text)

	row := y
	for _, l := range sideLines(nick, st) {
		drawText(s, x, row, width, labelStyle, fmt.Sprintf("%-8s", l[0]))
		drawText(s, x+8, row, width-8, textStyle, l[1])
		row++
	}

	row++
	for _, h := range help {
		drawText(s, x, row, width, textStyle, h)
		row++
	}

	if st.GameOver {
		drawText(s, x, row+1, width, labelStyle.Bold(true), "GAME OVER")
	}
}
