package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Terminal safe color palette is available here
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name       string
	Background tcell.Color
	Empty      tcell.Color
	Border     tcell.Color
	Text       tcell.Color
	Label      tcell.Color
	Pieces     [7]tcell.Color
	Garbage    tcell.Color
}

// ThemeHex is the configuration file form of a Theme
type ThemeHex struct {
	Name       string    `json:"name" yaml:"name"`
	Background string    `json:"background" yaml:"background"`
	Empty      string    `json:"empty" yaml:"empty"`
	Border     string    `json:"border" yaml:"border"`
	Text       string    `json:"text" yaml:"text"`
	Label      string    `json:"label" yaml:"label"`
	Pieces     [7]string `json:"pieces" yaml:"pieces"`
	Garbage    string    `json:"garbage" yaml:"garbage"`
}

// fmtHex returns a one character hex for ColorDefault so that it survives a
// round trip through the config instead of being read back as black
func fmtHex(c tcell.Color) string {
	v := c.Hex()
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

func getColor(hex string) tcell.Color {
	if hex == "" || hex == "#0" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(hex)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	h := ThemeHex{
		Name:       t.Name,
		Background: fmtHex(t.Background),
		Empty:      fmtHex(t.Empty),
		Border:     fmtHex(t.Border),
		Text:       fmtHex(t.Text),
		Label:      fmtHex(t.Label),
		Garbage:    fmtHex(t.Garbage),
	}
	for i, c := range t.Pieces {
		h.Pieces[i] = fmtHex(c)
	}
	return h
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	th := Theme{
		Name:       t.Name,
		Background: getColor(t.Background),
		Empty:      getColor(t.Empty),
		Border:     getColor(t.Border),
		Text:       getColor(t.Text),
		Label:      getColor(t.Label),
		Garbage:    getColor(t.Garbage),
	}
	for i, hex := range t.Pieces {
		th.Pieces[i] = getColor(hex)
	}
	return th
}

// BlockColor returns the fill color of a board cell
func (t Theme) BlockColor(b mino.Block) tcell.Color {
	switch {
	case b == mino.BlockNone:
		return t.Empty
	case b == mino.BlockGarbage:
		return t.Garbage
	case b >= mino.BlockI && b <= mino.BlockL:
		return t.Pieces[b-mino.BlockI]
	default:
		return t.Text
	}
}

// Dimmed blends every cell color towards the background. It is used to grey
// out the playfield once the game is over.
func (t Theme) Dimmed(amount float64) Theme {
	bg := toColorful(t.Background, colorful.Color{})

	dim := func(c tcell.Color) tcell.Color {
		if c == tcell.ColorDefault {
			return c
		}
		blended := toColorful(c, bg).BlendLab(bg, amount).Clamped()
		return tcell.GetColor(blended.Hex())
	}

	d := t
	d.Empty = dim(t.Empty)
	d.Garbage = dim(t.Garbage)
	for i, c := range t.Pieces {
		d.Pieces[i] = dim(c)
	}
	return d
}

func toColorful(c tcell.Color, fallback colorful.Color) colorful.Color {
	if c == tcell.ColorDefault {
		return fallback
	}
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// FindTheme returns the theme named want, looking at the configured themes
// first and the builtin ones after
func FindTheme(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, fmt.Errorf("theme: no theme named %q", want)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:       "basic",
	Background: tcell.ColorDefault,
	Empty:      tcell.Color236,
	Border:     tcell.Color247,
	Text:       tcell.ColorDefault,
	Label:      tcell.Color160,
	Pieces: [7]tcell.Color{
		tcell.Color51,  // I
		tcell.Color226, // O
		tcell.Color129, // T
		tcell.Color46,  // S
		tcell.Color196, // Z
		tcell.Color21,  // J
		tcell.Color208, // L
	},
	Garbage: tcell.Color244,
}

// ThemeMono only uses shades of grey
var ThemeMono = Theme{
	Name:       "mono",
	Background: tcell.ColorDefault,
	Empty:      tcell.Color234,
	Border:     tcell.Color250,
	Text:       tcell.Color252,
	Label:      tcell.Color255,
	Pieces: [7]tcell.Color{
		tcell.Color255,
		tcell.Color253,
		tcell.Color251,
		tcell.Color249,
		tcell.Color247,
		tcell.Color245,
		tcell.Color243,
	},
	Garbage: tcell.Color240,
}

// Themes lists the builtin themes
var Themes = []Theme{ThemeBasic, ThemeMono}
