package gui

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/samber/lo"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

// ActionQuit is the key binding name for leaving the game.
const ActionQuit = "quit"

// Keybinding maps a key press to a game action. Rune is only used when Key is
// tcell.KeyRune.
type Keybinding struct {
	Key    tcell.Key
	Rune   rune
	Action event.GameAction
	Quit   bool
}

// DefaultKeys lists the default bindings by action name.
var DefaultKeys = map[string][]string{
	event.ActionMoveLeft.String():  {"Left", "h"},
	event.ActionMoveRight.String(): {"Right", "l"},
	event.ActionSoftDrop.String():  {"Down", "j"},
	event.ActionRotate.String():    {"Up", "k", "x"},
	event.ActionHardDrop.String():  {"Space"},
	ActionQuit:                     {"q", "Esc", "Ctrl-C"},
}

var keysByName = lo.Invert(tcell.KeyNames)

// Some keys share a code with a control sequence, so tcell names them only
// once.
var keyAliases = map[string]tcell.Key{
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
}

// ParseKey reads a tcell key name such as "Left" or "Ctrl-C", "Space", or a
// single character.
func ParseKey(name string) (tcell.Key, rune, error) {
	if strings.EqualFold(name, "space") {
		return tcell.KeyRune, ' ', nil
	}

	if k, ok := keyAliases[strings.ToLower(name)]; ok {
		return k, 0, nil
	}

	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return tcell.KeyRune, r, nil
	}

	if k, ok := keysByName[name]; ok {
		return k, 0, nil
	}

	return 0, 0, fmt.Errorf("unknown key %q", name)
}

// ParseKeybindings builds the binding table from the defaults, replacing the
// keys of every action named in overrides.
func ParseKeybindings(overrides map[string][]string) ([]Keybinding, error) {
	keys := lo.Assign(DefaultKeys, overrides)

	names := lo.Keys(keys)
	sort.Strings(names)

	var bindings []Keybinding
	for _, name := range names {
		b := Keybinding{}
		if name == ActionQuit {
			b.Quit = true
		} else {
			a, err := event.ParseAction(name)
			if err != nil {
				return nil, fmt.Errorf("keybinding: %w", err)
			}
			b.Action = a
		}

		for _, keyName := range keys[name] {
			k, r, err := ParseKey(keyName)
			if err != nil {
				return nil, fmt.Errorf("keybinding %s: %w", name, err)
			}
			b.Key, b.Rune = k, r
			bindings = append(bindings, b)
		}
	}

	return bindings, nil
}

// Match returns the binding for ev, if any.
func Match(bindings []Keybinding, ev *tcell.EventKey) (Keybinding, bool) {
	return lo.Find(bindings, func(b Keybinding) bool {
		if b.Key != ev.Key() {
			return false
		}
		return b.Key != tcell.KeyRune || b.Rune == ev.Rune()
	})
}

// Help describes the bindings of every action in display order.
func Help(bindings []Keybinding) []string {
	describe := func(match func(Keybinding) bool) string {
		names := lo.Map(lo.Filter(bindings, func(b Keybinding, _ int) bool { return match(b) }), func(b Keybinding, _ int) string {
			return keyName(b)
		})
		return strings.Join(names, " ")
	}

	var lines []string
	for _, a := range event.Actions {
		a := a
		lines = append(lines, fmt.Sprintf("%-10s %s", a, describe(func(b Keybinding) bool { return !b.Quit && b.Action == a })))
	}
	lines = append(lines, fmt.Sprintf("%-10s %s", ActionQuit, describe(func(b Keybinding) bool { return b.Quit })))

	return lines
}

func keyName(b Keybinding) string {
	if b.Key != tcell.KeyRune {
		if name, ok := tcell.KeyNames[b.Key]; ok {
			return name
		}
		return fmt.Sprintf("Key[%d]", b.Key)
	}
	if b.Rune == ' ' {
		return "Space"
	}
	return string(b.Rune)
}
