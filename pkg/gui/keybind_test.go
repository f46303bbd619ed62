package gui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDefaultKeybindings(t *testing.T) {
	bindings, err := ParseKeybindings(nil)
	require.NoError(t, err)

	expected := []struct {
		ev     *tcell.EventKey
		action event.GameAction
	}{
		{key(tcell.KeyLeft), event.ActionMoveLeft},
		{runeKey('h'), event.ActionMoveLeft},
		{key(tcell.KeyRight), event.ActionMoveRight},
		{runeKey('l'), event.ActionMoveRight},
		{key(tcell.KeyDown), event.ActionSoftDrop},
		{runeKey('j'), event.ActionSoftDrop},
		{key(tcell.KeyUp), event.ActionRotate},
		{runeKey('k'), event.ActionRotate},
		{runeKey('x'), event.ActionRotate},
		{runeKey(' '), event.ActionHardDrop},
	}
	for _, e := range expected {
		b, ok := Match(bindings, e.ev)
		require.True(t, ok, "no binding for %s", e.ev.Name())
		assert.False(t, b.Quit)
		assert.Equal(t, e.action, b.Action, "binding for %s", e.ev.Name())
	}

	for _, ev := range []*tcell.EventKey{runeKey('q'), key(tcell.KeyEscape), key(tcell.KeyCtrlC)} {
		b, ok := Match(bindings, ev)
		require.True(t, ok, "no binding for %s", ev.Name())
		assert.True(t, b.Quit)
	}

	_, ok := Match(bindings, runeKey('z'))
	assert.False(t, ok)
}

func TestKeybindingOverrides(t *testing.T) {
	bindings, err := ParseKeybindings(map[string][]string{
		"rotate":    {"z", "Enter"},
		"hard-drop": {"Space", "Ctrl-D"},
	})
	require.NoError(t, err)

	_, ok := Match(bindings, runeKey('x'))
	assert.False(t, ok, "overridden key still bound")

	for _, ev := range []*tcell.EventKey{runeKey('z'), key(tcell.KeyEnter)} {
		b, ok := Match(bindings, ev)
		require.True(t, ok)
		assert.Equal(t, event.ActionRotate, b.Action)
	}

	b, ok := Match(bindings, key(tcell.KeyCtrlD))
	require.True(t, ok)
	assert.Equal(t, event.ActionHardDrop, b.Action)

	b, ok = Match(bindings, key(tcell.KeyLeft))
	require.True(t, ok, "defaults of other actions are kept")
	assert.Equal(t, event.ActionMoveLeft, b.Action)
}

func TestKeybindingErrors(t *testing.T) {
	_, err := ParseKeybindings(map[string][]string{"teleport": {"t"}})
	assert.Error(t, err)

	_, err = ParseKeybindings(map[string][]string{"rotate": {"NoSuchKey"}})
	assert.Error(t, err)
}

func TestParseKey(t *testing.T) {
	k, r, err := ParseKey("space")
	require.NoError(t, err)
	assert.Equal(t, tcell.KeyRune, k)
	assert.Equal(t, ' ', r)

	k, _, err = ParseKey("Ctrl-C")
	require.NoError(t, err)
	assert.Equal(t, tcell.KeyCtrlC, k)

	k, _, err = ParseKey("PgDn")
	require.NoError(t, err)
	assert.Equal(t, tcell.KeyPgDn, k)

	k, r, err = ParseKey("é")
	require.NoError(t, err)
	assert.Equal(t, tcell.KeyRune, k)
	assert.Equal(t, 'é', r)
}

func TestHelp(t *testing.T) {
	bindings, err := ParseKeybindings(nil)
	require.NoError(t, err)

	help := Help(bindings)
	require.Len(t, help, len(event.Actions)+1)
	assert.Contains(t, help[0], "move-left")
	assert.Contains(t, help[0], "Left")
	assert.Contains(t, help[4], "Space")
	assert.Contains(t, help[5], "quit")
}
