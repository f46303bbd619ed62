package event

import (
	"fmt"
	"strings"
)

type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
	ActionHardDrop
)

var actionNames = map[GameAction]string{
	ActionMoveLeft:  "move-left",
	ActionMoveRight: "move-right",
	ActionSoftDrop:  "soft-drop",
	ActionRotate:    "rotate",
	ActionHardDrop:  "hard-drop",
}

// Actions lists every playable action in display order.
var Actions = []GameAction{ActionMoveLeft, ActionMoveRight, ActionSoftDrop, ActionRotate, ActionHardDrop}

func (a GameAction) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}

	return "unknown"
}

// ParseAction maps a name such as "hard-drop" back to its action.
func ParseAction(name string) (GameAction, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}

	return ActionUnknown, fmt.Errorf("unknown action %q", name)
}
