package listview

import (
	"strconv"
	"strings"
)

type ActionKind int

const (
	ActionSave ActionKind = iota
	ActionAddLine
	ActionRemoveLine
)

// Action is the button pressed on a form with repeatable lines.
type Action struct {
	Kind  ActionKind
	Index int
}

// ParseAction reads the "accion" form value: "agregar", "quitar-<n>" or
// anything else for save.
func ParseAction(value string) Action {
	switch {
	case value == "agregar":
		return Action{Kind: ActionAddLine}
	case strings.HasPrefix(value, "quitar-"):
		i, err := strconv.Atoi(strings.TrimPrefix(value, "quitar-"))
		if err != nil || i < 0 {
			return Action{Kind: ActionSave}
		}
		return Action{Kind: ActionRemoveLine, Index: i}
	}
	return Action{Kind: ActionSave}
}

// AddLine appends a blank line.
func AddLine[L any](lines []L) []L {
	var blank L
	return append(lines, blank)
}

// RemoveLine drops line i. The last remaining line is never removed.
func RemoveLine[L any](lines []L, i int) []L {
	if len(lines) <= 1 || i < 0 || i >= len(lines) {
		return lines
	}
	out := make([]L, 0, len(lines)-1)
	out = append(out, lines[:i]...)
	return append(out, lines[i+1:]...)
}
