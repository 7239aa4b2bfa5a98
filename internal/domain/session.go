package domain

import "strings"

// DefaultName is assigned when the user gives no name before the prompt expires.
const DefaultName = "Anon"

type State int

const (
	StateIdle State = iota
	StateNaming
	StateMenuActive
	StateSubMode
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateNaming:
		return "naming"
	case StateMenuActive:
		return "menu"
	case StateSubMode:
		return "submode"
	default:
		return "unknown"
	}
}

type Session struct {
	Name   string
	Active bool
}

// IsDisconnect reports whether input is one of the disconnect keywords.
func IsDisconnect(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "q", "quit", "exit", "disconnect":
		return true
	default:
		return false
	}
}

// SessionName returns the trimmed name or DefaultName when it is empty.
func SessionName(input string) string {
	name := strings.TrimSpace(input)
	if name == "" {
		return DefaultName
	}
	return name
}
