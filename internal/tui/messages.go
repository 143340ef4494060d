package tui

import "time"

// statusTimeout is how long a status message stays visible.
const statusTimeout = 4 * time.Second

// ErrorMsg reports an error to show in the status bar.
type ErrorMsg struct {
	Error string
}

// StatusMsg shows an informational message in the status bar.
type StatusMsg struct {
	Text string
}

// clearStatusMsg clears the status message it was scheduled for. Later
// messages bump the sequence so stale clears are ignored.
type clearStatusMsg struct {
	seq int
}

// QuitMsg signals the TUI should quit.
type QuitMsg struct {
	Reason string
}
