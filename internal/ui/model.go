// Package ui renders short-lived notifications on top of a bubbletea view.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the notification currently shown.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// NotificationMsg sets the notification text.
type NotificationMsg string

// ClearNotificationMsg is a Bubbletea message used to reset the visual notification state.
type ClearNotificationMsg struct {
	at time.Time
}

// Notify returns a tea.Cmd that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

// clearAfter clears the notification shown at t after a fixed duration.
func clearAfter(t time.Time) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return ClearNotificationMsg{at: t}
	})
}

// Update processes incoming messages to modify the notification state.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = string(msg)
		m.notifiedAt = time.Now()
		return clearAfter(m.notifiedAt)
	case ClearNotificationMsg:
		// A newer notification keeps its own timer.
		if msg.at.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// Text returns the notification currently shown.
func (m *Model) Text() string {
	return m.notification
}

// View appends the current notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	notifier := "\033[90m" + m.notification + "\033[0m"

	lines[len(lines)-1] = lines[len(lines)-1] + "  " + notifier
	return strings.Join(lines, "\n")
}
