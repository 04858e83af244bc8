package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// NoticeLevel selects the style of the status bar message
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
	NoticeError
)

// StatusBarProps is everything the status bar shows
type StatusBarProps struct {
	Width       int
	Project     string
	Position    string // e.g. "2/3"
	Live        bool   // subscribed to the event hub
	Notice      string
	NoticeLevel NoticeLevel
}

// RenderStatusBar renders the project name and the current notice on the
// left and the hub connection on the right
func RenderStatusBar(s Styles, props StatusBarProps) string {
	left := s.Title.Render(props.Project)
	if props.Position != "" {
		left += " " + s.Subtle.Render("("+props.Position+")")
	}
	if props.Notice != "" {
		style := s.Info
		switch props.NoticeLevel {
		case NoticeWarning:
			style = s.Warning
		case NoticeError:
			style = s.Error
		}
		left += "  " + style.Render(props.Notice)
	}

	right := s.Subtle.Render("○ offline")
	if props.Live {
		right = s.Info.Render("● live")
	}
	right += s.Subtle.Render("  press ? for help")

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gapWidth), right)
}
