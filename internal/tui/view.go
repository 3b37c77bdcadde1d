package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Adaptive colors for light/dark terminal backgrounds
	accentColor = lipgloss.AdaptiveColor{Light: "#D6249F", Dark: "#FF79C6"}
	greenColor  = lipgloss.AdaptiveColor{Light: "#116620", Dark: "#50FA7B"}
	yellowColor = lipgloss.AdaptiveColor{Light: "#7D5A00", Dark: "#F1FA8C"}
	redColor    = lipgloss.AdaptiveColor{Light: "#B31D28", Dark: "#FF5555"}
	dimColor    = lipgloss.AdaptiveColor{Light: "#777777", Dark: "#6272A4"}
	cyanColor   = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#8BE9FD"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			PaddingLeft(1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(cyanColor).
			Bold(true).
			PaddingLeft(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	valueStyle = lipgloss.NewStyle().
			Foreground(greenColor)

	pausedStyle = lipgloss.NewStyle().
			Foreground(yellowColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(redColor).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			PaddingLeft(1)
)

// pad right-pads s to width with spaces (based on visual width, not byte count).
func pad(s string, width int) string {
	visual := lipgloss.Width(s)
	if visual >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visual)
}

func truncate(s string, limit int) string {
	if limit <= 1 || lipgloss.Width(s) <= limit {
		return s
	}
	r := []rune(s)
	if len(r) > limit-1 {
		r = r[:limit-1]
	}
	return string(r) + "…"
}

func row(b *strings.Builder, label, value string) {
	b.WriteString("   ")
	b.WriteString(labelStyle.Render(pad(label, 10)))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "xdoctl"
	if m.host != "" {
		title += " @ " + m.host
	}
	b.WriteString(titleStyle.Render(title))
	if m.paused {
		b.WriteString("  " + pausedStyle.Render("paused"))
	}
	b.WriteString("\n\n")

	if m.snap == nil && m.err == nil {
		b.WriteString("  Querying xdotool…\n\n")
	}

	if s := m.snap; s != nil {
		nameWidth := 60
		if m.width > 20 {
			nameWidth = m.width - 16
		}

		b.WriteString(sectionStyle.Render("Active window"))
		b.WriteString("\n")
		row(&b, "id", fmt.Sprintf("%d (0x%x)", s.Window, s.Window))
		row(&b, "name", truncate(s.Name, nameWidth))
		if s.PID != 0 {
			row(&b, "pid", fmt.Sprintf("%d", s.PID))
		} else {
			row(&b, "pid", "-")
		}
		row(&b, "position", fmt.Sprintf("%d,%d", s.X, s.Y))
		row(&b, "size", fmt.Sprintf("%dx%d", s.Width, s.Height))
		row(&b, "desktop", fmt.Sprintf("%d", s.Desktop))
		b.WriteString("\n")

		b.WriteString(sectionStyle.Render("Pointer"))
		b.WriteString("\n")
		x, _ := s.Mouse.Int("x")
		y, _ := s.Mouse.Int("y")
		screen, _ := s.Mouse.Int("screen")
		under, _ := s.Mouse.Int("window")
		row(&b, "position", fmt.Sprintf("%d,%d", x, y))
		row(&b, "screen", fmt.Sprintf("%d", screen))
		row(&b, "window", fmt.Sprintf("%d", under))
		b.WriteString("\n")

		b.WriteString(sectionStyle.Render("Display"))
		b.WriteString("\n")
		row(&b, "size", fmt.Sprintf("%dx%d", s.DisplayW, s.DisplayH))
		row(&b, "desktop", fmt.Sprintf("%d of %d", s.Current+1, s.Desktops))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}
	if m.status != "" {
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}
	if !m.polledAt.IsZero() {
		b.WriteString(helpStyle.Render("updated " + m.polledAt.Format("15:04:05")))
		b.WriteString("\n")
	}

	help := "r refresh · p pause · q quit"
	if m.last != 0 {
		help = fmt.Sprintf("enter activate %d · ", m.last) + help
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
