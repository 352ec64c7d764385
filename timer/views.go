package timer

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/fitfusion/fusion/internal/session"
	"github.com/fitfusion/fusion/internal/timeutil"
)

const padding = 2

type style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Clock     lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
}

func newStyle(dark bool) style {
	accent := lipgloss.Color("#2E7D32")
	if dark {
		accent = lipgloss.Color("#B0DB43")
	}

	return style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#12EAEA")),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		Clock:     lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder()),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F44336")),
	}
}

// clockTime formats a wall-clock time per the display.24hr_clock setting.
func (t *Timer) clockTime(at time.Time) string {
	if t.Opts.Display.TwentyFourHour {
		return at.Format("15:04")
	}

	return at.Format("03:04 PM")
}

func (t *Timer) stateLabel() string {
	switch t.sw.State() {
	case session.Running:
		return t.style.Secondary.Render("[Running]")
	case session.Paused:
		return t.style.Secondary.Render("[Paused]")
	case session.Finished:
		return t.style.Secondary.Render("[Finished]")
	}

	return t.style.Hint.Render("[Ready] press s to start")
}

func (t *Timer) header() string {
	var s strings.Builder

	if t.greeting != "" {
		s.WriteString(t.style.Main.Render(t.greeting) + "\n\n")
	}

	if t.notice != "" {
		s.WriteString(t.style.Success.Render(t.notice) + "\n\n")
	}

	return s.String()
}

func (t *Timer) stopwatchView() string {
	var s strings.Builder

	exercise, elapsed, label := t.sw.Exercise(), t.sw.Elapsed(), t.stateLabel()
	if t.pending != nil {
		exercise, elapsed = t.pending.Exercise, t.pending.Duration
		label = t.style.Error.Render("[Unsaved] press f to retry or esc to discard")
	}

	s.WriteString(t.header())
	s.WriteString(t.style.Main.Render(exercise))
	s.WriteString(" " + label)
	s.WriteString("\n\n")
	s.WriteString(t.style.Clock.Render(timeutil.FormatClock(elapsed)))

	if t.sw.State() != session.Idle && !t.startedAt.IsZero() {
		s.WriteString("\n" + t.style.Hint.Render("started at "+t.clockTime(t.startedAt)))
	}

	if t.err != nil {
		s.WriteString("\n\n" + t.style.Error.Render(t.err.Error()))
	}

	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.toggle,
		defaultKeymap.finish,
		defaultKeymap.abandon,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) View() string {
	if t.picker != nil {
		return t.style.Base.Render(t.header() + t.picker.View())
	}

	return t.style.Base.Render(t.stopwatchView())
}
