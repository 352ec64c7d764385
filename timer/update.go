package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/fitfusion/fusion/internal/observability"
	"github.com/fitfusion/fusion/internal/session"
	"github.com/fitfusion/fusion/report"
)

type keymap struct {
	toggle  key.Binding
	finish  key.Binding
	abandon key.Binding
	quit    key.Binding
}

var defaultKeymap = keymap{
	toggle: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start/pause"),
	),
	finish: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "finish"),
	),
	abandon: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "abandon"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// handlePicker forwards messages to the exercise picker until a choice is
// made.
func (t *Timer) handlePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return t, tea.Quit
	}

	form, cmd := t.picker.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.picker = f
	}

	switch t.picker.State {
	case huh.StateCompleted:
		t.picker = nil
		t.err = t.sw.Select(t.choice)

		return t, nil
	case huh.StateAborted:
		return t, tea.Quit
	}

	return t, cmd
}

func (t *Timer) handleToggle() tea.Cmd {
	t.notice = ""

	if t.sw.Running() {
		t.err = t.sw.Pause()
		return nil
	}

	idle := t.sw.State() == session.Idle

	t.err = t.sw.Start()
	if t.err == nil && idle {
		t.startedAt = time.Now()
	}

	return nil
}

// handleFinish finalizes the workout, stores it and returns to the picker.
// A record that could not be stored stays pending and the next finish retries
// the write instead of finalizing again.
func (t *Timer) handleFinish() tea.Cmd {
	if t.pending == nil {
		rec, err := t.factory.Finalize(t.sw.Exercise(), t.sw)
		if err != nil {
			t.err = err
			return nil
		}

		t.pending = &rec
	}

	rec := *t.pending

	_, err := t.db.AppendWorkout(t.Opts.User.ID, rec)
	if err != nil {
		slog.Error(
			"workout not stored",
			slog.String("exercise", rec.Exercise),
			slog.Int("duration", rec.Duration),
			slog.Any("error", err),
		)

		t.err = errUnsavedWorkout.Wrap(err)

		return nil
	}

	t.pending = nil

	observability.RecordWorkout(rec.Exercise, rec.Duration, rec.Calories)

	t.logged = append(t.logged, rec)
	t.err = nil
	t.notice = report.LoggedMessage(rec.Calories)
	t.choice = ""
	t.picker = t.newPicker()

	alert := t.alert

	return tea.Batch(t.picker.Init(), func() tea.Msg {
		alert(rec)
		return nil
	})
}

func (t *Timer) handleAbandon() tea.Cmd {
	if t.pending != nil {
		slog.Warn(
			"unsaved workout discarded",
			slog.String("exercise", t.pending.Exercise),
			slog.Int("duration", t.pending.Duration),
		)

		t.pending = nil
	} else if t.sw.State() == session.Idle && t.choice == "" {
		return nil
	}

	slog.Info(
		"workout abandoned",
		slog.String("exercise", t.sw.Exercise()),
		slog.Int("elapsed", t.sw.Elapsed()),
	)

	t.sw.Reset()

	t.err = nil
	t.notice = ""
	t.choice = ""
	t.picker = t.newPicker()

	return t.picker.Init()
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t.picker != nil {
		return t.handlePicker(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		return t, nil

	case tea.KeyMsg:
		slog.Debug("key press", slog.String("msg", spew.Sdump(msg)))

		switch {
		case key.Matches(msg, defaultKeymap.toggle):
			return t, t.handleToggle()

		case key.Matches(msg, defaultKeymap.finish):
			return t, t.handleFinish()

		case key.Matches(msg, defaultKeymap.abandon):
			return t, t.handleAbandon()

		case key.Matches(msg, defaultKeymap.quit):
			t.sw.Reset()

			return t, tea.Batch(tea.ClearScreen, tea.Quit)
		}

	case tea.WindowSizeMsg:
		t.help.Width = msg.Width

		return t, nil
	}

	return t, nil
}
