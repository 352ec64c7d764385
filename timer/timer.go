// Package timer runs the interactive workout stopwatch
package timer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/fitfusion/fusion/internal/catalog"
	"github.com/fitfusion/fusion/internal/config"
	"github.com/fitfusion/fusion/internal/models"
	"github.com/fitfusion/fusion/internal/session"
	"github.com/fitfusion/fusion/internal/workout"
)

// Store is the persistence needed by the workout screen.
type Store interface {
	AppendWorkout(user string, rec workout.Record) (models.StoredWorkout, error)
	Profile(user string) (models.Profile, error)
}

// tickMsg asks for a redraw after the stopwatch advanced.
type tickMsg int

// Timer is the bubbletea model of the workout screen.
type Timer struct {
	db       Store
	Opts     *config.Config
	sw       *session.Timer
	factory  *workout.Factory
	catalog  *catalog.Catalog
	picker   *huh.Form
	alert    func(rec workout.Record)
	err      error
	style    style
	help     help.Model
	choice   string
	greeting string
	notice   string
	logged   []workout.Record

	startedAt time.Time
	pending   *workout.Record
}

// Option configures a Timer.
type Option func(*Timer)

// WithStopwatch replaces the default stopwatch.
func WithStopwatch(sw *session.Timer) Option {
	return func(t *Timer) {
		t.sw = sw
	}
}

// WithFactory replaces the default record factory.
func WithFactory(f *workout.Factory) Option {
	return func(t *Timer) {
		t.factory = f
	}
}

// WithExercise skips the picker and selects name.
func WithExercise(name string) Option {
	return func(t *Timer) {
		t.choice = name
	}
}

// New creates the workout screen for the configured user.
func New(db Store, cat *catalog.Catalog, cfg *config.Config, opts ...Option) (*Timer, error) {
	t := &Timer{
		db:      db,
		Opts:    cfg,
		catalog: cat,
		help:    help.New(),
		style:   newStyle(cfg.Display.DarkTheme),
	}

	t.alert = t.postWorkout

	for _, opt := range opts {
		opt(t)
	}

	if t.sw == nil {
		t.sw = session.New()
	}

	if t.factory == nil {
		t.factory = workout.NewFactory(cat)
	}

	if p, err := db.Profile(cfg.User.ID); err == nil && p.Name != "" {
		t.greeting = fmt.Sprintf("Welcome back, %s!", p.Name)
	}

	if t.choice != "" {
		if _, err := cat.Lookup(t.choice); err != nil {
			return nil, err
		}

		if err := t.sw.Select(t.choice); err != nil {
			return nil, err
		}
	} else {
		t.picker = t.newPicker()
	}

	return t, nil
}

// Logged returns the workouts recorded during this run.
func (t *Timer) Logged() []workout.Record {
	return t.logged
}

func (t *Timer) Init() tea.Cmd {
	if t.picker != nil {
		return t.picker.Init()
	}

	return nil
}

// Run starts the workout screen and blocks until the user quits.
func Run(t *Timer) error {
	p := tea.NewProgram(t)

	t.sw.OnTick(func(elapsed int) {
		p.Send(tickMsg(elapsed))
	})

	_, err := p.Run()

	t.sw.OnTick(nil)
	t.sw.Reset()

	if t.pending != nil {
		slog.Warn(
			"quit with an unsaved workout",
			slog.String("exercise", t.pending.Exercise),
			slog.Int("duration", t.pending.Duration),
		)
	}

	slog.Info("workout screen closed", slog.Int("logged", len(t.logged)))

	return err
}
