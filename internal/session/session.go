// Package session implements the workout stopwatch: a small state machine
// that counts active seconds for one workout attempt
package session

import (
	"sync"
	"time"
)

// MinDuration is the shortest workout (in seconds) that can be finished.
const MinDuration = 10

// DefaultInterval is the wall-clock time between two ticks.
const DefaultInterval = time.Second

// State is the lifecycle position of a Timer.
type State int

const (
	Idle State = iota
	Running
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	}

	return "unknown"
}

// Clock schedules single-shot callbacks. AfterFunc returns a function that
// cancels the callback if it has not fired yet.
type Clock interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces the wall clock used to schedule ticks.
func WithClock(c Clock) Option {
	return func(t *Timer) {
		t.clock = c
	}
}

// WithInterval changes the tick interval. Each tick still counts as one
// second of activity.
func WithInterval(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.interval = d
		}
	}
}

// Timer tracks the active seconds of a single workout attempt. It is safe for
// concurrent use, although only one goroutine is expected to drive it.
type Timer struct {
	clock    Clock
	stop     func() bool
	onTick   func(elapsed int)
	exercise string
	interval time.Duration
	elapsed  int
	gen      uint64
	state    State
	mu       sync.Mutex
}

// New returns an idle timer.
func New(opts ...Option) *Timer {
	t := &Timer{
		clock:    realClock{},
		interval: DefaultInterval,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// OnTick registers fn to be called with the elapsed seconds after every tick.
// fn runs on the clock's goroutine, outside the timer's lock.
func (t *Timer) OnTick(fn func(elapsed int)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.onTick = fn
}

// Select chooses the exercise for the next attempt. The choice is locked once
// the timer has started.
func (t *Timer) Select(exercise string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Idle {
		return ErrSelectionLocked
	}

	t.exercise = exercise

	return nil
}

// Start begins counting from Idle, or resumes counting from Paused.
func (t *Timer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.exercise == "" {
		return ErrNoExerciseSelected
	}

	if t.state != Idle && t.state != Paused {
		return ErrInvalidTransition.Fmt("start", t.state)
	}

	t.state = Running
	t.schedule()

	return nil
}

// Pause stops counting. The elapsed value is preserved exactly.
func (t *Timer) Pause() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Running {
		return ErrInvalidTransition.Fmt("pause", t.state)
	}

	t.cancel()
	t.state = Paused

	return nil
}

// Finish freezes the elapsed time. A workout shorter than MinDuration cannot
// be finished; in that case the timer is left exactly as it was so that the
// user can carry on.
func (t *Timer) Finish() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Running && t.state != Paused {
		return ErrInvalidTransition.Fmt("finish", t.state)
	}

	if t.elapsed < MinDuration {
		return ErrWorkoutTooShort.Fmt(MinDuration, t.elapsed)
	}

	t.cancel()
	t.state = Finished

	return nil
}

// Reset discards the attempt and returns the timer to Idle.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancel()
	t.state = Idle
	t.elapsed = 0
	t.exercise = ""
}

// Elapsed returns the active seconds counted so far.
func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.elapsed
}

// State returns the current lifecycle state.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// Running reports whether the timer is counting.
func (t *Timer) Running() bool {
	return t.State() == Running
}

// Exercise returns the selected exercise name.
func (t *Timer) Exercise() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.exercise
}

// schedule arranges the next tick. Callers must hold the lock.
func (t *Timer) schedule() {
	gen := t.gen

	t.stop = t.clock.AfterFunc(t.interval, func() {
		t.tick(gen)
	})
}

// cancel invalidates any pending tick. Callers must hold the lock.
func (t *Timer) cancel() {
	t.gen++

	if t.stop != nil {
		t.stop()
		t.stop = nil
	}
}

func (t *Timer) tick(gen uint64) {
	t.mu.Lock()

	// a tick scheduled before the last pause, finish or reset
	if gen != t.gen || t.state != Running {
		t.mu.Unlock()
		return
	}

	t.elapsed++
	elapsed := t.elapsed
	fn := t.onTick

	t.schedule()
	t.mu.Unlock()

	if fn != nil {
		fn(elapsed)
	}
}
