// Package observability exposes the Prometheus metrics recorded by fusion
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "fusion"

// Rejection reasons.
const (
	ReasonTooShort   = "too_short"
	ReasonNoExercise = "no_exercise"
)

var (
	workoutsLogged = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "workouts",
		Name:      "logged_total",
		Help:      "Number of workouts logged, by exercise.",
	}, []string{"exercise"})
	workoutSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "workouts",
		Name:      "duration_seconds",
		Help:      "Active duration of logged workouts.",
		Buckets:   []float64{30, 60, 300, 600, 1200, 1800, 3600, 5400},
	})
	caloriesBurned = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "workouts",
		Name:      "calories_total",
		Help:      "Estimated kilocalories across all logged workouts.",
	})
	workoutsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "workouts",
		Name:      "rejected_total",
		Help:      "Finish attempts that did not produce a workout record, by reason.",
	}, []string{"reason"})
	unrecognizedExercises = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unrecognized_exercises_total",
		Help:      "Intensity lookups that fell back to the default coefficient.",
	})
	snapshotsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "progress",
		Name:      "snapshots_total",
		Help:      "Workout snapshots aggregated by the progress server.",
	})
)

// Registry holds the fusion collectors plus the Go runtime and process
// collectors.
var Registry = newRegistry()

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		workoutsLogged,
		workoutSeconds,
		caloriesBurned,
		workoutsRejected,
		unrecognizedExercises,
		snapshotsProcessed,
	)

	return reg
}

// RecordWorkout counts a logged workout.
func RecordWorkout(exercise string, seconds, calories int) {
	workoutsLogged.WithLabelValues(exercise).Inc()
	workoutSeconds.Observe(float64(seconds))
	caloriesBurned.Add(float64(calories))
}

// RecordRejection counts a finish attempt that was refused.
func RecordRejection(reason string) {
	workoutsRejected.WithLabelValues(reason).Inc()
}

// RecordUnrecognizedExercise counts a fallback to the default intensity.
func RecordUnrecognizedExercise() {
	unrecognizedExercises.Inc()
}

// RecordSnapshot counts an aggregated snapshot.
func RecordSnapshot() {
	snapshotsProcessed.Inc()
}
