package stats

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pterm/pterm"

	"github.com/fitfusion/fusion/internal/observability"
	"github.com/fitfusion/fusion/internal/workout"
	"github.com/fitfusion/fusion/report"
	"github.com/fitfusion/fusion/store"
)

const shutdownTimeout = 5 * time.Second

type TemplateData struct {
	User      string
	Stats     template.JS
	UpdatedAt string
}

//go:embed web/*
var web embed.FS

var tpl = template.Must(
	template.New("index.html").ParseFS(web, "web/index.html"),
)

type snapshot struct {
	updatedAt time.Time
	records   workout.Collection
	progress  Progress
}

// Server serves the progress of a single user over HTTP. It keeps the
// derivations for the most recent snapshot and recomputes them whenever the
// store reports a new workout.
type Server struct {
	db     store.DB
	router chi.Router
	latest atomic.Pointer[snapshot]
	user   string
}

type errorHandler func(w http.ResponseWriter, r *http.Request) error

func (h errorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h(w, r)
	if err != nil {
		slog.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)

		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// NewServer returns a server for user's progress.
func NewServer(db store.DB, user string) *Server {
	s := &Server{
		db:     db,
		user:   user,
		router: chi.NewRouter(),
	}

	s.update(nil)
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)

	s.router.Method(http.MethodGet, "/", errorHandler(s.index))
	s.router.Get("/api/progress", s.progress)
	s.router.Get("/api/report.csv", s.report)
	s.router.Handle("/metrics", promhttp.HandlerFor(
		observability.Registry,
		promhttp.HandlerOpts{},
	))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) update(c workout.Collection) {
	s.latest.Store(&snapshot{
		records:   c,
		progress:  Compute(c),
		updatedAt: time.Now(),
	})
}

// Subscribe loads the current collection, then keeps the server up to date
// until ctx ends. The returned channel is closed once the subscription
// has ended.
func (s *Server) Subscribe(ctx context.Context) (<-chan struct{}, error) {
	ch, err := s.db.Watch(ctx, s.user)
	if err != nil {
		return nil, err
	}

	s.update(<-ch)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for c := range ch {
			s.update(c)
			observability.RecordSnapshot()

			slog.Debug("progress recomputed", slog.Int("workouts", len(c)))
		}
	}()

	return done, nil
}

func (s *Server) index(w http.ResponseWriter, _ *http.Request) error {
	snap := s.latest.Load()

	b, err := json.Marshal(snap.progress)
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	err = tpl.Execute(&buf, &TemplateData{
		User:      s.user,
		Stats:     template.JS(b), //nolint:gosec // marshalled by encoding/json
		UpdatedAt: snap.updatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	_, err = w.Write(buf.Bytes())

	return err
}

func (s *Server) progress(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.latest.Load().progress)
}

func (s *Server) report(w http.ResponseWriter, _ *http.Request) {
	out, err := report.ExportCSV(s.latest.Load().records)
	if errors.Is(err, report.ErrEmptyCollection) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set(
		"Content-Disposition",
		"attachment; filename="+report.FileName,
	)

	_, _ = w.Write([]byte(out))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

// Serve runs the progress server on port until ctx is cancelled.
func Serve(ctx context.Context, db store.DB, user string, port uint) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s := NewServer(db, user)

	done, err := s.Subscribe(ctx)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		pterm.Info.Printfln("serving progress on http://localhost:%d", port)

		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil && err == nil {
		err = shutdownErr
	}

	cancel()
	<-done

	slog.Info("progress server stopped")

	return err
}
