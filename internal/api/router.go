package api

import (
	"log/slog"
	"net/http"
	"time"

	"task-manager/internal/logging"
	"task-manager/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxBodyBytes bounds request bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

// TasksPath is the collection route; a single task lives at TasksPath/{id}.
const TasksPath = "/api/tasks"

// Option configures a Handler
type Option func(*Handler)

// WithLogger sets the structured logger used for access and error logs
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithMaxBodyBytes limits the size of request bodies
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// WithBuildInfo sets the version and store driver reported by the health endpoint
func WithBuildInfo(version, storeDriver string) Option {
	return func(h *Handler) {
		h.version = version
		h.storeDriver = storeDriver
	}
}

// WithClock replaces the time source of the health endpoint
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

// Handler serves the task HTTP API
type Handler struct {
	service      services.TaskService
	logger       *slog.Logger
	maxBodyBytes int64
	version      string
	storeDriver  string
	now          func() time.Time
	started      time.Time
}

// NewHandler creates a Handler backed by the task service
func NewHandler(service services.TaskService, opts ...Option) *Handler {
	h := &Handler{
		service:      service,
		logger:       logging.Discard(),
		maxBodyBytes: DefaultMaxBodyBytes,
		version:      "dev",
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.started = h.now()
	return h
}

// NewRouter builds the full HTTP router for the task API
func NewRouter(service services.TaskService, opts ...Option) http.Handler {
	return NewHandler(service, opts...).Routes()
}

// Routes returns a chi router with middleware and every route mounted
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(AccessLog(h.logger))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrors(w, h.logger, http.StatusNotFound, msgRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeErrors(w, h.logger, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	r.Get("/healthz", h.Health)

	r.Post(TasksPath, h.CreateTask)
	r.Get(TasksPath, h.ListTasks)
	r.Get(TasksPath+"/{id}", h.GetTask)
	r.Put(TasksPath+"/{id}", h.UpdateTask)
	r.Delete(TasksPath+"/{id}", h.DeleteTask)

	return r
}
