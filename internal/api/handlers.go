package api

import (
	"net/http"

	"task-manager/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateTask handles POST /api/tasks
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTaskRequest(w, r, h.maxBodyBytes)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}

	in, parseErrors := req.ToInput()
	if parseErrors != nil {
		respondWithError(w, r, h.logger, parseErrors)
		return
	}

	task, err := h.service.CreateTask(r.Context(), in)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Location", TasksPath+"/"+task.ID.String())
	writeJSON(w, h.logger, http.StatusCreated, NewTaskResponse(task))
}

// ListTasks handles GET /api/tasks
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.ListTasks(r.Context())
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, NewTaskResponses(tasks))
}

// GetTask handles GET /api/tasks/{id}
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	task, err := h.service.GetTask(r.Context(), id)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, NewTaskResponse(task))
}

// UpdateTask handles PUT /api/tasks/{id}
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	req, err := decodeTaskRequest(w, r, h.maxBodyBytes)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}

	in, parseErrors := req.ToInput()
	if parseErrors != nil {
		respondWithError(w, r, h.logger, parseErrors)
		return
	}

	task, err := h.service.UpdateTask(r.Context(), id, in)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, NewTaskResponse(task))
}

// DeleteTask handles DELETE /api/tasks/{id}
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteTask(r.Context(), id); err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// taskID parses the {id} path parameter. A value that is not a UUID cannot
// name any task, so it is answered with 404.
func (h *Handler) taskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		respondWithError(w, r, h.logger, errors.NewNotFoundError("task", raw))
		return uuid.Nil, false
	}
	return id, true
}
