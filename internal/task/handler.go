package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"todo-backend/internal/auth"
	"todo-backend/internal/httputil"
	"todo-backend/internal/logging"
)

// Handler contains HTTP handlers for task endpoints. All routes are mounted
// behind the bearer middleware and the owner guard; single-task handlers
// additionally re-check the fetched task's stored owner against the token
// subject, because a task id can be guessed under a different path prefix.
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// CreateRequest represents the task creation request body. There is
// deliberately no user_id field: the owner always comes from the token.
type CreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// UpdateRequest represents the task update request body
type UpdateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// List handles GET /{owner_id}/tasks
// @Summary      List tasks
// @Description  Retrieve all tasks belonging to the authenticated user
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        owner_id path string true "Owner ID"
// @Success      200 {array} Task
// @Failure      401 {object} httputil.ErrorResponse
// @Failure      403 {object} httputil.ErrorResponse
// @Router       /{owner_id}/tasks [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	subject, _ := auth.GetSubjectFromContext(r.Context())

	tasks, err := h.store.List(r.Context(), subject)
	if err != nil {
		logger.Error("failed to list tasks", "owner_id", subject, "error", err.Error())
		respondInternal(w)
		return
	}

	httputil.RespondJSON(w, tasks, http.StatusOK)
}

// Create handles POST /{owner_id}/tasks
// @Summary      Create a task
// @Description  Create a new task owned by the authenticated user
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        owner_id path string true "Owner ID"
// @Param        request body CreateRequest true "Task fields"
// @Success      201 {object} Task
// @Failure      401 {object} httputil.ErrorResponse
// @Failure      403 {object} httputil.ErrorResponse
// @Failure      422 {object} httputil.ErrorResponse
// @Router       /{owner_id}/tasks [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	subject, _ := auth.GetSubjectFromContext(r.Context())

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusUnprocessableEntity)
		return
	}

	title, description, ok := validateTaskInput(w, req.Title, req.Description)
	if !ok {
		return
	}

	created, err := h.store.Create(r.Context(), subject, title, description)
	if err != nil {
		logger.Error("failed to create task", "owner_id", subject, "error", err.Error())
		respondInternal(w)
		return
	}

	logger.Info("task created", "task_id", created.ID, "owner_id", subject)
	httputil.RespondJSON(w, created, http.StatusCreated)
}

// Get handles GET /{owner_id}/tasks/{id}
// @Summary      Get a task
// @Description  Retrieve a single task by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        owner_id path string true "Owner ID"
// @Param        id path int true "Task ID"
// @Success      200 {object} Task
// @Failure      401 {object} httputil.ErrorResponse
// @Failure      403 {object} httputil.ErrorResponse
// @Failure      404 {object} httputil.ErrorResponse
// @Router       /{owner_id}/tasks/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	found, ok := h.fetchOwnedTask(w, r)
	if !ok {
		return
	}

	httputil.RespondJSON(w, found, http.StatusOK)
}

// Update handles PUT /{owner_id}/tasks/{id}
// @Summary      Update a task
// @Description  Replace title, description and completed; updated_at is always refreshed
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        owner_id path string true "Owner ID"
// @Param        id path int true "Task ID"
// @Param        request body UpdateRequest true "Task fields"
// @Success      200 {object} Task
// @Failure      401 {object} httputil.ErrorResponse
// @Failure      403 {object} httputil.ErrorResponse
// @Failure      404 {object} httputil.ErrorResponse
// @Failure      422 {object} httputil.ErrorResponse
// @Router       /{owner_id}/tasks/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusUnprocessableEntity)
		return
	}

	title, description, ok := validateTaskInput(w, req.Title, req.Description)
	if !ok {
		return
	}

	found, ok := h.fetchOwnedTask(w, r)
	if !ok {
		return
	}

	updated, err := h.store.Update(r.Context(), found.ID, title, description, req.Completed)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "Task not found.", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to update task", "task_id", found.ID, "error", err.Error())
		respondInternal(w)
		return
	}

	httputil.RespondJSON(w, updated, http.StatusOK)
}

// Delete handles DELETE /{owner_id}/tasks/{id}
// @Summary      Delete a task
// @Description  Permanently delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        owner_id path string true "Owner ID"
// @Param        id path int true "Task ID"
// @Success      204 "No Content"
// @Failure      401 {object} httputil.ErrorResponse
// @Failure      403 {object} httputil.ErrorResponse
// @Failure      404 {object} httputil.ErrorResponse
// @Router       /{owner_id}/tasks/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	found, ok := h.fetchOwnedTask(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), found.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "Task not found.", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to delete task", "task_id", found.ID, "error", err.Error())
		respondInternal(w)
		return
	}

	logger.Info("task deleted", "task_id", found.ID)
	w.WriteHeader(http.StatusNoContent)
}

// ToggleCompletion handles PATCH /{owner_id}/tasks/{id}/complete
// @Summary      Toggle task completion
// @Description  Flip the completed flag
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        owner_id path string true "Owner ID"
// @Param        id path int true "Task ID"
// @Success      200 {object} Task
// @Failure      401 {object} httputil.ErrorResponse
// @Failure      403 {object} httputil.ErrorResponse
// @Failure      404 {object} httputil.ErrorResponse
// @Router       /{owner_id}/tasks/{id}/complete [patch]
func (h *Handler) ToggleCompletion(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	found, ok := h.fetchOwnedTask(w, r)
	if !ok {
		return
	}

	toggled, err := h.store.ToggleCompletion(r.Context(), found.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "Task not found.", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to toggle task completion", "task_id", found.ID, "error", err.Error())
		respondInternal(w)
		return
	}

	httputil.RespondJSON(w, toggled, http.StatusOK)
}

// fetchOwnedTask loads the task named in the path and applies the second
// ownership check: the fetched record's stored owner must match the token
// subject. Absent tasks are 404 regardless of the requester; existing tasks
// owned by someone else are 403, never 404. On failure the response has
// already been written and ok is false.
func (h *Handler) fetchOwnedTask(w http.ResponseWriter, r *http.Request) (*Task, bool) {
	logger := logging.GetLoggerFromContext(r.Context())
	subject, _ := auth.GetSubjectFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid task id", httputil.CodeInvalidTaskID, http.StatusUnprocessableEntity)
		return nil, false
	}

	found, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "Task not found.", httputil.CodeNotFound, http.StatusNotFound)
			return nil, false
		}
		logger.Error("failed to get task", "task_id", id, "error", err.Error())
		respondInternal(w)
		return nil, false
	}

	if found.UserID != subject {
		httputil.RespondErrorWithCode(w, auth.ErrForbidden.Error(), httputil.CodeForbidden, http.StatusForbidden)
		return nil, false
	}

	return found, true
}

// validateTaskInput runs the explicit validators and writes the 422 response
// itself on failure. Returns the trimmed title that gets stored.
func validateTaskInput(w http.ResponseWriter, title string, description *string) (string, *string, bool) {
	trimmed, err := ValidateTitle(title)
	if err != nil {
		code := httputil.CodeTitleRequired
		if errors.Is(err, ErrTitleTooLong) {
			code = httputil.CodeTitleTooLong
		}
		httputil.RespondErrorWithCode(w, err.Error(), code, http.StatusUnprocessableEntity)
		return "", nil, false
	}

	if err := ValidateDescription(description); err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeDescriptionTooLong, http.StatusUnprocessableEntity)
		return "", nil, false
	}

	return trimmed, description, true
}

func respondInternal(w http.ResponseWriter) {
	httputil.RespondErrorWithCode(w, "An unexpected error occurred. Please try again later.", httputil.CodeInternalError, http.StatusInternalServerError)
}
