package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username, _ := utils.GetUsernameFromContext(ctx)

	tasks, err := h.services.TaskService.ListTasks(ctx, username)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username, _ := utils.GetUsernameFromContext(ctx)

	var input models.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.TaskService.CreateTask(ctx, username, input.Task())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username, _ := utils.GetUsernameFromContext(ctx)

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.TaskUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, err := h.services.TaskService.UpdateTask(ctx, username, taskID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username, _ := utils.GetUsernameFromContext(ctx)

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.TaskService.DeleteTask(ctx, username, taskID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// taskIDFromRequest parses the {id} path parameter.
func taskIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	taskID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTaskID, raw)
	}

	return taskID, nil
}
