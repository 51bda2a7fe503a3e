package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m1ron1k/taskflow/internal/entity"
	"github.com/m1ron1k/taskflow/internal/usecase"
)

type TaskHandler struct {
	taskService *usecase.TaskService
}

func NewTaskHandler(taskService *usecase.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks - список задач с фильтрами из query-параметров
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	query := &entity.TaskQuery{
		Status:   params.Get("status"),
		Priority: params.Get("priority"),
	}
	if params.Has("completed") {
		completed := params.Get("completed")
		query.Completed = &completed
	}

	tasks, err := h.taskService.ListTasks(r.Context(), query)
	if err != nil {
		RespondError(w, err)
		return
	}
	if tasks == nil {
		tasks = []entity.Task{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(tasks),
		"data":    tasks,
	})
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.GetTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    task,
	})
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req entity.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, entity.NewValidationError("Invalid JSON"))
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), &req)
	if err != nil {
		RespondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Task created successfully",
		"data":    task,
	})
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req entity.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, entity.NewValidationError("Invalid JSON"))
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		RespondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Task updated successfully",
		"data":    task,
	})
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.DeleteTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		RespondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Task deleted successfully",
	})
}

// ListByStatus - задачи одного статуса, ближайший дедлайн первым
func (h *TaskHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListByStatus(r.Context(), chi.URLParam(r, "status"))
	if err != nil {
		RespondError(w, err)
		return
	}
	if tasks == nil {
		tasks = []entity.Task{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(tasks),
		"data":    tasks,
	})
}

func (h *TaskHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.taskService.GetStatistics(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    stats,
	})
}
