package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/m1ron1k/taskflow/internal/entity"
)

// ValidateTask проверяет данные перед созданием задачи.
// Правила применяются по порядку, возвращается первая сработавшая.
// Чистая функция, вызывается только на создании - обновления
// перепроверяет слой хранилища.
func ValidateTask(req *entity.CreateTaskRequest) error {
	title := strings.TrimSpace(req.Title)

	if title == "" {
		return entity.NewValidationError("Title is required")
	}

	if req.Status != "" && !req.Status.Valid() {
		return entity.NewValidationError("Invalid status value")
	}

	if req.Priority != "" && !req.Priority.Valid() {
		return entity.NewValidationError("Invalid priority value")
	}

	if req.DueDate != "" {
		if _, err := entity.ParseDate(req.DueDate); err != nil {
			return entity.NewValidationError("Invalid date format")
		}
	}

	// Лимиты считаем в символах, не в байтах
	if utf8.RuneCountInString(title) > 100 {
		return entity.NewValidationError("Title cannot exceed 100 characters")
	}

	if utf8.RuneCountInString(strings.TrimSpace(req.Description)) > 500 {
		return entity.NewValidationError("Description cannot exceed 500 characters")
	}

	return nil
}
