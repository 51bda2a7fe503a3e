package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/m1ron1k/taskflow/internal/entity"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondError - единственное место, где ошибка превращается
// в HTTP-статус и тело ответа
func RespondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Server Error"

	var appErr *entity.Error
	if errors.As(err, &appErr) {
		status = appErr.Status
		message = appErr.Message
	} else {
		log.Printf("❌ Необработанная ошибка: %v", err)
	}

	respondJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
