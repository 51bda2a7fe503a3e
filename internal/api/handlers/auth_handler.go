package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/m1ron1k/taskflow/internal/entity"
	"github.com/m1ron1k/taskflow/internal/usecase"
)

type AuthHandler struct {
	authService *usecase.AuthService
}

func NewAuthHandler(authService *usecase.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req entity.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, entity.NewValidationError("Invalid JSON"))
		return
	}

	resp, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		RespondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"token":   resp.Token,
		"data":    resp.User,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req entity.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, entity.NewValidationError("Invalid JSON"))
		return
	}

	token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		RespondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
	})
}

// Me - текущий пользователь по id из токена (кладет middleware)
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		RespondError(w, entity.NewAuthError("Not authorized"))
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), userID)
	if err != nil {
		RespondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    user,
	})
}
