package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/m1ron1k/taskflow/internal/entity"
	"github.com/m1ron1k/taskflow/internal/infrastructure/auth"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserIDFromContext достает id пользователя, положенный Authenticate
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// ValidateID отсекает кривые идентификаторы до сервисного слоя
func ValidateID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := uuid.Parse(chi.URLParam(r, "id")); err != nil {
			RespondError(w, entity.NewValidationError("Invalid ID format"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Authenticate проверяет bearer-токен и кладет id пользователя в контекст
func Authenticate(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				RespondError(w, entity.NewAuthError("Not authorized"))
				return
			}

			userID, err := jwtManager.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				RespondError(w, entity.NewAuthError("Not authorized"))
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
		})
	}
}
