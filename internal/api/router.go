package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m1ron1k/taskflow/internal/api/handlers"
	"github.com/m1ron1k/taskflow/internal/infrastructure/auth"
	"github.com/m1ron1k/taskflow/internal/usecase"
)

// HealthChecker - проверка живости базы для /health
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

func NewRouter(
	taskService *usecase.TaskService,
	authService *usecase.AuthService,
	jwtManager *auth.JWTManager,
	db HealthChecker,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	taskHandler := handlers.NewTaskHandler(taskService)
	authHandler := handlers.NewAuthHandler(authService)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.HealthCheck(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"error","message":"Database unavailable"}`))
			return
		}
		w.Write([]byte(`{"status":"ok","message":"API is running"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.With(handlers.Authenticate(jwtManager)).Get("/me", authHandler.Me)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/statistics", taskHandler.GetStatistics)
			r.Get("/status/{status}", taskHandler.ListByStatus)
			r.Get("/", taskHandler.ListTasks)
			r.Post("/", taskHandler.CreateTask)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(handlers.ValidateID)
				r.Get("/", taskHandler.GetTask)
				r.Put("/", taskHandler.UpdateTask)
				r.Delete("/", taskHandler.DeleteTask)
			})
		})
	})

	return r
}
