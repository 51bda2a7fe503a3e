package repository

import (
	"context"

	"github.com/m1ron1k/taskflow/internal/entity"
)

// ITaskRepository - интерфейс для TaskRepository.
// Отсутствие записи - это nil без ошибки, не error.
type ITaskRepository interface {
	Create(ctx context.Context, req *entity.CreateTaskRequest) (*entity.Task, error)
	GetById(ctx context.Context, id string) (*entity.Task, error)
	Update(ctx context.Context, id string, req *entity.UpdateTaskRequest) (*entity.Task, error)
	Delete(ctx context.Context, id string) (*entity.Task, error)
	List(ctx context.Context, filter entity.TaskFilter) ([]entity.Task, error)
	ListByStatus(ctx context.Context, status entity.TaskStatus) ([]entity.Task, error)
	CountByStatus(ctx context.Context) (map[entity.TaskStatus]int, error)
}

// IUserRepository - интерфейс для UserRepository
type IUserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*entity.User, error)
	GetById(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
