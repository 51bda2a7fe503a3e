package usecase

import (
	"context"
	"log"
	"time"

	"github.com/m1ron1k/taskflow/internal/entity"
	"github.com/m1ron1k/taskflow/internal/repository"
	"github.com/m1ron1k/taskflow/internal/validation"
)

// EventPublisher интерфейс для публикации событий задач
type EventPublisher interface {
	PublishTaskEvent(ctx context.Context, event *entity.TaskEvent) error
}

type TaskService struct {
	taskRepo repository.ITaskRepository
	events   EventPublisher
}

func NewTaskService(taskRepo repository.ITaskRepository, events EventPublisher) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		events:   events,
	}
}

// ListTasks - список задач по сырым query-параметрам.
// status и priority уходят в фильтр как есть, completed становится
// true только от литерала "true" и только если параметр был передан.
func (s *TaskService) ListTasks(ctx context.Context, query *entity.TaskQuery) ([]entity.Task, error) {
	filter := entity.TaskFilter{}

	if query.Status != "" {
		filter.Status = entity.TaskStatus(query.Status)
	}

	if query.Priority != "" {
		filter.Priority = entity.TaskPriority(query.Priority)
	}

	if query.Completed != nil {
		completed := *query.Completed == "true"
		filter.Completed = &completed
	}

	return s.taskRepo.List(ctx, filter)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*entity.Task, error) {
	task, err := s.taskRepo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, entity.NewNotFoundError("Task not found")
	}

	return task, nil
}

func (s *TaskService) CreateTask(ctx context.Context, req *entity.CreateTaskRequest) (*entity.Task, error) {
	if err := validation.ValidateTask(req); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.publishEvent(entity.ActionCreate, task)

	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, req *entity.UpdateTaskRequest) (*entity.Task, error) {
	// 1. Проверяем что задача существует
	existing, err := s.taskRepo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, entity.NewNotFoundError("Task not found")
	}

	// 2. Статус completed всегда тянет за собой completed=true
	if req.Status != nil && *req.Status == entity.StatusCompleted {
		completed := true
		req.Completed = &completed
	}

	// 3. Обновляем задачу
	updated, err := s.taskRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Задачу удалили между проверкой и обновлением
		return nil, entity.NewInternalError("Failed to update task")
	}

	s.publishEvent(entity.ActionUpdate, updated)

	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	task, err := s.taskRepo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return entity.NewNotFoundError("Task not found")
	}

	if _, err := s.taskRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(entity.ActionDelete, task)

	return nil
}

// ListByStatus - задачи одного статуса, отсортированные по дедлайну.
// Здесь статус приходит из path-параметра, поэтому проверяем его сами.
func (s *TaskService) ListByStatus(ctx context.Context, status string) ([]entity.Task, error) {
	taskStatus := entity.TaskStatus(status)
	if !taskStatus.Valid() {
		return nil, entity.NewValidationError("Invalid status")
	}

	return s.taskRepo.ListByStatus(ctx, taskStatus)
}

// GetStatistics - сворачиваем группировку хранилища в итоговый отчет.
// Неизвестный статус попадает только в total: enum-констрейнт в БД
// делает эту ветку недостижимой при нормальной работе.
func (s *TaskService) GetStatistics(ctx context.Context) (*entity.TaskStatistics, error) {
	counts, err := s.taskRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &entity.TaskStatistics{}
	for status, count := range counts {
		stats.Total += count

		switch status {
		case entity.StatusPending:
			stats.Pending = count
		case entity.StatusInProgress:
			stats.InProgress = count
		case entity.StatusCompleted:
			stats.Completed = count
		}
	}

	return stats, nil
}

// Асинхронная отправка события в очередь, ошибки только логируем
func (s *TaskService) publishEvent(action entity.ActionType, task *entity.Task) {
	event := &entity.TaskEvent{
		Action:    action,
		TaskID:    task.ID,
		Title:     task.Title,
		Status:    task.Status,
		Completed: task.Completed,
		Timestamp: time.Now(),
	}

	go func() {
		if err := s.events.PublishTaskEvent(context.Background(), event); err != nil {
			log.Printf("❌ Ошибка отправки события задачи: %v", err)
		}
	}()
}
