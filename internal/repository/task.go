package repository

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m1ron1k/taskflow/internal/entity"
)

const taskColumns = "id, title, description, status, priority, due_date, completed, created_at, updated_at"

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var task entity.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.DueDate,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Create - вставка задачи, дефолты статуса и приоритета - на нашей стороне
func (r *TaskRepository) Create(ctx context.Context, req *entity.CreateTaskRequest) (*entity.Task, error) {
	status := req.Status
	if status == "" {
		status = entity.StatusPending
	}

	priority := req.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}

	var dueDate interface{}
	if req.DueDate != "" {
		parsed, err := entity.ParseDate(req.DueDate)
		if err != nil {
			return nil, entity.NewValidationError("Invalid date format")
		}
		dueDate = parsed
	}

	query := `
	INSERT INTO tasks (id, title, description, status, priority, due_date, completed)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + taskColumns

	return scanTask(r.db.QueryRow(ctx, query,
		uuid.New().String(),
		strings.TrimSpace(req.Title),
		strings.TrimSpace(req.Description),
		status,
		priority,
		dueDate,
		req.Completed,
	))
}

func (r *TaskRepository) GetById(ctx context.Context, id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return task, nil
}

// Update - частичное обновление. Собираем SET только из переданных полей,
// enum-поля и дату перепроверяем здесь - это контракт хранилища.
func (r *TaskRepository) Update(ctx context.Context, id string, req *entity.UpdateTaskRequest) (*entity.Task, error) {
	setClause := ""
	args := []interface{}{}
	argIndex := 1

	addSet := func(field string, value interface{}) {
		if argIndex > 1 {
			setClause += ", "
		}
		setClause += field + " = $" + strconv.Itoa(argIndex)
		args = append(args, value)
		argIndex++
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, entity.NewValidationError("Title is required")
		}
		if utf8.RuneCountInString(title) > 100 {
			return nil, entity.NewValidationError("Title cannot exceed 100 characters")
		}
		addSet("title", title)
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if utf8.RuneCountInString(description) > 500 {
			return nil, entity.NewValidationError("Description cannot exceed 500 characters")
		}
		addSet("description", description)
	}

	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, entity.NewValidationError("Invalid status value")
		}
		addSet("status", *req.Status)
	}

	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, entity.NewValidationError("Invalid priority value")
		}
		addSet("priority", *req.Priority)
	}

	if req.DueDate != nil {
		if *req.DueDate == "" {
			addSet("due_date", nil)
		} else {
			parsed, err := entity.ParseDate(*req.DueDate)
			if err != nil {
				return nil, entity.NewValidationError("Invalid date format")
			}
			addSet("due_date", parsed)
		}
	}

	if req.Completed != nil {
		addSet("completed", *req.Completed)
	}

	if argIndex > 1 {
		setClause += ", "
	}
	setClause += "updated_at = CURRENT_TIMESTAMP"

	query := `
	UPDATE tasks
	SET ` + setClause + `
	WHERE id = $` + strconv.Itoa(argIndex) + `
	RETURNING ` + taskColumns
	args = append(args, id)

	task, err := scanTask(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return task, nil
}

// Delete - удаляем и возвращаем удаленную запись, nil если записи не было
func (r *TaskRepository) Delete(ctx context.Context, id string) (*entity.Task, error) {
	query := `DELETE FROM tasks WHERE id = $1 RETURNING ` + taskColumns

	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return task, nil
}

// List - список задач с фильтрацией, свежие сверху
func (r *TaskRepository) List(ctx context.Context, filter entity.TaskFilter) ([]entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`

	conds := []string{}
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}

	if filter.Priority != "" {
		args = append(args, filter.Priority)
		conds = append(conds, "priority = $"+strconv.Itoa(len(args)))
	}

	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		conds = append(conds, "completed = $"+strconv.Itoa(len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	query += " ORDER BY created_at DESC"

	return r.queryTasks(ctx, query, args...)
}

// ListByStatus - задачи одного статуса, ближайший дедлайн первым
func (r *TaskRepository) ListByStatus(ctx context.Context, status entity.TaskStatus) ([]entity.Task, error) {
	query := `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE status = $1
	ORDER BY due_date ASC NULLS LAST
	`

	return r.queryTasks(ctx, query, status)
}

// CountByStatus - количество задач по каждому статусу
func (r *TaskRepository) CountByStatus(ctx context.Context) (map[entity.TaskStatus]int, error) {
	query := `SELECT status, COUNT(*) FROM tasks GROUP BY status`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[entity.TaskStatus]int)
	for rows.Next() {
		var status entity.TaskStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

func (r *TaskRepository) queryTasks(ctx context.Context, query string, args ...interface{}) ([]entity.Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []entity.Task
	for rows.Next() {
		var task entity.Task
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.Priority,
			&task.DueDate,
			&task.Completed,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}
