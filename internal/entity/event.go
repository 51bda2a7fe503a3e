package entity

import "time"

type ActionType string

const (
	ActionCreate ActionType = "CREATE"
	ActionUpdate ActionType = "UPDATE"
	ActionDelete ActionType = "DELETE"
)

// TaskEvent - событие изменения задачи, уходит в очередь для консьюмеров
type TaskEvent struct {
	Action    ActionType `json:"action"`
	TaskID    string     `json:"task_id"`
	Title     string     `json:"title"`
	Status    TaskStatus `json:"status"`
	Completed bool       `json:"completed"`
	Timestamp time.Time  `json:"timestamp"`
}
