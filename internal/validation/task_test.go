package validation

import (
	"strings"
	"testing"

	"github.com/m1ron1k/taskflow/internal/entity"
)

func TestValidateTask(t *testing.T) {
	tests := []struct {
		name    string
		req     entity.CreateTaskRequest
		wantErr string
	}{
		{
			name:    "valid minimal",
			req:     entity.CreateTaskRequest{Title: "Buy milk"},
			wantErr: "",
		},
		{
			name: "valid full",
			req: entity.CreateTaskRequest{
				Title:    "Buy milk",
				Status:   entity.StatusInProgress,
				Priority: entity.PriorityHigh,
				DueDate:  "2026-09-01T12:00:00Z",
			},
			wantErr: "",
		},
		{
			name:    "valid date without time",
			req:     entity.CreateTaskRequest{Title: "Buy milk", DueDate: "2026-09-01"},
			wantErr: "",
		},
		{
			name:    "missing title",
			req:     entity.CreateTaskRequest{},
			wantErr: "Title is required",
		},
		{
			name:    "whitespace title",
			req:     entity.CreateTaskRequest{Title: "   "},
			wantErr: "Title is required",
		},
		{
			name:    "invalid status",
			req:     entity.CreateTaskRequest{Title: "Buy milk", Status: "done"},
			wantErr: "Invalid status value",
		},
		{
			name:    "invalid priority",
			req:     entity.CreateTaskRequest{Title: "Buy milk", Priority: "urgent"},
			wantErr: "Invalid priority value",
		},
		{
			name:    "invalid date",
			req:     entity.CreateTaskRequest{Title: "Buy milk", DueDate: "tomorrow"},
			wantErr: "Invalid date format",
		},
		{
			name: "title wins over status",
			req:  entity.CreateTaskRequest{Title: " ", Status: "done"},
			// Правила применяются по порядку: первое сообщение решает
			wantErr: "Title is required",
		},
		{
			name:    "status wins over priority",
			req:     entity.CreateTaskRequest{Title: "Buy milk", Status: "done", Priority: "urgent"},
			wantErr: "Invalid status value",
		},
		{
			name:    "priority wins over date",
			req:     entity.CreateTaskRequest{Title: "Buy milk", Priority: "urgent", DueDate: "tomorrow"},
			wantErr: "Invalid priority value",
		},
		{
			name:    "title too long",
			req:     entity.CreateTaskRequest{Title: strings.Repeat("x", 101)},
			wantErr: "Title cannot exceed 100 characters",
		},
		{
			// 100 кириллических символов - 200 байт, но лимит в символах
			name:    "multibyte title at limit",
			req:     entity.CreateTaskRequest{Title: strings.Repeat("я", 100)},
			wantErr: "",
		},
		{
			name:    "multibyte title too long",
			req:     entity.CreateTaskRequest{Title: strings.Repeat("я", 101)},
			wantErr: "Title cannot exceed 100 characters",
		},
		{
			name: "description too long",
			req:  entity.CreateTaskRequest{Title: "Buy milk", Description: strings.Repeat("x", 501)},

			wantErr: "Description cannot exceed 500 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTask(&tt.req)

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("Expected error %q, got nil", tt.wantErr)
			}
			if err.Error() != tt.wantErr {
				t.Errorf("Expected error %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateTaskIsPure(t *testing.T) {
	req := entity.CreateTaskRequest{Title: "  Buy milk  ", Description: " note "}
	copyReq := req

	if err := ValidateTask(&req); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if req != copyReq {
		t.Error("Expected validation to leave the request untouched")
	}
}
