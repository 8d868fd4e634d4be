package entity

import "time"

// Task statuses.
const (
	TaskPending   = "Pending"
	TaskCompleted = "Completed"
)

type Task struct {
	ID          uint64    `json:"id"`
	EmployeeID  uint64    `json:"employee_id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskDetail is a task joined with its assignee, the shape the admin task
// list returns.
type TaskDetail struct {
	TaskID        uint64    `json:"task_id"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	Status        string    `json:"status"`
	EmployeeID    uint64    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	EmployeeEmail string    `json:"employee_email"`
}

type TaskCreate struct {
	EmployeeID  uint64 `json:"employee_id"`
	Description string `json:"description"`
}

type TaskUpdate struct {
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
