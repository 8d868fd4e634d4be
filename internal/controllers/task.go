package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"stafftrack_service/internal/entity"

	"github.com/jackc/pgx/v5"
)

type TaskController struct {
	deps *Dependens
}

func NewTaskController(deps *Dependens) *TaskController {
	return &TaskController{
		deps: deps,
	}
}

func (c *TaskController) CreateTask(req entity.TaskCreate) (*entity.Task, error) {
	if req.EmployeeID == 0 || req.Description == "" {
		c.deps.Logger.Warn("Employee ID and description are required")
		return nil, ErrInvalidInput
	}

	task := entity.Task{
		EmployeeID:  req.EmployeeID,
		Description: req.Description,
		Status:      entity.TaskPending,
	}

	query := `INSERT INTO tasks (employee_id, description, status)
              VALUES ($1, $2, $3)
              RETURNING id, created_at`

	if err := c.deps.DB.QueryRow(context.Background(), query, task.EmployeeID, task.Description, task.Status).Scan(&task.ID, &task.CreatedAt); err != nil {
		c.deps.Logger.Error("Error inserting task", slog.String("error", err.Error()))
		return nil, err
	}

	return &task, nil
}

func (c *TaskController) GetTasks() ([]entity.TaskDetail, error) {
	query := `SELECT t.id AS task_id, t.description, t.created_at, t.status,
                     e.id AS employee_id, e.name AS employee_name, e.email AS employee_email
              FROM tasks t
              JOIN employee e ON t.employee_id = e.id
              ORDER BY t.created_at DESC`

	rows, err := c.deps.DB.Query(context.Background(), query)
	if err != nil {
		c.deps.Logger.Error("Error querying tasks", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[entity.TaskDetail])
	if err != nil {
		c.deps.Logger.Error("Error collecting rows", slog.String("error", err.Error()))
		return nil, err
	}

	return tasks, nil
}

func (c *TaskController) GetTaskByID(id uint64) (*entity.TaskDetail, error) {
	query := `SELECT t.id AS task_id, t.description, t.created_at, t.status,
                     e.id AS employee_id, e.name AS employee_name, e.email AS employee_email
              FROM tasks t
              JOIN employee e ON t.employee_id = e.id
              WHERE t.id = $1`

	rows, err := c.deps.DB.Query(context.Background(), query, id)
	if err != nil {
		c.deps.Logger.Error("Error querying task", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	task, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entity.TaskDetail])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.deps.Logger.Warn("Task not found", slog.Any("id", id))
			return nil, ErrNotFound
		}

		c.deps.Logger.Error("Error collecting row", slog.String("error", err.Error()))
		return nil, err
	}

	return &task, nil
}

func (c *TaskController) EmployeeTasks(employeeID uint64) ([]entity.Task, error) {
	query := `SELECT id, employee_id, description, status, created_at
              FROM tasks
              WHERE employee_id = $1
              ORDER BY created_at DESC`

	rows, err := c.deps.DB.Query(context.Background(), query, employeeID)
	if err != nil {
		c.deps.Logger.Error("Error querying tasks", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[entity.Task])
	if err != nil {
		c.deps.Logger.Error("Error collecting rows", slog.String("error", err.Error()))
		return nil, err
	}

	return tasks, nil
}

// UpdateTask changes the description and/or the status. Status only
// accepts Pending or Completed.
func (c *TaskController) UpdateTask(id uint64, upd entity.TaskUpdate) error {
	if upd.Description == nil && upd.Status == nil {
		c.deps.Logger.Warn("At least one field is required for update")
		return ErrInvalidInput
	}

	if upd.Status != nil && *upd.Status != entity.TaskPending && *upd.Status != entity.TaskCompleted {
		c.deps.Logger.Warn("Invalid task status", slog.String("status", *upd.Status))
		return fmt.Errorf("%w: status must be 'Pending' or 'Completed'", ErrInvalidInput)
	}

	query := "UPDATE tasks SET "
	args := []any{}
	argIdx := 1

	if upd.Description != nil {
		query += fmt.Sprintf("description = $%d", argIdx)
		args = append(args, *upd.Description)
		argIdx++
	}
	if upd.Status != nil {
		if len(args) > 0 {
			query += ", "
		}
		query += fmt.Sprintf("status = $%d", argIdx)
		args = append(args, *upd.Status)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, id)

	result, err := c.deps.DB.Exec(context.Background(), query, args...)
	if err != nil {
		c.deps.Logger.Error("Error updating task", slog.String("error", err.Error()))
		return err
	}

	if result.RowsAffected() == 0 {
		c.deps.Logger.Warn("Task not found", slog.Any("id", id))
		return ErrNotFound
	}

	return nil
}

// DeleteTask removes a task, but only once it has been completed. The
// status guard lives in the DELETE itself so the check and the delete
// cannot race.
func (c *TaskController) DeleteTask(id uint64) error {
	result, err := c.deps.DB.Exec(context.Background(), "DELETE FROM tasks WHERE id = $1 AND status = 'Completed'", id)
	if err != nil {
		c.deps.Logger.Error("Error deleting task", slog.String("error", err.Error()))
		return err
	}

	if result.RowsAffected() == 0 {
		c.deps.Logger.Warn("Task not found or not completed", slog.Any("id", id))
		return ErrTaskNotCompleted
	}

	return nil
}
