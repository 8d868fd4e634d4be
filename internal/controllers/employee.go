package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"stafftrack_service/internal/entity"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeController struct {
	deps *Dependens
}

func NewEmployeeController(deps *Dependens) *EmployeeController {
	return &EmployeeController{
		deps: deps,
	}
}

func (c *EmployeeController) GetEmployees() ([]entity.EmployeeDetail, error) {
	query := `SELECT e.id, e.name, e.email, e.password, e.salary, e.address, e.category_id, c.name AS category_name
              FROM employee e
              LEFT JOIN category c ON e.category_id = c.id
              ORDER BY e.id`

	rows, err := c.deps.DB.Query(context.Background(), query)
	if err != nil {
		c.deps.Logger.Error("Error querying employees", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	employees, err := pgx.CollectRows(rows, pgx.RowToStructByName[entity.EmployeeDetail])
	if err != nil {
		c.deps.Logger.Error("Error collecting rows", slog.String("error", err.Error()))
		return nil, err
	}

	for i := range employees {
		employees[i].Password = nil
	}

	return employees, nil
}

func (c *EmployeeController) GetEmployeeByID(id uint64) (*entity.EmployeeDetail, error) {
	query := `SELECT e.id, e.name, e.email, e.password, e.salary, e.address, e.category_id, c.name AS category_name
              FROM employee e
              LEFT JOIN category c ON e.category_id = c.id
              WHERE e.id = $1`

	rows, err := c.deps.DB.Query(context.Background(), query, id)
	if err != nil {
		c.deps.Logger.Error("Error querying employee", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	employee, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entity.EmployeeDetail])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.deps.Logger.Warn("Employee not found", slog.Any("id", id))
			return nil, ErrNotFound
		}

		c.deps.Logger.Error("Error collecting row", slog.String("error", err.Error()))
		return nil, err
	}

	employee.Password = nil

	return &employee, nil
}

func (c *EmployeeController) CreateEmployee(emp entity.Employee) (*entity.Employee, error) {
	if emp.Name == "" || emp.Email == "" || emp.Password == nil || *emp.Password == "" {
		c.deps.Logger.Warn("Required fields: name, email, password")
		return nil, ErrInvalidInput
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(*emp.Password), bcrypt.DefaultCost)
	if err != nil {
		c.deps.Logger.Error("Error hashing password", slog.String("error", err.Error()))
		return nil, err
	}

	hashPassword := string(passwordHash)
	emp.Password = &hashPassword

	var exists int
	if err = c.deps.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM employee WHERE email = $1", emp.Email).Scan(&exists); err != nil {
		c.deps.Logger.Error("Error checking uniqueness", slog.String("error", err.Error()))
		return nil, err
	}

	if exists > 0 {
		c.deps.Logger.Warn("Employee already exists", slog.String("email", emp.Email))
		return nil, fmt.Errorf("%w: employee with this email already exists", ErrInvalidInput)
	}

	query := `INSERT INTO employee (name, email, password, salary, address, category_id)
              VALUES ($1, $2, $3, $4, $5, $6)
              RETURNING id`

	if err = c.deps.DB.QueryRow(context.Background(), query,
		emp.Name, emp.Email, emp.Password, emp.Salary, emp.Address, emp.CategoryID,
	).Scan(&emp.ID); err != nil {
		c.deps.Logger.Error("Error inserting employee", slog.String("error", err.Error()))
		return nil, err
	}

	emp.Password = nil

	return &emp, nil
}

// EditEmployee applies a partial update: only the fields present in the
// request are written. A supplied password is re-hashed.
func (c *EmployeeController) EditEmployee(id uint64, edit entity.EmployeeEdit) error {
	sets := []string{}
	args := []any{}
	argIdx := 1

	appendSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if edit.Name != nil {
		appendSet("name", *edit.Name)
	}
	if edit.Email != nil {
		appendSet("email", *edit.Email)
	}
	if edit.Address != nil {
		appendSet("address", *edit.Address)
	}
	if edit.Salary != nil {
		appendSet("salary", *edit.Salary)
	}
	if edit.CategoryID != nil {
		appendSet("category_id", *edit.CategoryID)
	}
	if edit.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*edit.Password), bcrypt.DefaultCost)
		if err != nil {
			c.deps.Logger.Error("Error hashing password", slog.String("error", err.Error()))
			return err
		}
		appendSet("password", string(hash))
	}

	if len(sets) == 0 {
		c.deps.Logger.Warn("No fields to update", slog.Any("id", id))
		return ErrInvalidInput
	}

	query := "UPDATE employee SET "
	for i, set := range sets {
		if i > 0 {
			query += ", "
		}
		query += set
	}
	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, id)

	result, err := c.deps.DB.Exec(context.Background(), query, args...)
	if err != nil {
		c.deps.Logger.Error("Error updating employee", slog.String("error", err.Error()))
		return err
	}

	if result.RowsAffected() == 0 {
		c.deps.Logger.Warn("Employee not found", slog.Any("id", id))
		return ErrNotFound
	}

	return nil
}

// DeleteEmployee removes the employee and its salary requests and tasks in
// one transaction.
func (c *EmployeeController) DeleteEmployee(id uint64) error {
	ctx := context.Background()

	tx, err := c.deps.DB.Begin(ctx)
	if err != nil {
		c.deps.Logger.Error("Error starting transaction", slog.String("error", err.Error()))
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, "DELETE FROM salary_requests WHERE employee_id = $1", id); err != nil {
		c.deps.Logger.Error("Error deleting salary requests", slog.String("error", err.Error()))
		return err
	}

	if _, err = tx.Exec(ctx, "DELETE FROM tasks WHERE employee_id = $1", id); err != nil {
		c.deps.Logger.Error("Error deleting tasks", slog.String("error", err.Error()))
		return err
	}

	result, err := tx.Exec(ctx, "DELETE FROM employee WHERE id = $1", id)
	if err != nil {
		c.deps.Logger.Error("Error deleting employee", slog.String("error", err.Error()))
		return err
	}

	if result.RowsAffected() == 0 {
		c.deps.Logger.Warn("Employee not found", slog.Any("id", id))
		return ErrNotFound
	}

	if err = tx.Commit(ctx); err != nil {
		c.deps.Logger.Error("Error committing transaction", slog.String("error", err.Error()))
		return err
	}

	return nil
}

// SalarySum returns the total salary across all employees, for the admin
// dashboard counters.
func (c *EmployeeController) SalarySum() (int64, error) {
	var sum int64
	if err := c.deps.DB.QueryRow(context.Background(), "SELECT COALESCE(SUM(salary), 0) FROM employee").Scan(&sum); err != nil {
		c.deps.Logger.Error("Error summing salaries", slog.String("error", err.Error()))
		return 0, err
	}

	return sum, nil
}
