package controllers

import (
	"context"
	"errors"
	"log/slog"

	"stafftrack_service/internal/entity"

	"github.com/jackc/pgx/v5"
)

type CategoryController struct {
	deps *Dependens
}

func NewCategoryController(deps *Dependens) *CategoryController {
	return &CategoryController{
		deps: deps,
	}
}

func (c *CategoryController) GetCategories() ([]entity.Category, error) {
	rows, err := c.deps.DB.Query(context.Background(), "SELECT id, name FROM category")
	if err != nil {
		c.deps.Logger.Error("Error querying categories", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[entity.Category])
	if err != nil {
		c.deps.Logger.Error("Error collecting rows", slog.String("error", err.Error()))
		return nil, err
	}

	return categories, nil
}

func (c *CategoryController) GetCategoryByID(id uint64) (*entity.Category, error) {
	rows, err := c.deps.DB.Query(context.Background(), "SELECT id, name FROM category WHERE id = $1", id)
	if err != nil {
		c.deps.Logger.Error("Error querying category", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	category, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entity.Category])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.deps.Logger.Warn("Category not found", slog.Any("id", id))
			return nil, ErrNotFound
		}

		c.deps.Logger.Error("Error collecting row", slog.String("error", err.Error()))
		return nil, err
	}

	return &category, nil
}

func (c *CategoryController) CreateCategory(name string) (*entity.Category, error) {
	if name == "" {
		c.deps.Logger.Warn("Category name is required")
		return nil, ErrInvalidInput
	}

	cat := entity.Category{Name: name}
	if err := c.deps.DB.QueryRow(context.Background(), "INSERT INTO category (name) VALUES ($1) RETURNING id", name).Scan(&cat.ID); err != nil {
		c.deps.Logger.Error("Error inserting category", slog.String("error", err.Error()))
		return nil, err
	}

	return &cat, nil
}

func (c *CategoryController) UpdateCategory(id uint64, name string) error {
	if name == "" {
		c.deps.Logger.Warn("Category name is required")
		return ErrInvalidInput
	}

	result, err := c.deps.DB.Exec(context.Background(), "UPDATE category SET name = $1 WHERE id = $2", name, id)
	if err != nil {
		c.deps.Logger.Error("Error updating category", slog.String("error", err.Error()))
		return err
	}

	if result.RowsAffected() == 0 {
		c.deps.Logger.Warn("Category not found", slog.Any("id", id))
		return ErrNotFound
	}

	return nil
}

// DeleteCategory refuses to delete a category that still has employees
// assigned. The existence check and the delete run in one transaction.
func (c *CategoryController) DeleteCategory(id uint64) error {
	ctx := context.Background()

	tx, err := c.deps.DB.Begin(ctx)
	if err != nil {
		c.deps.Logger.Error("Error starting transaction", slog.String("error", err.Error()))
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists int
	if err = tx.QueryRow(ctx, "SELECT COUNT(*) FROM category WHERE id = $1", id).Scan(&exists); err != nil {
		c.deps.Logger.Error("Error checking category", slog.String("error", err.Error()))
		return err
	}

	if exists == 0 {
		c.deps.Logger.Warn("Category not found", slog.Any("id", id))
		return ErrNotFound
	}

	var assigned int
	if err = tx.QueryRow(ctx, "SELECT COUNT(*) FROM employee WHERE category_id = $1", id).Scan(&assigned); err != nil {
		c.deps.Logger.Error("Error counting assigned employees", slog.String("error", err.Error()))
		return err
	}

	if assigned > 0 {
		c.deps.Logger.Warn("Category still in use", slog.Any("id", id), slog.Int("employees", assigned))
		return ErrCategoryInUse
	}

	if _, err = tx.Exec(ctx, "DELETE FROM category WHERE id = $1", id); err != nil {
		c.deps.Logger.Error("Error deleting category", slog.String("error", err.Error()))
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		c.deps.Logger.Error("Error committing transaction", slog.String("error", err.Error()))
		return err
	}

	return nil
}
