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

type AdminController struct {
	deps *Dependens
}

func NewAdminController(deps *Dependens) *AdminController {
	return &AdminController{
		deps: deps,
	}
}

func (c *AdminController) GetAdmins() ([]entity.Admin, error) {
	rows, err := c.deps.DB.Query(context.Background(), "SELECT id, email FROM admin ORDER BY id")
	if err != nil {
		c.deps.Logger.Error("Error querying admins", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	admins, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[entity.Admin])
	if err != nil {
		c.deps.Logger.Error("Error collecting rows", slog.String("error", err.Error()))
		return nil, err
	}

	return admins, nil
}

func (c *AdminController) AdminCount() (int64, error) {
	var count int64
	if err := c.deps.DB.QueryRow(context.Background(), "SELECT COUNT(id) FROM admin").Scan(&count); err != nil {
		c.deps.Logger.Error("Error counting admins", slog.String("error", err.Error()))
		return 0, err
	}

	return count, nil
}

func (c *AdminController) CreateAdmin(email, password string) (*entity.Admin, error) {
	if email == "" || password == "" {
		c.deps.Logger.Warn("Email and password are required")
		return nil, ErrInvalidInput
	}

	ctx := context.Background()

	var exists int
	if err := c.deps.DB.QueryRow(ctx, "SELECT COUNT(*) FROM admin WHERE email = $1", email).Scan(&exists); err != nil {
		c.deps.Logger.Error("Error checking admin uniqueness", slog.String("error", err.Error()))
		return nil, err
	}

	if exists > 0 {
		c.deps.Logger.Warn("Admin already exists", slog.String("email", email))
		return nil, fmt.Errorf("%w: admin with this email already exists", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.deps.Logger.Error("Error hashing password", slog.String("error", err.Error()))
		return nil, err
	}

	admin := entity.Admin{Email: email}
	if err = c.deps.DB.QueryRow(ctx, "INSERT INTO admin (email, password) VALUES ($1, $2) RETURNING id", email, string(hash)).Scan(&admin.ID); err != nil {
		c.deps.Logger.Error("Error inserting admin", slog.String("error", err.Error()))
		return nil, err
	}

	return &admin, nil
}

// UpdateAdmin changes the email and optionally the password. A password
// change requires the current password to verify first.
func (c *AdminController) UpdateAdmin(id uint64, upd entity.AdminUpdate) error {
	if upd.Email == "" {
		c.deps.Logger.Warn("Email is required")
		return ErrInvalidInput
	}

	ctx := context.Background()

	if upd.Password == nil {
		result, err := c.deps.DB.Exec(ctx, "UPDATE admin SET email = $1 WHERE id = $2", upd.Email, id)
		if err != nil {
			c.deps.Logger.Error("Error updating admin", slog.String("error", err.Error()))
			return err
		}

		if result.RowsAffected() == 0 {
			c.deps.Logger.Warn("Admin not found", slog.Any("id", id))
			return ErrNotFound
		}

		return nil
	}

	if upd.CurrentPassword == nil {
		c.deps.Logger.Warn("Current password is required for password change")
		return ErrInvalidInput
	}

	var currentHash string
	if err := c.deps.DB.QueryRow(ctx, "SELECT password FROM admin WHERE id = $1", id).Scan(&currentHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.deps.Logger.Warn("Admin not found", slog.Any("id", id))
			return ErrNotFound
		}

		c.deps.Logger.Error("Error querying admin", slog.String("error", err.Error()))
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(currentHash), []byte(*upd.CurrentPassword)); err != nil {
		c.deps.Logger.Warn("Current password is incorrect", slog.Any("id", id))
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
	if err != nil {
		c.deps.Logger.Error("Error hashing password", slog.String("error", err.Error()))
		return err
	}

	if _, err = c.deps.DB.Exec(ctx, "UPDATE admin SET email = $1, password = $2 WHERE id = $3", upd.Email, string(hash), id); err != nil {
		c.deps.Logger.Error("Error updating admin", slog.String("error", err.Error()))
		return err
	}

	return nil
}

// DeleteAdmin refuses to remove the last remaining admin account.
func (c *AdminController) DeleteAdmin(id uint64) error {
	ctx := context.Background()

	var count int64
	if err := c.deps.DB.QueryRow(ctx, "SELECT COUNT(*) FROM admin").Scan(&count); err != nil {
		c.deps.Logger.Error("Error counting admins", slog.String("error", err.Error()))
		return err
	}

	if count <= 1 {
		c.deps.Logger.Warn("Refusing to delete the last admin", slog.Any("id", id))
		return ErrLastAdmin
	}

	result, err := c.deps.DB.Exec(ctx, "DELETE FROM admin WHERE id = $1", id)
	if err != nil {
		c.deps.Logger.Error("Error deleting admin", slog.String("error", err.Error()))
		return err
	}

	if result.RowsAffected() == 0 {
		c.deps.Logger.Warn("Admin not found", slog.Any("id", id))
		return ErrNotFound
	}

	return nil
}
