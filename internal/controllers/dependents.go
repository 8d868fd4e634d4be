package controllers

import (
	"context"
	"log/slog"
	"time"

	"stafftrack_service/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

type Controllers struct {
	AuthController       *AuthController
	AdminController      *AdminController
	CategoryController   *CategoryController
	EmployeeController   *EmployeeController
	AttendanceController *AttendanceController
	SalaryController     *SalaryController
	TaskController       *TaskController
}

func NewControllers(deps *Dependens) *Controllers {
	return &Controllers{
		AuthController:       NewAuthController(deps),
		AdminController:      NewAdminController(deps),
		CategoryController:   NewCategoryController(deps),
		EmployeeController:   NewEmployeeController(deps),
		AttendanceController: NewAttendanceController(deps),
		SalaryController:     NewSalaryController(deps),
		TaskController:       NewTaskController(deps),
	}
}

type Dependens struct {
	DB interface {
		Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
		QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
		Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
		Begin(ctx context.Context) (pgx.Tx, error)
	}
	Redis interface {
		Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
		Get(ctx context.Context, key string) *redis.StringCmd
		Del(ctx context.Context, keys ...string) *redis.IntCmd
	}
	Logger *slog.Logger
	Config *config.Config
}
