package scheduler

import (
	"context"
	"log/slog"

	"stafftrack_service/internal/controllers"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Archiver moves attendance rows into attendance_archive on a cron
// schedule so the live table only ever holds the current day.
type Archiver struct {
	deps *controllers.Dependens
	cron *cron.Cron
}

func NewArchiver(deps *controllers.Dependens) *Archiver {
	return &Archiver{
		deps: deps,
		cron: cron.New(),
	}
}

// Start registers the sweep job and launches the cron loop. The
// schedule comes from the archive section of the config.
func (a *Archiver) Start() error {
	_, err := a.cron.AddFunc(a.deps.Config.Archive.Schedule, func() {
		if err := a.Sweep(context.Background()); err != nil {
			a.deps.Logger.Error("Attendance sweep failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		a.deps.Logger.Error("Error scheduling attendance sweep", slog.String("error", err.Error()))
		return err
	}

	a.cron.Start()
	a.deps.Logger.Info("Attendance archiver is running", slog.String("schedule", a.deps.Config.Archive.Schedule))

	return nil
}

func (a *Archiver) Stop() {
	<-a.cron.Stop().Done()
}

// Sweep copies every attendance row into attendance_archive and clears
// the live table in a single transaction, so a failure leaves the data
// untouched rather than duplicated or lost.
func (a *Archiver) Sweep(ctx context.Context) error {
	logger := a.deps.Logger.With(slog.String("sweep_id", uuid.NewString()))

	tx, err := a.deps.DB.Begin(ctx)
	if err != nil {
		logger.Error("Error starting sweep transaction", slog.String("error", err.Error()))
		return err
	}

	defer func() { _ = tx.Rollback(ctx) }()

	result, err := tx.Exec(ctx, `INSERT INTO attendance_archive (employee_id, date_of_attendance, in_time, out_time, status, final_status)
		SELECT employee_id, date_of_attendance, in_time, out_time, status, final_status FROM attendance`)
	if err != nil {
		logger.Error("Error copying attendance rows", slog.String("error", err.Error()))
		return err
	}

	if _, err = tx.Exec(ctx, "DELETE FROM attendance"); err != nil {
		logger.Error("Error clearing attendance table", slog.String("error", err.Error()))
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		logger.Error("Error committing sweep transaction", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Attendance sweep finished", slog.Int64("archived", result.RowsAffected()))

	return nil
}
