package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"stafftrack_service/internal/entity"

	"github.com/jackc/pgx/v5"
)

type AttendanceController struct {
	deps *Dependens
}

func NewAttendanceController(deps *Dependens) *AttendanceController {
	return &AttendanceController{
		deps: deps,
	}
}

// parseClock accepts "HH:MM:SS" or "HH:MM" wall-clock strings.
func parseClock(s string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("15:04", s)
}

// DeriveFinalStatus computes the stored final status from the raw check-in
// status and the clock-in time. Absent always stays Absent; Present is
// On-time up to and including the cutoff and Late after it.
func DeriveFinalStatus(status, inTime, cutoff string) (string, error) {
	if status == entity.StatusAbsent {
		return entity.FinalAbsent, nil
	}

	if status != entity.StatusPresent {
		return "", fmt.Errorf("%w: status must be Present or Absent", ErrInvalidInput)
	}

	in, err := parseClock(inTime)
	if err != nil {
		return "", fmt.Errorf("%w: invalid in_time", ErrInvalidInput)
	}

	limit, err := parseClock(cutoff)
	if err != nil {
		return "", fmt.Errorf("invalid late cutoff: %w", err)
	}

	if in.After(limit) {
		return entity.FinalLate, nil
	}

	return entity.FinalOnTime, nil
}

// PostAttendance records a check-in. The (employee, date) pair is unique;
// a second check-in for the same day is a conflict, not an update.
func (c *AttendanceController) PostAttendance(req entity.PostAttendanceRequest) error {
	if req.EmployeeID == 0 || req.DateOfAttendance == "" || req.InTime == "" || req.Status == "" {
		c.deps.Logger.Warn("Missing required attendance fields")
		return ErrInvalidInput
	}

	if _, err := time.Parse("2006-01-02", req.DateOfAttendance); err != nil {
		c.deps.Logger.Warn("Invalid attendance date", slog.String("date", req.DateOfAttendance))
		return fmt.Errorf("%w: invalid date_of_attendance", ErrInvalidInput)
	}

	finalStatus, err := DeriveFinalStatus(req.Status, req.InTime, c.deps.Config.Attendance.LateCutoff)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var employeeExists int
	if err = c.deps.DB.QueryRow(ctx, "SELECT COUNT(*) FROM employee WHERE id = $1", req.EmployeeID).Scan(&employeeExists); err != nil {
		c.deps.Logger.Error("Error checking employee", slog.String("error", err.Error()))
		return err
	}

	if employeeExists == 0 {
		c.deps.Logger.Warn("Employee does not exist", slog.Any("employee_id", req.EmployeeID))
		return fmt.Errorf("%w: employee does not exist", ErrInvalidInput)
	}

	var duplicate int
	if err = c.deps.DB.QueryRow(ctx,
		"SELECT COUNT(*) FROM attendance WHERE employee_id = $1 AND date_of_attendance = $2::date",
		req.EmployeeID, req.DateOfAttendance,
	).Scan(&duplicate); err != nil {
		c.deps.Logger.Error("Error checking duplicate attendance", slog.String("error", err.Error()))
		return err
	}

	if duplicate > 0 {
		c.deps.Logger.Warn("Duplicate attendance", slog.Any("employee_id", req.EmployeeID), slog.String("date", req.DateOfAttendance))
		return ErrDuplicateAttendance
	}

	query := `INSERT INTO attendance (employee_id, date_of_attendance, in_time, out_time, status, final_status)
              VALUES ($1, $2::date, $3, '', $4, $5)`

	if _, err = c.deps.DB.Exec(ctx, query, req.EmployeeID, req.DateOfAttendance, req.InTime, req.Status, finalStatus); err != nil {
		c.deps.Logger.Error("Error inserting attendance", slog.String("error", err.Error()))
		return err
	}

	return nil
}

// UpdateOutTime sets the clock-out time on an existing record.
func (c *AttendanceController) UpdateOutTime(id uint64, outTime string) error {
	if outTime == "" {
		c.deps.Logger.Warn("Out time is required")
		return ErrInvalidInput
	}

	if _, err := parseClock(outTime); err != nil {
		c.deps.Logger.Warn("Invalid out time", slog.String("out_time", outTime))
		return fmt.Errorf("%w: invalid out_time", ErrInvalidInput)
	}

	result, err := c.deps.DB.Exec(context.Background(), "UPDATE attendance SET out_time = $1 WHERE id = $2", outTime, id)
	if err != nil {
		c.deps.Logger.Error("Error updating out time", slog.String("error", err.Error()))
		return err
	}

	if result.RowsAffected() == 0 {
		c.deps.Logger.Warn("Attendance record not found", slog.Any("id", id))
		return ErrNotFound
	}

	return nil
}

// TodayRecords returns all live records for the current date, joined with
// the employee names.
func (c *AttendanceController) TodayRecords() ([]entity.AttendanceRow, error) {
	query := `SELECT a.id,
                     e.name AS employee_name,
                     to_char(a.date_of_attendance, 'YYYY-MM-DD') AS attendance_date,
                     a.in_time, a.out_time, a.status, a.final_status
              FROM attendance a
              JOIN employee e ON a.employee_id = e.id
              WHERE a.date_of_attendance = CURRENT_DATE`

	return c.collectRows(query)
}

// Report returns the records in [start, end], optionally restricted to one
// employee.
func (c *AttendanceController) Report(params entity.ReportParams) ([]entity.AttendanceRow, error) {
	if params.StartDate == "" || params.EndDate == "" {
		c.deps.Logger.Warn("Report requires startDate and endDate")
		return nil, ErrInvalidInput
	}

	query := `SELECT a.id,
                     e.name AS employee_name,
                     to_char(a.date_of_attendance, 'YYYY-MM-DD') AS attendance_date,
                     a.in_time, a.out_time, a.status, a.final_status
              FROM attendance a
              JOIN employee e ON a.employee_id = e.id
              WHERE a.date_of_attendance BETWEEN $1::date AND $2::date`
	args := []any{params.StartDate, params.EndDate}

	if params.EmployeeID != nil {
		query += " AND a.employee_id = $3"
		args = append(args, *params.EmployeeID)
	}

	return c.collectRows(query, args...)
}

// EmployeeDetails returns one employee's attendance history, newest first.
func (c *AttendanceController) EmployeeDetails(employeeID uint64) ([]entity.AttendanceRecord, error) {
	query := `SELECT id, employee_id,
                     to_char(date_of_attendance, 'YYYY-MM-DD') AS date_of_attendance,
                     in_time, out_time, status, final_status
              FROM attendance
              WHERE employee_id = $1
              ORDER BY date_of_attendance DESC`

	rows, err := c.deps.DB.Query(context.Background(), query, employeeID)
	if err != nil {
		c.deps.Logger.Error("Error querying attendance details", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[entity.AttendanceRecord])
	if err != nil {
		c.deps.Logger.Error("Error collecting rows", slog.String("error", err.Error()))
		return nil, err
	}

	return records, nil
}

// Stats counts present/absent/late for one date.
func (c *AttendanceController) Stats(date string) (*entity.AttendanceStats, error) {
	if date == "" {
		c.deps.Logger.Warn("Stats requires a date")
		return nil, ErrInvalidInput
	}

	query := `SELECT COUNT(*) FILTER (WHERE status = 'Present') AS present,
                     COUNT(*) FILTER (WHERE status = 'Absent') AS absent,
                     COUNT(*) FILTER (WHERE final_status = 'Late') AS late
              FROM attendance
              WHERE date_of_attendance = $1::date`

	var stats entity.AttendanceStats
	if err := c.deps.DB.QueryRow(context.Background(), query, date).Scan(&stats.Present, &stats.Absent, &stats.Late); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.AttendanceStats{}, nil
		}

		c.deps.Logger.Error("Error querying attendance stats", slog.String("error", err.Error()))
		return nil, err
	}

	return &stats, nil
}

func (c *AttendanceController) collectRows(query string, args ...any) ([]entity.AttendanceRow, error) {
	rows, err := c.deps.DB.Query(context.Background(), query, args...)
	if err != nil {
		c.deps.Logger.Error("Error querying attendance", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[entity.AttendanceRow])
	if err != nil {
		c.deps.Logger.Error("Error collecting rows", slog.String("error", err.Error()))
		return nil, err
	}

	return records, nil
}
