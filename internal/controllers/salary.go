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

type SalaryController struct {
	deps *Dependens
}

func NewSalaryController(deps *Dependens) *SalaryController {
	return &SalaryController{
		deps: deps,
	}
}

// parseMonth accepts "2006-01" or a full "2006-01-02" date and normalizes
// to the first of the month.
func parseMonth(s string) (string, error) {
	if t, err := time.Parse("2006-01", s); err == nil {
		return t.Format("2006-01-02"), nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", err
	}

	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), nil
}

// Submit creates a salary request. Requests are deduplicated at calendar
// month granularity regardless of the day inside the month.
func (c *SalaryController) Submit(sub entity.SalaryRequestSubmission) (*entity.SalaryRequest, error) {
	if sub.EmployeeID == 0 || sub.RequestMonth == "" {
		c.deps.Logger.Warn("Employee ID and request month are required")
		return nil, ErrInvalidInput
	}

	monthDate, err := parseMonth(sub.RequestMonth)
	if err != nil {
		c.deps.Logger.Warn("Invalid request month", slog.String("request_month", sub.RequestMonth))
		return nil, fmt.Errorf("%w: invalid request_month", ErrInvalidInput)
	}

	ctx := context.Background()

	var exists int
	if err = c.deps.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM salary_requests
         WHERE employee_id = $1 AND date_trunc('month', request_month) = date_trunc('month', $2::date)`,
		sub.EmployeeID, monthDate,
	).Scan(&exists); err != nil {
		c.deps.Logger.Error("Error checking existing request", slog.String("error", err.Error()))
		return nil, err
	}

	if exists > 0 {
		c.deps.Logger.Warn("Duplicate salary request", slog.Any("employee_id", sub.EmployeeID), slog.String("month", monthDate))
		return nil, ErrDuplicateRequest
	}

	req := entity.SalaryRequest{
		EmployeeID:    sub.EmployeeID,
		Status:        entity.SalaryPending,
		ReceiptStatus: entity.ReceiptPending,
	}

	query := `INSERT INTO salary_requests (employee_id, request_month, status, receipt_status)
              VALUES ($1, $2::date, $3, $4)
              RETURNING id, to_char(request_month, 'YYYY-MM'), to_char(request_date, 'YYYY-MM-DD HH24:MI:SS')`

	if err = c.deps.DB.QueryRow(ctx, query,
		req.EmployeeID, monthDate, req.Status, req.ReceiptStatus,
	).Scan(&req.ID, &req.RequestMonth, &req.RequestDate); err != nil {
		c.deps.Logger.Error("Error inserting salary request", slog.String("error", err.Error()))
		return nil, err
	}

	return &req, nil
}

// UpdateStatus applies an admin decision. Approved and Rejected are the
// only admin-settable statuses; anything else is rejected.
func (c *SalaryController) UpdateStatus(id uint64, status string) error {
	if status != entity.SalaryApproved && status != entity.SalaryRejected {
		c.deps.Logger.Warn("Invalid salary status", slog.String("status", status))
		return fmt.Errorf("%w: status must be Approved or Rejected", ErrInvalidInput)
	}

	result, err := c.deps.DB.Exec(context.Background(), "UPDATE salary_requests SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		c.deps.Logger.Error("Error updating salary request", slog.String("error", err.Error()))
		return err
	}

	if result.RowsAffected() == 0 {
		c.deps.Logger.Warn("Salary request not found", slog.Any("id", id))
		return ErrNotFound
	}

	return nil
}

// UpdateReceipt records whether the employee has confirmed the payment.
// Only approved requests may have their receipt status changed.
func (c *SalaryController) UpdateReceipt(id uint64, receiptStatus string) error {
	switch receiptStatus {
	case entity.ReceiptPending, entity.ReceiptReceived, entity.ReceiptNotReceived:
	default:
		c.deps.Logger.Warn("Invalid receipt status", slog.String("receipt_status", receiptStatus))
		return fmt.Errorf("%w: receipt status must be 'Received', 'Not Received', or 'Pending'", ErrInvalidInput)
	}

	ctx := context.Background()

	var status string
	if err := c.deps.DB.QueryRow(ctx, "SELECT status FROM salary_requests WHERE id = $1", id).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.deps.Logger.Warn("Salary request not found", slog.Any("id", id))
			return ErrNotFound
		}

		c.deps.Logger.Error("Error checking salary request", slog.String("error", err.Error()))
		return err
	}

	if status != entity.SalaryApproved {
		c.deps.Logger.Warn("Receipt update on non-approved request", slog.Any("id", id), slog.String("status", status))
		return ErrReceiptNotAllowed
	}

	if _, err := c.deps.DB.Exec(ctx, "UPDATE salary_requests SET receipt_status = $1 WHERE id = $2", receiptStatus, id); err != nil {
		c.deps.Logger.Error("Error updating receipt status", slog.String("error", err.Error()))
		return err
	}

	return nil
}

// AdminList returns every request with the employee join and the derived
// display status the dashboard sorts by: approved-but-unconfirmed payments
// float to the top.
func (c *SalaryController) AdminList() ([]entity.AdminSalaryRow, error) {
	query := `SELECT sr.id,
                     to_char(sr.request_date, 'YYYY-MM-DD HH24:MI:SS') AS request_date,
                     to_char(sr.request_month, 'YYYY-MM') AS request_month,
                     sr.status, sr.receipt_status,
                     e.name AS employee_name,
                     e.email AS employee_email,
                     e.salary,
                     CASE
                       WHEN sr.status = 'Approved' AND sr.receipt_status = 'Not Received' THEN 'Payment Not Received'
                       WHEN sr.status = 'Approved' AND sr.receipt_status = 'Pending' THEN 'Receipt Pending'
                       WHEN sr.status = 'Approved' AND sr.receipt_status = 'Received' THEN 'Completed'
                       ELSE sr.status
                     END AS display_status,
                     (sr.status = 'Approved' AND sr.receipt_status IN ('Not Received', 'Pending')) AS needs_attention
              FROM salary_requests sr
              JOIN employee e ON sr.employee_id = e.id
              ORDER BY needs_attention DESC,
                       CASE
                         WHEN sr.status = 'Pending' THEN 1
                         WHEN sr.status = 'Approved' AND sr.receipt_status != 'Received' THEN 2
                         ELSE 3
                       END,
                       sr.request_date DESC`

	rows, err := c.deps.DB.Query(context.Background(), query)
	if err != nil {
		c.deps.Logger.Error("Error querying salary requests", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	requests, err := pgx.CollectRows(rows, pgx.RowToStructByName[entity.AdminSalaryRow])
	if err != nil {
		c.deps.Logger.Error("Error collecting rows", slog.String("error", err.Error()))
		return nil, err
	}

	return requests, nil
}

// EmployeeRequests returns one employee's request history, newest first.
func (c *SalaryController) EmployeeRequests(employeeID uint64) ([]entity.SalaryRequest, error) {
	query := `SELECT id, employee_id,
                     to_char(request_month, 'YYYY-MM') AS request_month,
                     to_char(request_date, 'YYYY-MM-DD HH24:MI:SS') AS request_date,
                     status, receipt_status
              FROM salary_requests
              WHERE employee_id = $1
              ORDER BY request_date DESC`

	rows, err := c.deps.DB.Query(context.Background(), query, employeeID)
	if err != nil {
		c.deps.Logger.Error("Error querying salary requests", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	requests, err := pgx.CollectRows(rows, pgx.RowToStructByName[entity.SalaryRequest])
	if err != nil {
		c.deps.Logger.Error("Error collecting rows", slog.String("error", err.Error()))
		return nil, err
	}

	return requests, nil
}
