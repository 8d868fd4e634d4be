package controllers

import "errors"

// Business rule violations are distinct sentinel errors so the HTTP layer
// can map them to 400/404 instead of a generic 500.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrDuplicateAttendance = errors.New("attendance record already exists for this employee on the given date")
	ErrDuplicateRequest    = errors.New("a salary request for this month already exists")
	ErrCategoryInUse       = errors.New("cannot delete category with assigned employees")
	ErrLastAdmin           = errors.New("cannot delete the last admin account")
	ErrTaskNotCompleted    = errors.New("task not found or not completed")
	ErrReceiptNotAllowed   = errors.New("can only update receipt status for approved requests")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)
