package api

import (
	"net/http"
	"strconv"

	"stafftrack_service/internal/controllers"
	"stafftrack_service/internal/entity"
)

// PostAttendance records a check-in, deriving the final status from the
// in-time and the configured late cutoff.
func (s *Server) PostAttendance(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	var req entity.PostAttendanceRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.controllers.AttendanceController.PostAttendance(req); err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusCreated, "Attendance recorded")
}

// UpdateOutTime sets the clock-out time on an existing record.
func (s *Server) UpdateOutTime(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		OutTime string `json:"out_time"`
	}
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.controllers.AttendanceController.UpdateOutTime(id, req.OutTime); err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, "Out time updated")
}

// AttendanceRecords lists today's attendance rows.
func (s *Server) AttendanceRecords(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	records, err := s.controllers.AttendanceController.TodayRecords()
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, records)
}

// AttendanceReport returns rows in a date range, optionally filtered by
// employee. The client renders its own CSV or PDF from these rows.
func (s *Server) AttendanceReport(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	params := entity.ReportParams{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	}

	if raw := r.URL.Query().Get("employeeId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			s.failure(w, http.StatusBadRequest, "Invalid employeeId")
			return
		}

		params.EmployeeID = &id
	}

	rows, err := s.controllers.AttendanceController.Report(params)
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, rows)
}

// AttendanceStats returns present/absent/late counts for a date.
func (s *Server) AttendanceStats(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	stats, err := s.controllers.AttendanceController.Stats(r.URL.Query().Get("date"))
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, stats)
}

// AttendanceDetails returns one employee's attendance history. Employees
// may only read their own history.
func (s *Server) AttendanceDetails(w http.ResponseWriter, r *http.Request) {
	claims, err := s.sessionClaims(r)
	if err != nil {
		s.failure(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if claims.Role != controllers.RoleAdmin && claims.ID != id {
		s.failure(w, http.StatusForbidden, "Forbidden")
		return
	}

	records, err := s.controllers.AttendanceController.EmployeeDetails(id)
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, records)
}
