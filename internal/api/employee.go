package api

import (
	"net/http"

	"stafftrack_service/internal/controllers"
	"stafftrack_service/internal/entity"
)

// EmployeeTasks lists the tasks assigned to the authenticated employee.
func (s *Server) EmployeeTasks(w http.ResponseWriter, r *http.Request) {
	claims := s.checkEmployee(w, r)
	if claims == nil {
		return
	}

	tasks, err := s.controllers.TaskController.EmployeeTasks(claims.ID)
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, tasks)
}

func (s *Server) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	claims, err := s.sessionClaims(r)
	if err != nil {
		s.failure(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	task, err := s.controllers.TaskController.GetTaskByID(id)
	if err != nil {
		s.controllerError(w, err)
		return
	}

	if claims.Role != controllers.RoleAdmin && task.EmployeeID != claims.ID {
		s.failure(w, http.StatusForbidden, "Forbidden")
		return
	}

	s.success(w, http.StatusOK, task)
}

// CreateTask lets an employee add a task to their own list.
func (s *Server) CreateTask(w http.ResponseWriter, r *http.Request) {
	claims := s.checkEmployee(w, r)
	if claims == nil {
		return
	}

	var req entity.TaskCreate
	if !s.decodeBody(w, r, &req) {
		return
	}

	req.EmployeeID = claims.ID

	task, err := s.controllers.TaskController.CreateTask(req)
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusCreated, task)
}

func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	if s.checkEmployee(w, r) == nil {
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req entity.TaskUpdate
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.controllers.TaskController.UpdateTask(id, req); err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, "Task updated")
}

// DeleteTask removes a task, which only succeeds once it is completed.
func (s *Server) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if s.checkEmployee(w, r) == nil {
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.controllers.TaskController.DeleteTask(id); err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, "Task deleted")
}

// SubmitSalaryRequest files a salary request for the authenticated
// employee, one per calendar month.
func (s *Server) SubmitSalaryRequest(w http.ResponseWriter, r *http.Request) {
	claims := s.checkEmployee(w, r)
	if claims == nil {
		return
	}

	var req entity.SalaryRequestSubmission
	if !s.decodeBody(w, r, &req) {
		return
	}

	req.EmployeeID = claims.ID

	request, err := s.controllers.SalaryController.Submit(req)
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusCreated, request)
}

// EmployeeSalaryRequests lists one employee's salary requests.
func (s *Server) EmployeeSalaryRequests(w http.ResponseWriter, r *http.Request) {
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

	requests, err := s.controllers.SalaryController.EmployeeRequests(id)
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, requests)
}

// UpdateSalaryReceipt sets the receipt status on an approved request.
func (s *Server) UpdateSalaryReceipt(w http.ResponseWriter, r *http.Request) {
	if _, err := s.sessionClaims(r); err != nil {
		s.failure(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		ReceiptStatus string `json:"receipt_status"`
	}
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.controllers.SalaryController.UpdateReceipt(id, req.ReceiptStatus); err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, "Receipt status updated")
}

// EmployeeDetail returns an employee profile. Employees may only read
// their own profile.
func (s *Server) EmployeeDetail(w http.ResponseWriter, r *http.Request) {
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

	employee, err := s.controllers.EmployeeController.GetEmployeeByID(id)
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, employee)
}

// EmployeeSelfEdit lets an employee update their own profile fields.
func (s *Server) EmployeeSelfEdit(w http.ResponseWriter, r *http.Request) {
	claims := s.checkEmployee(w, r)
	if claims == nil {
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if claims.ID != id {
		s.failure(w, http.StatusForbidden, "Forbidden")
		return
	}

	var req entity.EmployeeEdit
	if !s.decodeBody(w, r, &req) {
		return
	}

	// Salary and category stay admin-controlled.
	req.Salary = nil
	req.CategoryID = nil

	if err := s.controllers.EmployeeController.EditEmployee(id, req); err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, "Profile updated")
}
