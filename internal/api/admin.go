package api

import (
	"net/http"

	"stafftrack_service/internal/entity"
)

// GetCategories lists every category.
func (s *Server) GetCategories(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	categories, err := s.controllers.CategoryController.GetCategories()
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, categories)
}

func (s *Server) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	category, err := s.controllers.CategoryController.GetCategoryByID(id)
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, category)
}

func (s *Server) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	var req entity.Category
	if !s.decodeBody(w, r, &req) {
		return
	}

	category, err := s.controllers.CategoryController.CreateCategory(req.Name)
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusCreated, category)
}

func (s *Server) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req entity.Category
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.controllers.CategoryController.UpdateCategory(id, req.Name); err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, "Category updated")
}

// DeleteCategory refuses to remove a category that still has employees.
func (s *Server) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.controllers.CategoryController.DeleteCategory(id); err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, "Category deleted")
}

// GetEmployees lists every employee with its category name.
func (s *Server) GetEmployees(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	employees, err := s.controllers.EmployeeController.GetEmployees()
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, employees)
}

func (s *Server) GetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	employee, err := s.controllers.EmployeeController.GetEmployeeByID(id)
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, employee)
}

func (s *Server) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	var req entity.Employee
	if !s.decodeBody(w, r, &req) {
		return
	}

	employee, err := s.controllers.EmployeeController.CreateEmployee(req)
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusCreated, employee)
}

func (s *Server) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req entity.EmployeeEdit
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.controllers.EmployeeController.EditEmployee(id, req); err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, "Employee updated")
}

// DeleteEmployee removes the employee together with its salary requests
// and tasks.
func (s *Server) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.controllers.EmployeeController.DeleteEmployee(id); err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, "Employee deleted")
}

func (s *Server) GetAdmins(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	admins, err := s.controllers.AdminController.GetAdmins()
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, admins)
}

func (s *Server) AddAdmin(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	var req entity.LoginRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	admin, err := s.controllers.AdminController.CreateAdmin(req.Email, req.Password)
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusCreated, admin)
}

func (s *Server) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req entity.AdminUpdate
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.controllers.AdminController.UpdateAdmin(id, req); err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, "Admin updated")
}

// DeleteAdmin refuses to remove the last remaining admin account.
func (s *Server) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.controllers.AdminController.DeleteAdmin(id); err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, "Admin deleted")
}

func (s *Server) AdminCount(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	count, err := s.controllers.AdminController.AdminCount()
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, map[string]int64{"admin_count": count})
}

// SalaryCount returns the total salary across all employees.
func (s *Server) SalaryCount(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	sum, err := s.controllers.EmployeeController.SalarySum()
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, map[string]int64{"salary_sum": sum})
}

// AdminSalaryRequests lists every salary request joined with employee data,
// ordered so rows needing admin attention come first.
func (s *Server) AdminSalaryRequests(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	requests, err := s.controllers.SalaryController.AdminList()
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, requests)
}

// UpdateSalaryStatus approves or rejects a salary request.
func (s *Server) UpdateSalaryStatus(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.controllers.SalaryController.UpdateStatus(id, req.Status); err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, "Salary request updated")
}

// AdminTasks lists every task joined with its assignee.
func (s *Server) AdminTasks(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	tasks, err := s.controllers.TaskController.GetTasks()
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusOK, tasks)
}

// AssignTask creates a task for an employee.
func (s *Server) AssignTask(w http.ResponseWriter, r *http.Request) {
	if s.checkAdmin(w, r) == nil {
		return
	}

	var req entity.TaskCreate
	if !s.decodeBody(w, r, &req) {
		return
	}

	task, err := s.controllers.TaskController.CreateTask(req)
	if err != nil {
		s.controllerError(w, err)
		return
	}

	s.success(w, http.StatusCreated, task)
}
