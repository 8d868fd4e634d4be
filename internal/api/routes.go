package api

import (
	"github.com/go-chi/chi/v5"
)

// Register mounts every route on the given router.
func (s *Server) Register(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Post("/adminlogin", s.AdminLogin)

		r.Get("/category", s.GetCategories)
		r.Post("/category", s.CreateCategory)
		r.Get("/category/{id}", s.GetCategoryByID)
		r.Put("/category/{id}", s.UpdateCategory)
		r.Delete("/category/{id}", s.DeleteCategory)

		r.Get("/employee", s.GetEmployees)
		r.Post("/employee", s.CreateEmployee)
		r.Get("/employee/{id}", s.GetEmployeeByID)
		r.Put("/employee/{id}", s.UpdateEmployee)
		r.Delete("/employee/{id}", s.DeleteEmployee)

		r.Get("/admins", s.GetAdmins)
		r.Post("/add_admin", s.AddAdmin)
		r.Put("/update_admin/{id}", s.UpdateAdmin)
		r.Delete("/delete_admin/{id}", s.DeleteAdmin)
		r.Get("/admin_count", s.AdminCount)
		r.Get("/salary_count", s.SalaryCount)

		r.Get("/salary_requests", s.AdminSalaryRequests)
		r.Put("/salary_request/{id}", s.UpdateSalaryStatus)
		r.Put("/salary_receipt/{id}", s.UpdateSalaryReceipt)
		r.Get("/tasks", s.AdminTasks)
		r.Post("/assign_task", s.AssignTask)
	})

	r.Route("/employee", func(r chi.Router) {
		r.Post("/employee_login", s.EmployeeLogin)
		r.Get("/logout", s.Logout)
		r.Get("/verify", s.Verify)

		r.Get("/tasks", s.EmployeeTasks)
		r.Post("/tasks", s.CreateTask)
		r.Get("/tasks/{id}", s.GetTaskByID)
		r.Put("/tasks/{id}", s.UpdateTask)
		r.Delete("/tasks/{id}", s.DeleteTask)

		r.Post("/salary_request", s.SubmitSalaryRequest)
		r.Get("/salary_requests/{id}", s.EmployeeSalaryRequests)
		r.Put("/salary_receipt/{id}", s.UpdateSalaryReceipt)

		r.Get("/detail/{id}", s.EmployeeDetail)
		r.Put("/employee_edit/{id}", s.EmployeeSelfEdit)
	})

	r.Route("/attendance", func(r chi.Router) {
		r.Get("/records", s.AttendanceRecords)
		r.Post("/postattendance", s.PostAttendance)
		r.Put("/update-out-time/{id}", s.UpdateOutTime)
		r.Get("/report", s.AttendanceReport)
		r.Get("/stats", s.AttendanceStats)
		r.Get("/details/{id}", s.AttendanceDetails)
	})
}
