package api

import (
	"net/http"

	"stafftrack_service/internal/entity"
)

// AdminLogin authenticates an admin and sets the session cookie.
func (s *Server) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req entity.LoginRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		s.httpResponse(w, http.StatusBadRequest, map[string]any{"loginStatus": false, "Error": "Email and password required"})
		return
	}

	token, err := s.controllers.AuthController.AdminLogin(&req)
	if err != nil {
		s.httpResponse(w, http.StatusUnauthorized, map[string]any{"loginStatus": false, "Error": "Invalid credentials"})
		return
	}

	s.setSessionCookie(w, token)
	s.httpResponse(w, http.StatusOK, map[string]any{"loginStatus": true})
}

// EmployeeLogin authenticates an employee, sets the session cookie and
// returns the employee profile.
func (s *Server) EmployeeLogin(w http.ResponseWriter, r *http.Request) {
	var req entity.LoginRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" {
		s.httpResponse(w, http.StatusBadRequest, map[string]any{"loginStatus": false, "Error": "Email and password required"})
		return
	}

	token, emp, err := s.controllers.AuthController.EmployeeLogin(&req)
	if err != nil {
		s.httpResponse(w, http.StatusUnauthorized, map[string]any{"loginStatus": false, "Error": "Invalid credentials"})
		return
	}

	s.setSessionCookie(w, token)
	s.httpResponse(w, http.StatusOK, map[string]any{"loginStatus": true, "id": emp.ID, "Result": emp})
}

// Logout revokes the session and clears the cookie.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if err = s.controllers.AuthController.Logout(cookie.Value); err != nil {
			s.controllerError(w, err)
			return
		}
	}

	s.clearSessionCookie(w)
	s.success(w, http.StatusOK, "Logged out")
}

// Verify reports whether the session cookie still maps to a valid session.
func (s *Server) Verify(w http.ResponseWriter, r *http.Request) {
	claims, err := s.sessionClaims(r)
	if err != nil {
		s.httpResponse(w, http.StatusOK, map[string]any{"Status": false, "Error": "Not authenticated"})
		return
	}

	s.httpResponse(w, http.StatusOK, map[string]any{
		"Status": true,
		"Result": map[string]any{"id": claims.ID, "email": claims.Email, "role": claims.Role},
	})
}
