package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"stafftrack_service/internal/controllers"
	"stafftrack_service/internal/entity"

	"github.com/go-chi/chi/v5"
)

const sessionCookie = "token"

type Server struct {
	deps        *controllers.Dependens
	controllers *controllers.Controllers
}

func NewServer(deps *controllers.Dependens, ctrl *controllers.Controllers) *Server {
	return &Server{
		deps:        deps,
		controllers: ctrl,
	}
}

// httpResponse writes the response envelope every endpoint uses:
// Status true with a Result payload, or Status false with an Error string.
func (s *Server) httpResponse(w http.ResponseWriter, status int, resp map[string]any) {
	respData, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		s.deps.Logger.Error("Error marshaling response", slog.String("error", marshalErr.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(respData); err != nil {
		s.deps.Logger.Error("Error writing response", slog.String("error", err.Error()))
	}
}

func (s *Server) success(w http.ResponseWriter, status int, result any) {
	s.httpResponse(w, status, map[string]any{"Status": true, "Result": result})
}

func (s *Server) failure(w http.ResponseWriter, status int, message string) {
	s.httpResponse(w, status, map[string]any{"Status": false, "Error": message})
}

// controllerError maps controller sentinels onto HTTP statuses: business
// rule violations are 400s with their message, missing rows 404, bad
// credentials 401, anything else a generic 500.
func (s *Server) controllerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, controllers.ErrNotFound):
		s.failure(w, http.StatusNotFound, err.Error())
	case errors.Is(err, controllers.ErrInvalidCredentials):
		s.failure(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, controllers.ErrInvalidInput),
		errors.Is(err, controllers.ErrDuplicateAttendance),
		errors.Is(err, controllers.ErrDuplicateRequest),
		errors.Is(err, controllers.ErrCategoryInUse),
		errors.Is(err, controllers.ErrLastAdmin),
		errors.Is(err, controllers.ErrTaskNotCompleted),
		errors.Is(err, controllers.ErrReceiptNotAllowed):
		s.failure(w, http.StatusBadRequest, err.Error())
	default:
		s.failure(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Now().Add(s.deps.Config.Redis.SessionTTL),
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

func (s *Server) sessionClaims(r *http.Request) (*entity.Claims, error) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil, errors.New("session cookie missing")
	}

	return s.controllers.AuthController.CheckToken(cookie.Value)
}

// checkRole authorizes the request for the given role. It writes the
// error response itself and returns nil when the caller should bail out.
func (s *Server) checkRole(w http.ResponseWriter, r *http.Request, role string) *entity.Claims {
	claims, err := s.sessionClaims(r)
	if err != nil {
		s.deps.Logger.Warn("Unauthorized request", slog.String("error", err.Error()), slog.String("path", r.URL.Path))
		s.failure(w, http.StatusUnauthorized, "Unauthorized")
		return nil
	}

	if claims.Role != role {
		s.deps.Logger.Warn("Forbidden request", slog.String("role", claims.Role), slog.String("path", r.URL.Path))
		s.failure(w, http.StatusForbidden, "Forbidden")
		return nil
	}

	return claims
}

func (s *Server) checkAdmin(w http.ResponseWriter, r *http.Request) *entity.Claims {
	return s.checkRole(w, r, controllers.RoleAdmin)
}

func (s *Server) checkEmployee(w http.ResponseWriter, r *http.Request) *entity.Claims {
	return s.checkRole(w, r, controllers.RoleEmployee)
}

func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.failure(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}

	return id, true
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.deps.Logger.Error("Error decoding request body", slog.String("error", err.Error()))
		s.failure(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	return true
}
