package controllers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"stafftrack_service/internal/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const TokenSize = 16

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type AuthController struct {
	deps *Dependens
}

func NewAuthController(deps *Dependens) *AuthController {
	return &AuthController{
		deps: deps,
	}
}

// AdminLogin authenticates against the admin table and returns a session token.
func (c *AuthController) AdminLogin(req *entity.LoginRequest) (string, error) {
	var id uint64
	var email, password string

	if err := c.deps.DB.QueryRow(context.Background(), "SELECT id, email, password FROM admin WHERE email = $1", req.Email).Scan(&id, &email, &password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.deps.Logger.Warn("Admin with this email not found", slog.String("email", req.Email))
			return "", ErrInvalidCredentials
		}

		c.deps.Logger.Error("Error querying admin", slog.String("error", err.Error()))
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(password), []byte(req.Password)); err != nil {
		c.deps.Logger.Warn("Invalid admin password", slog.String("email", req.Email))
		return "", ErrInvalidCredentials
	}

	return c.createSession(id, email, RoleAdmin)
}

// EmployeeLogin authenticates against the employee table and returns a
// session token together with the employee profile.
func (c *AuthController) EmployeeLogin(req *entity.LoginRequest) (string, *entity.EmployeeDetail, error) {
	query := `SELECT e.id, e.name, e.email, e.password, e.salary, e.address, e.category_id, c.name AS category_name
              FROM employee e
              LEFT JOIN category c ON e.category_id = c.id
              WHERE e.email = $1`

	rows, err := c.deps.DB.Query(context.Background(), query, req.Email)
	if err != nil {
		c.deps.Logger.Error("Error querying employee", slog.String("error", err.Error()))
		return "", nil, err
	}
	defer rows.Close()

	emp, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entity.EmployeeDetail])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.deps.Logger.Warn("Employee with this email not found", slog.String("email", req.Email))
			return "", nil, ErrInvalidCredentials
		}

		c.deps.Logger.Error("Error collecting row", slog.String("error", err.Error()))
		return "", nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*emp.Password), []byte(req.Password)); err != nil {
		c.deps.Logger.Warn("Invalid employee password", slog.String("email", req.Email))
		return "", nil, ErrInvalidCredentials
	}

	token, err := c.createSession(emp.ID, emp.Email, RoleEmployee)
	if err != nil {
		return "", nil, err
	}

	emp.Password = nil

	return token, &emp, nil
}

func (c *AuthController) createSession(id uint64, email, role string) (string, error) {
	tokenID, err := generateTokenID(c.deps.Logger)
	if err != nil {
		return "", err
	}

	claims := entity.Claims{
		ID:      id,
		Email:   email,
		Role:    role,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.deps.Config.Redis.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(c.deps.Config.Server.JWTSecret))
	if err != nil {
		c.deps.Logger.Error("Error signing token", slog.String("error", err.Error()))
		return "", err
	}

	ctx := context.Background()
	if err = c.deps.Redis.Set(ctx, "session:"+tokenStr, "valid", c.deps.Config.Redis.SessionTTL).Err(); err != nil {
		c.deps.Logger.Error("Error saving session to Redis", slog.String("error", err.Error()))
		return "", err
	}

	return tokenStr, nil
}

func generateTokenID(logger *slog.Logger) (string, error) {
	b := make([]byte, TokenSize)
	if _, err := rand.Read(b); err != nil {
		logger.Error("Error generating token ID", slog.String("error", err.Error()))
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// CheckToken validates a session token against the revocation list and the
// signature, returning its claims.
func (c *AuthController) CheckToken(tokenStr string) (*entity.Claims, error) {
	if tokenStr == "" {
		return nil, errors.New("missing session token")
	}

	ctx := context.Background()
	if err := c.deps.Redis.Get(ctx, "session:"+tokenStr).Err(); errors.Is(err, redis.Nil) {
		c.deps.Logger.Warn("Token revoked")
		return nil, errors.New("token revoked")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &entity.Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(c.deps.Config.Server.JWTSecret), nil
	})
	if err != nil {
		c.deps.Logger.Error("Error parsing token", slog.String("error", err.Error()))
		return nil, errors.New("invalid token")
	}

	if claims, ok := token.Claims.(*entity.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// Logout drops the session from Redis so the token can no longer be used.
func (c *AuthController) Logout(tokenStr string) error {
	if err := c.deps.Redis.Del(context.Background(), "session:"+tokenStr).Err(); err != nil {
		c.deps.Logger.Error("Error deleting session from Redis", slog.String("error", err.Error()))
		return err
	}

	return nil
}
