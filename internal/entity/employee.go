package entity

import "github.com/golang-jwt/jwt/v5"

type Employee struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   *string `json:"password,omitempty"`
	Salary     int64   `json:"salary"`
	Address    string  `json:"address"`
	CategoryID *uint64 `json:"category_id"`
}

// EmployeeDetail is an employee row joined with its category name.
type EmployeeDetail struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     *string `json:"password,omitempty"`
	Salary       int64   `json:"salary"`
	Address      string  `json:"address"`
	CategoryID   *uint64 `json:"category_id"`
	CategoryName *string `json:"category_name"`
}

type EmployeeEdit struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Address    *string `json:"address"`
	Password   *string `json:"password"`
	Salary     *int64  `json:"salary"`
	CategoryID *uint64 `json:"category_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Claims struct {
	jwt.RegisteredClaims

	ID      uint64 `json:"id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	TokenID string `json:"token_id"`
}
