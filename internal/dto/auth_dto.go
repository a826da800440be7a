package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type AuthResponse struct {
	Token     string            `json:"token"`
	Principal PrincipalResponse `json:"principal"`
}

type PrincipalResponse struct {
	ID       *uuid.UUID `json:"id,omitempty"`
	Email    string     `json:"email"`
	Name     string     `json:"name,omitempty"`
	Role     string     `json:"role"`
	IsMaster bool       `json:"is_master"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
