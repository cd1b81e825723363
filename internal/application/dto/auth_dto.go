package dto

import "time"

// LoginRequest body de POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse par de tokens emitidos al iniciar sesión.
type LoginResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest body de POST /api/auth/refresh.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse nuevo access token.
type RefreshResponse struct {
	Access string `json:"access"`
}

// VerifyRequest body de POST /api/auth/verify.
type VerifyRequest struct {
	Token string `json:"token"`
}

// RegistrarAdminRequest entrada para crear un administrador.
type RegistrarAdminRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	IsStaff   bool   `json:"is_staff"`
	Superuser bool   `json:"is_superuser"`
}

// AdminResponse salida de un administrador (nunca incluye el hash).
type AdminResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
