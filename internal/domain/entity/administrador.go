package entity

import "time"

// Administrador representa una cuenta con acceso a la API.
type Administrador struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	IsStaff      bool
	IsSuperuser  bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
