package repository

import "github.com/acardona/stock-api/internal/domain/entity"

// AdministradorRepository puerto de persistencia para administradores.
type AdministradorRepository interface {
	Create(admin *entity.Administrador) error
	GetByID(id string) (*entity.Administrador, error)
	GetByUsername(username string) (*entity.Administrador, error)
}
