package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acardona/stock-api/internal/domain"
	"github.com/acardona/stock-api/internal/domain/entity"
	"github.com/acardona/stock-api/internal/domain/repository"
)

var _ repository.AdministradorRepository = (*AdministradorRepo)(nil)

const adminColumnas = `id, username, password_hash, is_staff, is_superuser, is_active, created_at, updated_at`

// AdministradorRepo implementación sobre PostgreSQL (usable con pool o tx).
type AdministradorRepo struct {
	q Querier
}

// NewAdministradorRepository construye el adaptador de administradores.
func NewAdministradorRepository(q Querier) *AdministradorRepo {
	return &AdministradorRepo{q: q}
}

// Create persiste un nuevo administrador.
func (r *AdministradorRepo) Create(a *entity.Administrador) error {
	query := `
		INSERT INTO administradores (id, username, password_hash, is_staff, is_superuser, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Username, a.PasswordHash, a.IsStaff, a.IsSuperuser, a.IsActive, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameExists
		}
		return fmt.Errorf("insert administrador: %w", err)
	}
	return nil
}

// GetByID obtiene un administrador por ID. Devuelve nil, nil si no existe.
func (r *AdministradorRepo) GetByID(id string) (*entity.Administrador, error) {
	query := `SELECT ` + adminColumnas + ` FROM administradores WHERE id = $1`
	return r.scan(r.q.QueryRow(context.Background(), query, id), "get administrador")
}

// GetByUsername obtiene un administrador por username. Devuelve nil, nil si no existe.
func (r *AdministradorRepo) GetByUsername(username string) (*entity.Administrador, error) {
	query := `SELECT ` + adminColumnas + ` FROM administradores WHERE username = $1`
	return r.scan(r.q.QueryRow(context.Background(), query, username), "get administrador por username")
}

func (r *AdministradorRepo) scan(row pgx.Row, op string) (*entity.Administrador, error) {
	var a entity.Administrador
	err := row.Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.IsStaff, &a.IsSuperuser, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}
