package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/acardona/stock-api/internal/domain"
	"github.com/acardona/stock-api/internal/domain/entity"
	"github.com/acardona/stock-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumnas = `id, nombre, descripcion, precio, cantidad, stock_minimo, stock_maximo, activo, created_at, updated_at`

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO stock_items (id, nombre, descripcion, precio, cantidad, stock_minimo, stock_maximo, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Precio, p.Cantidad,
		p.StockMinimo, p.StockMaximo, p.Activo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumnas + ` FROM stock_items WHERE id = $1`
	return r.scanUno(r.q.QueryRow(context.Background(), query, id), "get producto")
}

// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
// Debe invocarse con un Querier transaccional; el bloqueo vive hasta el
// Commit/Rollback de esa transacción.
func (r *ProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumnas + ` FROM stock_items WHERE id = $1 FOR UPDATE`
	return r.scanUno(r.q.QueryRow(context.Background(), query, id), "get producto for update")
}

// List lista productos ordenados por nombre, con paginación.
func (r *ProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumnas + ` FROM stock_items ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return r.scanVarios(rows)
}

// Update actualiza los campos editables del producto. Nunca toca cantidad.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE stock_items
		SET nombre = $2, descripcion = $3, precio = $4, stock_minimo = $5, stock_maximo = $6, activo = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Precio, p.StockMinimo, p.StockMaximo, p.Activo, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ActualizarCantidad fija el stock actual. Usar solo desde el servicio de
// mutación, con la fila ya bloqueada.
func (r *ProductoRepo) ActualizarCantidad(id string, cantidad int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE stock_items SET cantidad = $2, updated_at = now() WHERE id = $1`,
		id, cantidad,
	)
	if err != nil {
		return fmt.Errorf("actualizar cantidad: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto; los movimientos caen por ON DELETE CASCADE.
func (r *ProductoRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListStockBajo lista productos activos con cantidad <= stock_minimo.
func (r *ProductoRepo) ListStockBajo() ([]*entity.Producto, error) {
	query := `
		SELECT ` + productoColumnas + `
		FROM stock_items
		WHERE activo AND cantidad <= stock_minimo
		ORDER BY cantidad, nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock bajo: %w", err)
	}
	defer rows.Close()
	return r.scanVarios(rows)
}

// ValorInventario suma cantidad × precio de los productos activos.
func (r *ProductoRepo) ValorInventario() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(cantidad * precio), 0) FROM stock_items WHERE activo`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor inventario: %w", err)
	}
	return total, nil
}

func (r *ProductoRepo) scanUno(row pgx.Row, op string) (*entity.Producto, error) {
	var p entity.Producto
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Cantidad,
		&p.StockMinimo, &p.StockMaximo, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *ProductoRepo) scanVarios(rows pgx.Rows) ([]*entity.Producto, error) {
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Cantidad,
			&p.StockMinimo, &p.StockMaximo, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
