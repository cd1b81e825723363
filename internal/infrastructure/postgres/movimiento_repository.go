package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/acardona/stock-api/internal/domain/entity"
	"github.com/acardona/stock-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación sobre PostgreSQL (usable con pool o tx).
// El libro es append-only: este repo no expone update ni delete.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create anexa un movimiento al libro.
func (r *MovimientoRepo) Create(m *entity.Movimiento) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	createdBy := (*string)(nil)
	if m.CreatedBy != "" {
		createdBy = &m.CreatedBy
	}
	query := `
		INSERT INTO movimientos (id, producto_id, tipo, cantidad, observaciones, procesado, fecha, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductoID, m.Tipo, m.Cantidad, m.Observaciones, m.Procesado, m.Fecha, createdBy,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// List lista movimientos con los datos del producto, del más reciente al más
// antiguo (fecha DESC; id DESC como desempate cuando las fechas coinciden).
func (r *MovimientoRepo) List(filtro repository.MovimientoFiltro) ([]*repository.MovimientoDetalle, error) {
	query := `
		SELECT m.id, m.producto_id, m.tipo, m.cantidad, m.observaciones, m.procesado, m.fecha, m.created_by,
		       p.nombre, p.descripcion, p.precio
		FROM movimientos m
		JOIN stock_items p ON p.id = m.producto_id
		WHERE ($1 = '' OR m.producto_id = NULLIF($1, '')::uuid)
		  AND ($2 = '' OR m.tipo = $2)
		ORDER BY m.fecha DESC, m.id DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, filtro.ProductoID, filtro.Tipo, filtro.Limit, filtro.Offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var list []*repository.MovimientoDetalle
	for rows.Next() {
		var d repository.MovimientoDetalle
		var createdBy *string
		if err := rows.Scan(
			&d.ID, &d.ProductoID, &d.Tipo, &d.Cantidad, &d.Observaciones, &d.Procesado, &d.Fecha, &createdBy,
			&d.ProductoNombre, &d.ProductoDescripcion, &d.ProductoPrecio,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		if createdBy != nil {
			d.CreatedBy = *createdBy
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Saldo devuelve Σ entradas − Σ salidas de un producto. Los ajustes no
// aportan delta (cantidad 0).
func (r *MovimientoRepo) Saldo(productoID string) (int64, error) {
	var saldo int64
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(CASE m.tipo
			WHEN 'entrada' THEN m.cantidad
			WHEN 'salida' THEN -m.cantidad
			ELSE 0
		END), 0)
		FROM movimientos m
		WHERE m.producto_id = $1`, productoID,
	).Scan(&saldo)
	if err != nil {
		return 0, fmt.Errorf("saldo movimientos: %w", err)
	}
	return saldo, nil
}
