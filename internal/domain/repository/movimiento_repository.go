package repository

import (
	"github.com/shopspring/decimal"

	"github.com/acardona/stock-api/internal/domain/entity"
)

// MovimientoFiltro filtros para listar movimientos.
type MovimientoFiltro struct {
	ProductoID string // vacío = todos los productos
	Tipo       string // vacío = todos los tipos
	Limit      int
	Offset     int
}

// MovimientoDetalle es el modelo de lectura del libro: el movimiento más los
// datos del producto que los listados exponen.
type MovimientoDetalle struct {
	entity.Movimiento
	ProductoNombre      string
	ProductoDescripcion string
	ProductoPrecio      decimal.Decimal
}

// MovimientoRepository puerto de persistencia para el libro de movimientos.
// El libro es append-only: no existe Update ni Delete.
type MovimientoRepository interface {
	Create(movimiento *entity.Movimiento) error
	// List devuelve movimientos ordenados por fecha DESC, id DESC.
	List(filtro MovimientoFiltro) ([]*MovimientoDetalle, error)
	// Saldo devuelve Σ entradas − Σ salidas de un producto.
	Saldo(productoID string) (int64, error)
}
