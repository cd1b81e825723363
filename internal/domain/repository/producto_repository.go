package repository

import (
	"github.com/shopspring/decimal"

	"github.com/acardona/stock-api/internal/domain/entity"
)

// ProductoRepository puerto de persistencia para productos.
// GetForUpdate solo tiene sentido dentro de una transacción (ver TxRunner).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Producto, error)
	List(limit, offset int) ([]*entity.Producto, error)
	// Update persiste los campos editables del producto. Nunca toca Cantidad:
	// los cambios de stock pasan por ActualizarCantidad dentro del servicio de mutación.
	Update(producto *entity.Producto) error
	// ActualizarCantidad fija el stock actual; usar solo desde el servicio de mutación.
	ActualizarCantidad(id string, cantidad int64) error
	Delete(id string) error
	// ListStockBajo devuelve productos activos con cantidad <= stock_minimo, orden cantidad asc.
	ListStockBajo() ([]*entity.Producto, error)
	// ValorInventario devuelve la suma de cantidad × precio de los productos activos.
	ValorInventario() (decimal.Decimal, error)
}
