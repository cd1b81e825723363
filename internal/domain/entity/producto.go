package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del inventario con su stock actual y umbrales.
// Cantidad solo se modifica a través del servicio de mutación de stock; las
// ediciones directas quedarían fuera del libro de movimientos.
type Producto struct {
	ID          string
	Nombre      string
	Descripcion string
	Precio      decimal.Decimal // precio unitario, >= 0
	Cantidad    int64           // stock actual, >= 0
	StockMinimo int64           // umbral de alerta de stock bajo
	StockMaximo int64           // tope de stock; debe ser > StockMinimo
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TieneStockBajo indica si la cantidad actual está en o por debajo del mínimo.
func (p *Producto) TieneStockBajo() bool {
	return p.Cantidad <= p.StockMinimo
}

// PuedeRetirar indica si hay stock suficiente para retirar la cantidad dada.
func (p *Producto) PuedeRetirar(cantidad int64) bool {
	return p.Cantidad >= cantidad
}

// ValorTotalStock devuelve cantidad × precio.
func (p *Producto) ValorTotalStock() decimal.Decimal {
	return decimal.NewFromInt(p.Cantidad).Mul(p.Precio)
}
