package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Cantidad    int64           `json:"cantidad"`
	StockMinimo int64           `json:"stock_minimo"`
	StockMaximo *int64          `json:"stock_maximo"` // nil = 9999 por defecto
	Activo      *bool           `json:"activo"`       // nil = true
}

// UpdateProductoRequest entrada para PATCH de un producto. Campos nil no se
// tocan. No existe campo cantidad: el stock solo cambia vía subtract/restock.
type UpdateProductoRequest struct {
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	StockMinimo *int64           `json:"stock_minimo"`
	StockMaximo *int64           `json:"stock_maximo"`
	Activo      *bool            `json:"activo"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Cantidad    int64           `json:"cantidad"`
	StockMinimo int64           `json:"stock_minimo"`
	StockMaximo int64           `json:"stock_maximo"`
	Activo      bool            `json:"activo"`
	StockBajo   bool            `json:"stock_bajo"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// MutacionStockRequest body de PUT /api/stock/{id}/subtract y /restock.
type MutacionStockRequest struct {
	Cantidad      *int64 `json:"cantidad"`
	Observaciones string `json:"observaciones"`
}

// MutacionStockResponse resultado de una mutación de stock aceptada.
type MutacionStockResponse struct {
	Mensaje      string `json:"mensaje"`
	NuevoStock   int64  `json:"nuevo_stock"`
	MovimientoID string `json:"movimiento_id"`
}

// ValorInventarioResponse valor total del inventario activo.
type ValorInventarioResponse struct {
	ValorTotal decimal.Decimal `json:"valor_total"`
}
