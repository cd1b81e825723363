package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovimientoResponse salida de un movimiento del libro, con los datos del
// producto asociado desnormalizados para los listados.
type MovimientoResponse struct {
	ID                  string          `json:"id"`
	Tipo                string          `json:"tipo"`
	ProductoID          string          `json:"producto"`
	ProductoNombre      string          `json:"producto_nombre"`
	ProductoDescripcion string          `json:"producto_descripcion"`
	ProductoPrecio      decimal.Decimal `json:"producto_precio"`
	Cantidad            int64           `json:"cantidad"`
	Observaciones       string          `json:"observaciones,omitempty"`
	Procesado           bool            `json:"procesado"`
	Fecha               time.Time       `json:"fecha"`
	CreatedBy           string          `json:"created_by,omitempty"`
}

// MovimientoListResponse lista paginada de movimientos.
type MovimientoListResponse struct {
	Items []MovimientoResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// LedgerProductoResponse libro de un producto más su saldo.
// El saldo (Σ entradas − Σ salidas) debe coincidir con la cantidad actual.
type LedgerProductoResponse struct {
	ProductoID  string               `json:"producto_id"`
	Saldo       int64                `json:"saldo"`
	Movimientos []MovimientoResponse `json:"movimientos"`
}
