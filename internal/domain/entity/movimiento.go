package entity

import "time"

// Tipos de movimiento de stock.
const (
	TipoEntrada = "entrada" // ingreso de stock
	TipoSalida  = "salida"  // retiro de stock
	TipoAjuste  = "ajuste"  // registro contable sin delta de cantidad (ej. cambio de precio)
)

// TipoValido indica si el string corresponde a un tipo de movimiento conocido.
func TipoValido(tipo string) bool {
	return tipo == TipoEntrada || tipo == TipoSalida || tipo == TipoAjuste
}

// Movimiento es una entrada del libro de movimientos: registro inmutable de
// cada cambio de stock de un producto. Nunca se actualiza ni se borra
// individualmente; solo desaparece en cascada si se borra el producto.
type Movimiento struct {
	ID            string
	ProductoID    string
	Tipo          string // entrada, salida, ajuste
	Cantidad      int64  // magnitud; > 0 para entrada/salida, 0 para ajuste
	Observaciones string
	Procesado     bool
	Fecha         time.Time
	CreatedBy     string // ID del administrador que originó el movimiento, opcional
}
