// Package validation contiene las reglas de negocio puras del inventario.
// Las reglas de mutación se evalúan como una lista ordenada con corto
// circuito: la primera que falla determina el error reportado.
package validation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/acardona/stock-api/internal/domain"
)

// PrecioMaximo tope configurado para el precio unitario.
var PrecioMaximo = decimal.RequireFromString("9999999.99")

// Mutacion describe un cambio de stock pendiente de validar.
type Mutacion struct {
	Actual     int64 // stock actual del producto (fila bloqueada)
	Solicitada int64 // magnitud pedida en el request
	Delta      int64 // con signo: +Solicitada para entrada, -Solicitada para salida
	Maximo     int64 // stock máximo configurado; 0 = sin tope
}

// Regla es un predicado puro sobre una mutación. Devuelve nil si pasa.
type Regla func(m Mutacion) error

// CantidadPositiva rechaza cantidades no positivas.
func CantidadPositiva(m Mutacion) error {
	if m.Solicitada <= 0 {
		return domain.ErrInvalidQuantity
	}
	return nil
}

// StockSuficiente rechaza mutaciones que dejarían el stock negativo.
func StockSuficiente(m Mutacion) error {
	if m.Actual+m.Delta < 0 {
		return fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, m.Actual, m.Solicitada)
	}
	return nil
}

// TopeMaximo rechaza mutaciones que superarían el stock máximo configurado.
func TopeMaximo(m Mutacion) error {
	if m.Maximo > 0 && m.Actual+m.Delta > m.Maximo {
		return fmt.Errorf("%w: máximo %d, resultado %d", domain.ErrStockExceedsMax, m.Maximo, m.Actual+m.Delta)
	}
	return nil
}

// ReglasMutacion orden fijo de evaluación: positividad → suficiencia → tope máximo.
var ReglasMutacion = []Regla{CantidadPositiva, StockSuficiente, TopeMaximo}

// ValidarMutacion evalúa las reglas en orden y devuelve el primer error.
func ValidarMutacion(m Mutacion) error {
	for _, regla := range ReglasMutacion {
		if err := regla(m); err != nil {
			return err
		}
	}
	return nil
}

// ValidarPrecio valida el precio unitario de un producto en create/update.
func ValidarPrecio(precio decimal.Decimal) error {
	if precio.IsNegative() {
		return fmt.Errorf("%w: no puede ser negativo", domain.ErrInvalidPrice)
	}
	if precio.GreaterThan(PrecioMaximo) {
		return fmt.Errorf("%w: excede el máximo permitido (%s)", domain.ErrInvalidPrice, PrecioMaximo)
	}
	return nil
}

// ValidarUmbrales valida los umbrales de stock de un producto.
func ValidarUmbrales(minimo, maximo int64) error {
	if minimo < 0 {
		return fmt.Errorf("%w: el stock mínimo no puede ser negativo", domain.ErrInvalidInput)
	}
	if maximo <= minimo {
		return domain.ErrInvalidThresholds
	}
	return nil
}

// ValidarUsername aplica la política de nombres de usuario: 3 a 50 caracteres alfanuméricos.
func ValidarUsername(username string) error {
	if username == "" {
		return fmt.Errorf("%w: el username es requerido", domain.ErrInvalidInput)
	}
	if len(username) < 3 || len(username) > 50 {
		return fmt.Errorf("%w: el username debe tener entre 3 y 50 caracteres", domain.ErrInvalidInput)
	}
	for _, r := range username {
		if !esAlfanumerico(r) {
			return fmt.Errorf("%w: el username solo puede contener letras y números", domain.ErrInvalidInput)
		}
	}
	return nil
}

// ValidarPassword aplica la política de contraseñas: mínimo 8 caracteres,
// no completamente numérica y con mayúsculas y minúsculas.
func ValidarPassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: la contraseña debe tener al menos 8 caracteres", domain.ErrInvalidInput)
	}
	soloDigitos := true
	tieneMayuscula := false
	tieneMinuscula := false
	for _, r := range password {
		if r < '0' || r > '9' {
			soloDigitos = false
		}
		if r >= 'A' && r <= 'Z' {
			tieneMayuscula = true
		}
		if r >= 'a' && r <= 'z' {
			tieneMinuscula = true
		}
	}
	if soloDigitos {
		return fmt.Errorf("%w: la contraseña no puede ser completamente numérica", domain.ErrInvalidInput)
	}
	if !tieneMayuscula || !tieneMinuscula {
		return fmt.Errorf("%w: la contraseña debe contener mayúsculas y minúsculas", domain.ErrInvalidInput)
	}
	return nil
}

func esAlfanumerico(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
