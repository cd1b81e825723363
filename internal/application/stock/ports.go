package stock

import (
	"context"

	"github.com/acardona/stock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el servicio de
// mutación: o se aplican el cambio de cantidad y el movimiento, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}
