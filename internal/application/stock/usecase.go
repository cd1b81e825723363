package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/acardona/stock-api/internal/domain"
	"github.com/acardona/stock-api/internal/domain/entity"
	"github.com/acardona/stock-api/internal/domain/repository"
	"github.com/acardona/stock-api/internal/domain/validation"
)

// UseCase es el servicio de mutación de stock: la única vía para cambiar la
// cantidad de un producto. Cada mutación aceptada bloquea la fila del
// producto (SELECT FOR UPDATE), valida las reglas contra el stock bloqueado
// y anexa exactamente un movimiento al libro, todo en una transacción.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el servicio de mutación.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// Resultado de una mutación aceptada.
type Resultado struct {
	NuevoStock   int64
	MovimientoID string
}

// Aumentar suma cantidad al stock del producto y anexa un movimiento 'entrada'.
func (uc *UseCase) Aumentar(ctx context.Context, productoID string, cantidad int64, observaciones, adminID string) (*Resultado, error) {
	return uc.aplicar(ctx, productoID, entity.TipoEntrada, cantidad, observaciones, adminID)
}

// Disminuir resta cantidad del stock del producto y anexa un movimiento 'salida'.
// Falla con ErrInsufficientStock si el stock bloqueado no alcanza.
func (uc *UseCase) Disminuir(ctx context.Context, productoID string, cantidad int64, observaciones, adminID string) (*Resultado, error) {
	return uc.aplicar(ctx, productoID, entity.TipoSalida, cantidad, observaciones, adminID)
}

// aplicar ejecuta la mutación dentro de una transacción. La fila del
// producto queda bloqueada hasta el Commit/Rollback, de modo que dos
// mutaciones concurrentes sobre el mismo producto se serializan y la
// segunda revalida contra el stock resultante de la primera.
func (uc *UseCase) aplicar(ctx context.Context, productoID, tipo string, cantidad int64, observaciones, adminID string) (*Resultado, error) {
	// La positividad se puede rechazar antes de abrir la transacción.
	if cantidad <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	delta := cantidad
	if tipo == entity.TipoSalida {
		delta = -cantidad
	}

	var res Resultado
	err := uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
	) error {
		producto, err := productoRepo.GetForUpdate(productoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}

		m := validation.Mutacion{
			Actual:     producto.Cantidad,
			Solicitada: cantidad,
			Delta:      delta,
			Maximo:     producto.StockMaximo,
		}
		if err := validation.ValidarMutacion(m); err != nil {
			return err
		}

		nuevo := producto.Cantidad + delta
		if err := productoRepo.ActualizarCantidad(productoID, nuevo); err != nil {
			return err
		}

		mov := &entity.Movimiento{
			ID:            uuid.New().String(),
			ProductoID:    productoID,
			Tipo:          tipo,
			Cantidad:      cantidad,
			Observaciones: observaciones,
			Procesado:     true,
			Fecha:         time.Now(),
			CreatedBy:     adminID,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		if tipo == entity.TipoSalida && nuevo <= producto.StockMinimo {
			log.Warn().
				Str("producto", producto.Nombre).
				Int64("cantidad", nuevo).
				Int64("stock_minimo", producto.StockMinimo).
				Msg("stock bajo detectado")
		}

		res = Resultado{NuevoStock: nuevo, MovimientoID: mov.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// RegistrarAjusteInTx anexa un movimiento 'ajuste' (cantidad 0) usando los
// repositorios de una transacción abierta por el caller. Se usa para dejar
// rastro en el libro de ediciones fuera del flujo de stock, por ejemplo un
// cambio de precio.
func RegistrarAjusteInTx(movRepo repository.MovimientoRepository, productoID, observaciones, adminID string) (string, error) {
	mov := &entity.Movimiento{
		ID:            uuid.New().String(),
		ProductoID:    productoID,
		Tipo:          entity.TipoAjuste,
		Cantidad:      0,
		Observaciones: observaciones,
		Procesado:     true,
		Fecha:         time.Now(),
		CreatedBy:     adminID,
	}
	if err := movRepo.Create(mov); err != nil {
		return "", err
	}
	return mov.ID, nil
}
