package usecase

import (
	"fmt"

	"github.com/acardona/stock-api/internal/application/dto"
	"github.com/acardona/stock-api/internal/domain"
	"github.com/acardona/stock-api/internal/domain/entity"
	"github.com/acardona/stock-api/internal/domain/repository"
)

// MovimientoUseCase consultas de solo lectura sobre el libro de movimientos.
type MovimientoUseCase struct {
	repo         repository.MovimientoRepository
	productoRepo repository.ProductoRepository
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(repo repository.MovimientoRepository, productoRepo repository.ProductoRepository) *MovimientoUseCase {
	return &MovimientoUseCase{repo: repo, productoRepo: productoRepo}
}

// List lista movimientos, opcionalmente filtrados por producto y tipo,
// ordenados del más reciente al más antiguo.
func (uc *MovimientoUseCase) List(filtro repository.MovimientoFiltro) (*dto.MovimientoListResponse, error) {
	if filtro.Tipo != "" && !entity.TipoValido(filtro.Tipo) {
		return nil, fmt.Errorf("%w: tipo de movimiento desconocido %q", domain.ErrInvalidInput, filtro.Tipo)
	}
	list, err := uc.repo.List(filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovimientoResponse(m))
	}
	return &dto.MovimientoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filtro.Limit, Offset: filtro.Offset},
	}, nil
}

// LedgerProducto devuelve el libro de un producto junto con su saldo
// (Σ entradas − Σ salidas). Devuelve ErrNotFound si el producto no existe.
func (uc *MovimientoUseCase) LedgerProducto(productoID, tipo string, limit, offset int) (*dto.LedgerProductoResponse, error) {
	if tipo != "" && !entity.TipoValido(tipo) {
		return nil, fmt.Errorf("%w: tipo de movimiento desconocido %q", domain.ErrInvalidInput, tipo)
	}
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.List(repository.MovimientoFiltro{
		ProductoID: productoID,
		Tipo:       tipo,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, err
	}
	saldo, err := uc.repo.Saldo(productoID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovimientoResponse(m))
	}
	return &dto.LedgerProductoResponse{
		ProductoID:  productoID,
		Saldo:       saldo,
		Movimientos: items,
	}, nil
}

func toMovimientoResponse(m *repository.MovimientoDetalle) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:                  m.ID,
		Tipo:                m.Tipo,
		ProductoID:          m.ProductoID,
		ProductoNombre:      m.ProductoNombre,
		ProductoDescripcion: m.ProductoDescripcion,
		ProductoPrecio:      m.ProductoPrecio,
		Cantidad:            m.Cantidad,
		Observaciones:       m.Observaciones,
		Procesado:           m.Procesado,
		Fecha:               m.Fecha,
		CreatedBy:           m.CreatedBy,
	}
}
