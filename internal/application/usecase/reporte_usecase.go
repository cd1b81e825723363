package usecase

import (
	"github.com/acardona/stock-api/internal/application/dto"
	"github.com/acardona/stock-api/internal/domain/repository"
)

// ReporteUseCase reportes de solo lectura sobre el inventario.
type ReporteUseCase struct {
	repo repository.ProductoRepository
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(repo repository.ProductoRepository) *ReporteUseCase {
	return &ReporteUseCase{repo: repo}
}

// StockBajo devuelve los productos activos con cantidad en o por debajo del
// stock mínimo, los más críticos primero.
func (uc *ReporteUseCase) StockBajo() ([]dto.ProductoResponse, error) {
	list, err := uc.repo.ListStockBajo()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// ValorInventario devuelve la suma de cantidad × precio de los productos activos.
func (uc *ReporteUseCase) ValorInventario() (*dto.ValorInventarioResponse, error) {
	total, err := uc.repo.ValorInventario()
	if err != nil {
		return nil, err
	}
	return &dto.ValorInventarioResponse{ValorTotal: total}, nil
}
