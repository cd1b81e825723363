package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acardona/stock-api/internal/application/dto"
	"github.com/acardona/stock-api/internal/application/stock"
	"github.com/acardona/stock-api/internal/domain"
	"github.com/acardona/stock-api/internal/domain/entity"
	"github.com/acardona/stock-api/internal/domain/repository"
	"github.com/acardona/stock-api/internal/domain/validation"
)

// StockMaximoPorDefecto tope aplicado cuando el create no envía stock_maximo.
const StockMaximoPorDefecto = 9999

// ProductoUseCase casos de uso CRUD para productos. La cantidad no se edita
// por aquí: los cambios de stock pasan por el servicio de mutación. Un PATCH
// que cambia el precio deja un movimiento 'ajuste' en el libro, dentro de la
// misma transacción que la actualización.
type ProductoUseCase struct {
	repo     repository.ProductoRepository
	txRunner stock.TxRunner
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, txRunner stock.TxRunner) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto validando precio, cantidad inicial y umbrales.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}
	if err := validation.ValidarPrecio(in.Precio); err != nil {
		return nil, err
	}
	if in.Cantidad < 0 {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	maximo := int64(StockMaximoPorDefecto)
	if in.StockMaximo != nil {
		maximo = *in.StockMaximo
	}
	if err := validation.ValidarUmbrales(in.StockMinimo, maximo); err != nil {
		return nil, err
	}
	activo := true
	if in.Activo != nil {
		activo = *in.Activo
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		Cantidad:    in.Cantidad,
		StockMinimo: in.StockMinimo,
		StockMaximo: maximo,
		Activo:      activo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// List lista productos con paginación.
func (uc *ProductoUseCase) List(limit, offset int) (*dto.ProductoListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica un PATCH parcial. Si el precio cambia, la actualización y el
// movimiento 'ajuste' que la documenta se confirman en la misma transacción.
func (uc *ProductoUseCase) Update(ctx context.Context, id string, in dto.UpdateProductoRequest, adminID string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}

	precioAnterior := producto.Precio
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, fmt.Errorf("%w: nombre no puede quedar vacío", domain.ErrInvalidInput)
		}
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		if err := validation.ValidarPrecio(*in.Precio); err != nil {
			return nil, err
		}
		producto.Precio = *in.Precio
	}
	if in.StockMinimo != nil {
		producto.StockMinimo = *in.StockMinimo
	}
	if in.StockMaximo != nil {
		producto.StockMaximo = *in.StockMaximo
	}
	if err := validation.ValidarUmbrales(producto.StockMinimo, producto.StockMaximo); err != nil {
		return nil, err
	}
	if in.Activo != nil {
		producto.Activo = *in.Activo
	}
	producto.UpdatedAt = time.Now()

	cambioPrecio := in.Precio != nil && !precioAnterior.Equal(producto.Precio)
	if !cambioPrecio {
		if err := uc.repo.Update(producto); err != nil {
			return nil, err
		}
		return toProductoResponse(producto), nil
	}

	err = uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
	) error {
		if err := productoRepo.Update(producto); err != nil {
			return err
		}
		obs := fmt.Sprintf("cambio de precio: %s -> %s", precioAnterior, producto.Precio)
		_, err := stock.RegistrarAjusteInTx(movRepo, producto.ID, obs, adminID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Delete elimina un producto; los movimientos asociados caen en cascada.
func (uc *ProductoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Cantidad:    p.Cantidad,
		StockMinimo: p.StockMinimo,
		StockMaximo: p.StockMaximo,
		Activo:      p.Activo,
		StockBajo:   p.TieneStockBajo(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
