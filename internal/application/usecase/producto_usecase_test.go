package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acardona/stock-api/internal/application/dto"
	"github.com/acardona/stock-api/internal/application/usecase"
	"github.com/acardona/stock-api/internal/domain"
	"github.com/acardona/stock-api/internal/domain/entity"
	"github.com/acardona/stock-api/internal/domain/repository"
	"github.com/acardona/stock-api/internal/testutil"
)

func newProductoUC(mem *testutil.Memoria) *usecase.ProductoUseCase {
	return usecase.NewProductoUseCase(mem.Productos(), mem.TxRunner())
}

func crearWidget(t *testing.T, uc *usecase.ProductoUseCase) *dto.ProductoResponse {
	t.Helper()
	res, err := uc.Create(dto.CreateProductoRequest{
		Nombre:      "Widget",
		Descripcion: "widget de prueba",
		Precio:      decimal.RequireFromString("9.99"),
		Cantidad:    100,
		StockMinimo: 5,
	})
	require.NoError(t, err)
	return res
}

func TestProductoCreate(t *testing.T) {
	mem := testutil.NewMemoria()
	uc := newProductoUC(mem)

	res := crearWidget(t, uc)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "Widget", res.Nombre)
	assert.Equal(t, int64(100), res.Cantidad)
	assert.Equal(t, int64(usecase.StockMaximoPorDefecto), res.StockMaximo, "sin stock_maximo aplica el default")
	assert.True(t, res.Activo, "sin activo explícito el producto nace activo")
	assert.False(t, res.StockBajo)
}

func TestProductoCreateInvalido(t *testing.T) {
	mem := testutil.NewMemoria()
	uc := newProductoUC(mem)

	_, err := uc.Create(dto.CreateProductoRequest{Precio: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre vacío")

	_, err = uc.Create(dto.CreateProductoRequest{Nombre: "X", Precio: decimal.RequireFromString("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = uc.Create(dto.CreateProductoRequest{Nombre: "X", Cantidad: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	maximo := int64(5)
	_, err = uc.Create(dto.CreateProductoRequest{Nombre: "X", StockMinimo: 10, StockMaximo: &maximo})
	assert.ErrorIs(t, err, domain.ErrInvalidThresholds)
}

func TestProductoGetByIDInexistente(t *testing.T) {
	mem := testutil.NewMemoria()
	uc := newProductoUC(mem)

	res, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestProductoUpdateParcial(t *testing.T) {
	mem := testutil.NewMemoria()
	uc := newProductoUC(mem)
	creado := crearWidget(t, uc)

	descripcion := "nueva descripción"
	res, err := uc.Update(context.Background(), creado.ID, dto.UpdateProductoRequest{
		Descripcion: &descripcion,
	}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, descripcion, res.Descripcion)
	assert.Equal(t, "Widget", res.Nombre, "los campos no enviados no cambian")
	assert.Equal(t, int64(100), res.Cantidad, "el PATCH nunca toca la cantidad")

	// Una edición sin cambio de precio no deja movimientos.
	movs, err := mem.Movimientos().List(repository.MovimientoFiltro{ProductoID: creado.ID})
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestProductoUpdateCambioDePrecioDejaAjuste(t *testing.T) {
	mem := testutil.NewMemoria()
	uc := newProductoUC(mem)
	creado := crearWidget(t, uc)

	precio := decimal.RequireFromString("12.50")
	res, err := uc.Update(context.Background(), creado.ID, dto.UpdateProductoRequest{
		Precio: &precio,
	}, "admin-1")
	require.NoError(t, err)
	assert.True(t, res.Precio.Equal(precio))

	movs, err := mem.Movimientos().List(repository.MovimientoFiltro{ProductoID: creado.ID})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.TipoAjuste, movs[0].Tipo)
	assert.Equal(t, int64(0), movs[0].Cantidad)
	assert.Contains(t, movs[0].Observaciones, "cambio de precio")
	assert.Equal(t, "admin-1", movs[0].CreatedBy)
}

func TestProductoUpdateMismoPrecioNoDejaAjuste(t *testing.T) {
	mem := testutil.NewMemoria()
	uc := newProductoUC(mem)
	creado := crearWidget(t, uc)

	precio := decimal.RequireFromString("9.99")
	_, err := uc.Update(context.Background(), creado.ID, dto.UpdateProductoRequest{Precio: &precio}, "admin-1")
	require.NoError(t, err)

	movs, err := mem.Movimientos().List(repository.MovimientoFiltro{ProductoID: creado.ID})
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestProductoUpdateInexistente(t *testing.T) {
	mem := testutil.NewMemoria()
	uc := newProductoUC(mem)

	res, err := uc.Update(context.Background(), "no-existe", dto.UpdateProductoRequest{}, "admin-1")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestProductoUpdateUmbralesInvalidos(t *testing.T) {
	mem := testutil.NewMemoria()
	uc := newProductoUC(mem)
	creado := crearWidget(t, uc)

	minimo := int64(10000) // por encima del máximo por defecto
	_, err := uc.Update(context.Background(), creado.ID, dto.UpdateProductoRequest{StockMinimo: &minimo}, "admin-1")
	assert.ErrorIs(t, err, domain.ErrInvalidThresholds)
}

func TestProductoDelete(t *testing.T) {
	mem := testutil.NewMemoria()
	uc := newProductoUC(mem)
	creado := crearWidget(t, uc)

	require.NoError(t, uc.Delete(creado.ID))
	res, err := uc.GetByID(creado.ID)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestProductoList(t *testing.T) {
	mem := testutil.NewMemoria()
	uc := newProductoUC(mem)

	for _, nombre := range []string{"Zeta", "Alfa"} {
		_, err := uc.Create(dto.CreateProductoRequest{Nombre: nombre, Precio: decimal.Zero})
		require.NoError(t, err)
	}
	res, err := uc.List(50, 0)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Alfa", res.Items[0].Nombre, "orden alfabético")
	assert.Equal(t, 50, res.Page.Limit)
}
