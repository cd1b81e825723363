package stock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acardona/stock-api/internal/application/stock"
	"github.com/acardona/stock-api/internal/domain"
	"github.com/acardona/stock-api/internal/domain/entity"
	"github.com/acardona/stock-api/internal/domain/repository"
	"github.com/acardona/stock-api/internal/testutil"
)

func seedProducto(t *testing.T, mem *testutil.Memoria, cantidad, maximo int64) *entity.Producto {
	t.Helper()
	p := &entity.Producto{
		ID:          "11111111-1111-1111-1111-111111111111",
		Nombre:      "Widget",
		Precio:      decimal.RequireFromString("9.99"),
		Cantidad:    cantidad,
		StockMinimo: 5,
		StockMaximo: maximo,
		Activo:      true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, mem.Productos().Create(p))
	return p
}

func TestAumentar(t *testing.T) {
	mem := testutil.NewMemoria()
	p := seedProducto(t, mem, 100, 9999)
	uc := stock.NewUseCase(mem.TxRunner())

	res, err := uc.Aumentar(context.Background(), p.ID, 50, "reposición", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, int64(150), res.NuevoStock)
	assert.NotEmpty(t, res.MovimientoID)

	actual, err := mem.Productos().GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(150), actual.Cantidad)

	movs, err := mem.Movimientos().List(repository.MovimientoFiltro{ProductoID: p.ID})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.TipoEntrada, movs[0].Tipo)
	assert.Equal(t, int64(50), movs[0].Cantidad)
	assert.True(t, movs[0].Procesado)
	assert.Equal(t, "admin-1", movs[0].CreatedBy)
}

func TestDisminuir(t *testing.T) {
	mem := testutil.NewMemoria()
	p := seedProducto(t, mem, 100, 9999)
	uc := stock.NewUseCase(mem.TxRunner())

	res, err := uc.Disminuir(context.Background(), p.ID, 30, "venta", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, int64(70), res.NuevoStock)

	movs, err := mem.Movimientos().List(repository.MovimientoFiltro{ProductoID: p.ID})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.TipoSalida, movs[0].Tipo)
	// La cantidad del movimiento es la magnitud, sin signo.
	assert.Equal(t, int64(30), movs[0].Cantidad)
}

func TestDisminuirStockInsuficiente(t *testing.T) {
	mem := testutil.NewMemoria()
	p := seedProducto(t, mem, 10, 9999)
	uc := stock.NewUseCase(mem.TxRunner())

	_, err := uc.Disminuir(context.Background(), p.ID, 11, "", "admin-1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La mutación rechazada no toca el stock ni deja movimiento.
	actual, err := mem.Productos().GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), actual.Cantidad)
	movs, err := mem.Movimientos().List(repository.MovimientoFiltro{ProductoID: p.ID})
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestDisminuirTodoElStock(t *testing.T) {
	mem := testutil.NewMemoria()
	p := seedProducto(t, mem, 10, 9999)
	uc := stock.NewUseCase(mem.TxRunner())

	res, err := uc.Disminuir(context.Background(), p.ID, 10, "", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.NuevoStock)
}

func TestMutacionCantidadInvalida(t *testing.T) {
	mem := testutil.NewMemoria()
	p := seedProducto(t, mem, 10, 9999)
	uc := stock.NewUseCase(mem.TxRunner())

	for _, cantidad := range []int64{0, -3} {
		_, err := uc.Aumentar(context.Background(), p.ID, cantidad, "", "admin-1")
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		_, err = uc.Disminuir(context.Background(), p.ID, cantidad, "", "admin-1")
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
}

func TestAumentarSobreElMaximo(t *testing.T) {
	mem := testutil.NewMemoria()
	p := seedProducto(t, mem, 90, 100)
	uc := stock.NewUseCase(mem.TxRunner())

	_, err := uc.Aumentar(context.Background(), p.ID, 20, "", "admin-1")
	assert.ErrorIs(t, err, domain.ErrStockExceedsMax)
}

func TestMutacionProductoInexistente(t *testing.T) {
	mem := testutil.NewMemoria()
	uc := stock.NewUseCase(mem.TxRunner())

	_, err := uc.Disminuir(context.Background(), "no-existe", 1, "", "admin-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Dos retiros concurrentes que no caben juntos: exactamente uno debe pasar y
// el otro debe revalidar contra el stock ya descontado y fallar.
func TestDisminuirConcurrente(t *testing.T) {
	mem := testutil.NewMemoria()
	p := seedProducto(t, mem, 100, 9999)
	uc := stock.NewUseCase(mem.TxRunner())

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Disminuir(context.Background(), p.ID, 70, "", "admin-1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var exitos, insuficientes int
	for err := range errs {
		switch {
		case err == nil:
			exitos++
		default:
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
			insuficientes++
		}
	}
	assert.Equal(t, 1, exitos)
	assert.Equal(t, 1, insuficientes)

	actual, err := mem.Productos().GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), actual.Cantidad)

	// El libro registra solo la mutación aceptada y su saldo neto cuadra.
	movs, err := mem.Movimientos().List(repository.MovimientoFiltro{ProductoID: p.ID})
	require.NoError(t, err)
	assert.Len(t, movs, 1)
}

func TestSaldoCuadraConElStock(t *testing.T) {
	mem := testutil.NewMemoria()
	p := seedProducto(t, mem, 0, 9999)
	uc := stock.NewUseCase(mem.TxRunner())
	ctx := context.Background()

	_, err := uc.Aumentar(ctx, p.ID, 100, "", "admin-1")
	require.NoError(t, err)
	_, err = uc.Disminuir(ctx, p.ID, 30, "", "admin-1")
	require.NoError(t, err)
	_, err = uc.Aumentar(ctx, p.ID, 50, "", "admin-1")
	require.NoError(t, err)

	actual, err := mem.Productos().GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(120), actual.Cantidad)

	saldo, err := mem.Movimientos().Saldo(p.ID)
	require.NoError(t, err)
	assert.Equal(t, actual.Cantidad-p.Cantidad, saldo, "Σ entradas − Σ salidas debe coincidir con el stock")
}

func TestRegistrarAjusteInTx(t *testing.T) {
	mem := testutil.NewMemoria()
	p := seedProducto(t, mem, 10, 9999)

	err := mem.TxRunner().Run(context.Background(), func(
		_ repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
	) error {
		_, err := stock.RegistrarAjusteInTx(movRepo, p.ID, "cambio de precio: 9.99 -> 12.50", "admin-1")
		return err
	})
	require.NoError(t, err)

	movs, err := mem.Movimientos().List(repository.MovimientoFiltro{ProductoID: p.ID})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.TipoAjuste, movs[0].Tipo)
	assert.Equal(t, int64(0), movs[0].Cantidad, "el ajuste documenta sin mover stock")

	// Los ajustes no afectan el saldo.
	saldo, err := mem.Movimientos().Saldo(p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), saldo)
}
