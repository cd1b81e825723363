// Package testutil provee implementaciones en memoria de los puertos de
// persistencia para las pruebas. El TxRunner serializa las transacciones con
// un mutex, emulando el bloqueo de fila de SELECT FOR UPDATE.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/acardona/stock-api/internal/domain"
	"github.com/acardona/stock-api/internal/domain/entity"
	"github.com/acardona/stock-api/internal/domain/repository"
)

// Memoria almacén compartido entre los repositorios en memoria.
type Memoria struct {
	mu          sync.Mutex
	productos   map[string]*entity.Producto
	movimientos []*entity.Movimiento
	admins      map[string]*entity.Administrador
}

// NewMemoria crea un almacén vacío.
func NewMemoria() *Memoria {
	return &Memoria{
		productos: make(map[string]*entity.Producto),
		admins:    make(map[string]*entity.Administrador),
	}
}

// Productos devuelve un repositorio de productos atado al almacén.
func (m *Memoria) Productos() repository.ProductoRepository {
	return &productoRepoMem{store: m, lockPerCall: true}
}

// Movimientos devuelve un repositorio de movimientos atado al almacén.
func (m *Memoria) Movimientos() repository.MovimientoRepository {
	return &movimientoRepoMem{store: m, lockPerCall: true}
}

// Administradores devuelve un repositorio de administradores atado al almacén.
func (m *Memoria) Administradores() repository.AdministradorRepository {
	return &adminRepoMem{store: m}
}

// TxRunner devuelve un runner que toma el lock del almacén durante todo el
// callback, igual que una transacción con la fila bloqueada.
func (m *Memoria) TxRunner() *TxRunnerMem {
	return &TxRunnerMem{store: m}
}

// TxRunnerMem implementa stock.TxRunner sobre el almacén en memoria.
type TxRunnerMem struct {
	store *Memoria
}

// Run ejecuta fn bajo el lock global del almacén. Los repos que recibe fn no
// vuelven a tomar el lock.
func (r *TxRunnerMem) Run(ctx context.Context, fn func(
	productoRepo repository.ProductoRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(
		&productoRepoMem{store: r.store},
		&movimientoRepoMem{store: r.store},
	)
}

type productoRepoMem struct {
	store       *Memoria
	lockPerCall bool
}

func (r *productoRepoMem) lock() func() {
	if !r.lockPerCall {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *productoRepoMem) Create(p *entity.Producto) error {
	defer r.lock()()
	for _, existing := range r.store.productos {
		if existing.Nombre == p.Nombre {
			return domain.ErrDuplicate
		}
	}
	copia := *p
	r.store.productos[p.ID] = &copia
	return nil
}

func (r *productoRepoMem) GetByID(id string) (*entity.Producto, error) {
	defer r.lock()()
	p, ok := r.store.productos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *productoRepoMem) GetForUpdate(id string) (*entity.Producto, error) {
	return r.GetByID(id)
}

func (r *productoRepoMem) List(limit, offset int) ([]*entity.Producto, error) {
	defer r.lock()()
	list := make([]*entity.Producto, 0, len(r.store.productos))
	for _, p := range r.store.productos {
		copia := *p
		list = append(list, &copia)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nombre < list[j].Nombre })
	return paginar(list, limit, offset), nil
}

func (r *productoRepoMem) Update(p *entity.Producto) error {
	defer r.lock()()
	existing, ok := r.store.productos[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cantidad := existing.Cantidad // Update nunca toca el stock
	copia := *p
	copia.Cantidad = cantidad
	r.store.productos[p.ID] = &copia
	return nil
}

func (r *productoRepoMem) ActualizarCantidad(id string, cantidad int64) error {
	defer r.lock()()
	p, ok := r.store.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Cantidad = cantidad
	return nil
}

func (r *productoRepoMem) Delete(id string) error {
	defer r.lock()()
	if _, ok := r.store.productos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.productos, id)
	restantes := r.store.movimientos[:0]
	for _, m := range r.store.movimientos {
		if m.ProductoID != id {
			restantes = append(restantes, m)
		}
	}
	r.store.movimientos = restantes
	return nil
}

func (r *productoRepoMem) ListStockBajo() ([]*entity.Producto, error) {
	defer r.lock()()
	var list []*entity.Producto
	for _, p := range r.store.productos {
		if p.Activo && p.Cantidad <= p.StockMinimo {
			copia := *p
			list = append(list, &copia)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Cantidad != list[j].Cantidad {
			return list[i].Cantidad < list[j].Cantidad
		}
		return list[i].Nombre < list[j].Nombre
	})
	return list, nil
}

func (r *productoRepoMem) ValorInventario() (decimal.Decimal, error) {
	defer r.lock()()
	total := decimal.Zero
	for _, p := range r.store.productos {
		if p.Activo {
			total = total.Add(p.ValorTotalStock())
		}
	}
	return total, nil
}

type movimientoRepoMem struct {
	store       *Memoria
	lockPerCall bool
}

func (r *movimientoRepoMem) lock() func() {
	if !r.lockPerCall {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *movimientoRepoMem) Create(m *entity.Movimiento) error {
	defer r.lock()()
	copia := *m
	r.store.movimientos = append(r.store.movimientos, &copia)
	return nil
}

func (r *movimientoRepoMem) List(filtro repository.MovimientoFiltro) ([]*repository.MovimientoDetalle, error) {
	defer r.lock()()
	var list []*repository.MovimientoDetalle
	for _, m := range r.store.movimientos {
		if filtro.ProductoID != "" && m.ProductoID != filtro.ProductoID {
			continue
		}
		if filtro.Tipo != "" && m.Tipo != filtro.Tipo {
			continue
		}
		detalle := &repository.MovimientoDetalle{Movimiento: *m}
		if p, ok := r.store.productos[m.ProductoID]; ok {
			detalle.ProductoNombre = p.Nombre
			detalle.ProductoDescripcion = p.Descripcion
			detalle.ProductoPrecio = p.Precio
		}
		list = append(list, detalle)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Fecha.Equal(list[j].Fecha) {
			return list[i].Fecha.After(list[j].Fecha)
		}
		return list[i].ID > list[j].ID
	})
	return paginar(list, filtro.Limit, filtro.Offset), nil
}

func (r *movimientoRepoMem) Saldo(productoID string) (int64, error) {
	defer r.lock()()
	var saldo int64
	for _, m := range r.store.movimientos {
		if m.ProductoID != productoID {
			continue
		}
		switch m.Tipo {
		case entity.TipoEntrada:
			saldo += m.Cantidad
		case entity.TipoSalida:
			saldo -= m.Cantidad
		}
	}
	return saldo, nil
}

type adminRepoMem struct {
	store *Memoria
}

func (r *adminRepoMem) Create(a *entity.Administrador) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.admins {
		if existing.Username == a.Username {
			return domain.ErrUsernameExists
		}
	}
	copia := *a
	r.store.admins[a.ID] = &copia
	return nil
}

func (r *adminRepoMem) GetByID(id string) (*entity.Administrador, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a, ok := r.store.admins[id]
	if !ok {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (r *adminRepoMem) GetByUsername(username string) (*entity.Administrador, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.admins {
		if a.Username == username {
			copia := *a
			return &copia, nil
		}
	}
	return nil, nil
}

func paginar[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
