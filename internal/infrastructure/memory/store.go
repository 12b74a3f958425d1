// Package memory implementa todos los repositorios sobre mapas protegidos por un RWMutex.
// Sirve para desarrollo (APP_ENV=development con STORE_BACKEND=memory) y como fixture de tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/tacohut-api/internal/application/sales"
	"github.com/jhoicas/tacohut-api/internal/domain"
	"github.com/jhoicas/tacohut-api/internal/domain/entity"
	"github.com/jhoicas/tacohut-api/internal/domain/repository"
	"github.com/jhoicas/tacohut-api/internal/infrastructure/seed"
)

var (
	_ repository.SaleRepository      = (*SaleRepository)(nil)
	_ repository.ExpenseRepository   = (*ExpenseRepository)(nil)
	_ repository.MenuRepository      = (*MenuRepository)(nil)
	_ repository.InventoryRepository = (*InventoryRepository)(nil)
	_ repository.AlertRepository     = (*AlertRepository)(nil)
	_ repository.TransactionSource   = (*Store)(nil)
	_ sales.TxRunner                 = (*Store)(nil)
)

// Store estado completo en memoria.
type Store struct {
	mu        sync.RWMutex
	sales     map[string]entity.Sale
	expenses  map[string]entity.Expense
	menu      map[string]entity.MenuItem
	inventory map[string]entity.InventoryItem
	alerts    map[string]entity.Alert
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{
		sales:     make(map[string]entity.Sale),
		expenses:  make(map[string]entity.Expense),
		menu:      make(map[string]entity.MenuItem),
		inventory: make(map[string]entity.InventoryItem),
		alerts:    make(map[string]entity.Alert),
	}
}

// NewSeeded crea un almacén con los datos de demostración.
func NewSeeded() *Store {
	s := New()
	s.Load(seed.Demo())
	return s
}

// Load agrega (o reemplaza por ID) los registros del dataset.
func (s *Store) Load(ds seed.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range ds.Menu {
		s.menu[m.ID] = cloneMenuItem(m)
	}
	for _, i := range ds.Inventory {
		s.inventory[i.ID] = cloneInventoryItem(i)
	}
	for _, v := range ds.Sales {
		s.sales[v.ID] = cloneSale(v)
	}
	for _, e := range ds.Expenses {
		s.expenses[e.ID] = e
	}
	for _, a := range ds.Alerts {
		s.alerts[a.ID] = a
	}
}

// Repositorios con bloqueo propio (fuera de transacción).
func (s *Store) Sales() *SaleRepository          { return &SaleRepository{s: s} }
func (s *Store) Expenses() *ExpenseRepository    { return &ExpenseRepository{s: s} }
func (s *Store) Menu() *MenuRepository           { return &MenuRepository{s: s} }
func (s *Store) Inventory() *InventoryRepository { return &InventoryRepository{s: s} }
func (s *Store) Alerts() *AlertRepository        { return &AlertRepository{s: s} }

// ListSales implementa repository.TransactionSource.
func (s *Store) ListSales(ctx context.Context) ([]entity.Sale, error) { return s.Sales().List(ctx) }

// ListExpenses implementa repository.TransactionSource.
func (s *Store) ListExpenses(ctx context.Context) ([]entity.Expense, error) {
	return s.Expenses().List(ctx)
}

// RunSale ejecuta fn con el lock de escritura tomado y repos atados a él.
// Si fn falla se restaura el estado anterior.
func (s *Store) RunSale(ctx context.Context, fn func(
	sales repository.SaleRepository,
	menu repository.MenuRepository,
	inventory repository.InventoryRepository,
	alerts repository.AlertRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	err := fn(
		&SaleRepository{s: s, inTx: true},
		&MenuRepository{s: s, inTx: true},
		&InventoryRepository{s: s, inTx: true},
		&AlertRepository{s: s, inTx: true},
	)
	if err != nil {
		s.restore(snap)
	}
	return err
}

type snapshot struct {
	sales     map[string]entity.Sale
	inventory map[string]entity.InventoryItem
	alerts    map[string]entity.Alert
}

func (s *Store) snapshot() snapshot {
	return snapshot{sales: copyMap(s.sales), inventory: copyMap(s.inventory), alerts: copyMap(s.alerts)}
}

func (s *Store) restore(snap snapshot) {
	s.sales, s.inventory, s.alerts = snap.sales, snap.inventory, snap.alerts
}

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *Store) read(inTx bool, fn func()) {
	if !inTx {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn()
}

func (s *Store) write(inTx bool, fn func()) {
	if !inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn()
}

// ── Ventas ───────────────────────────────────────────────────────────────────

// SaleRepository implementa repository.SaleRepository.
type SaleRepository struct {
	s    *Store
	inTx bool
}

func (r *SaleRepository) Create(_ context.Context, sale *entity.Sale) error {
	var err error
	r.s.write(r.inTx, func() {
		if _, ok := r.s.sales[sale.ID]; ok {
			err = domain.ErrDuplicate
			return
		}
		r.s.sales[sale.ID] = cloneSale(*sale)
	})
	return err
}

func (r *SaleRepository) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	var out *entity.Sale
	r.s.read(r.inTx, func() {
		if v, ok := r.s.sales[id]; ok {
			c := cloneSale(v)
			out = &c
		}
	})
	if out == nil {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

func (r *SaleRepository) List(_ context.Context) ([]entity.Sale, error) {
	out := make([]entity.Sale, 0)
	r.s.read(r.inTx, func() {
		for _, v := range r.s.sales {
			out = append(out, cloneSale(v))
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RecordedAt.Equal(out[j].RecordedAt) {
			return out[i].RecordedAt.After(out[j].RecordedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *SaleRepository) Delete(_ context.Context, id string) error {
	var err error
	r.s.write(r.inTx, func() {
		if _, ok := r.s.sales[id]; !ok {
			err = domain.ErrNotFound
			return
		}
		delete(r.s.sales, id)
	})
	return err
}

// ── Gastos ───────────────────────────────────────────────────────────────────

// ExpenseRepository implementa repository.ExpenseRepository.
type ExpenseRepository struct {
	s    *Store
	inTx bool
}

func (r *ExpenseRepository) Create(_ context.Context, e *entity.Expense) error {
	var err error
	r.s.write(r.inTx, func() {
		if _, ok := r.s.expenses[e.ID]; ok {
			err = domain.ErrDuplicate
			return
		}
		r.s.expenses[e.ID] = *e
	})
	return err
}

func (r *ExpenseRepository) GetByID(_ context.Context, id string) (*entity.Expense, error) {
	var out *entity.Expense
	r.s.read(r.inTx, func() {
		if v, ok := r.s.expenses[id]; ok {
			out = &v
		}
	})
	if out == nil {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

func (r *ExpenseRepository) List(_ context.Context) ([]entity.Expense, error) {
	out := make([]entity.Expense, 0)
	r.s.read(r.inTx, func() {
		for _, v := range r.s.expenses {
			out = append(out, v)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RecordedAt.Equal(out[j].RecordedAt) {
			return out[i].RecordedAt.After(out[j].RecordedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *ExpenseRepository) Delete(_ context.Context, id string) error {
	var err error
	r.s.write(r.inTx, func() {
		if _, ok := r.s.expenses[id]; !ok {
			err = domain.ErrNotFound
			return
		}
		delete(r.s.expenses, id)
	})
	return err
}

// ── Menú ─────────────────────────────────────────────────────────────────────

// MenuRepository implementa repository.MenuRepository.
type MenuRepository struct {
	s    *Store
	inTx bool
}

func (r *MenuRepository) Create(_ context.Context, m *entity.MenuItem) error {
	var err error
	r.s.write(r.inTx, func() {
		if _, ok := r.s.menu[m.ID]; ok {
			err = domain.ErrDuplicate
			return
		}
		r.s.menu[m.ID] = cloneMenuItem(*m)
	})
	return err
}

func (r *MenuRepository) GetByID(_ context.Context, id string) (*entity.MenuItem, error) {
	var out *entity.MenuItem
	r.s.read(r.inTx, func() {
		if v, ok := r.s.menu[id]; ok {
			c := cloneMenuItem(v)
			out = &c
		}
	})
	if out == nil {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

func (r *MenuRepository) List(_ context.Context) ([]entity.MenuItem, error) {
	out := make([]entity.MenuItem, 0)
	r.s.read(r.inTx, func() {
		for _, v := range r.s.menu {
			out = append(out, cloneMenuItem(v))
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *MenuRepository) Update(_ context.Context, m *entity.MenuItem) error {
	var err error
	r.s.write(r.inTx, func() {
		if _, ok := r.s.menu[m.ID]; !ok {
			err = domain.ErrNotFound
			return
		}
		r.s.menu[m.ID] = cloneMenuItem(*m)
	})
	return err
}

func (r *MenuRepository) Delete(_ context.Context, id string) error {
	var err error
	r.s.write(r.inTx, func() {
		if _, ok := r.s.menu[id]; !ok {
			err = domain.ErrNotFound
			return
		}
		delete(r.s.menu, id)
	})
	return err
}

// ── Inventario ───────────────────────────────────────────────────────────────

// InventoryRepository implementa repository.InventoryRepository.
type InventoryRepository struct {
	s    *Store
	inTx bool
}

func (r *InventoryRepository) Create(_ context.Context, it *entity.InventoryItem) error {
	var err error
	r.s.write(r.inTx, func() {
		if _, ok := r.s.inventory[it.ID]; ok {
			err = domain.ErrDuplicate
			return
		}
		r.s.inventory[it.ID] = cloneInventoryItem(*it)
	})
	return err
}

func (r *InventoryRepository) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	var out *entity.InventoryItem
	r.s.read(r.inTx, func() {
		if v, ok := r.s.inventory[id]; ok {
			c := cloneInventoryItem(v)
			out = &c
		}
	})
	if out == nil {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

func (r *InventoryRepository) List(_ context.Context) ([]entity.InventoryItem, error) {
	out := make([]entity.InventoryItem, 0)
	r.s.read(r.inTx, func() {
		for _, v := range r.s.inventory {
			out = append(out, cloneInventoryItem(v))
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ListForUpdate equivale a List: dentro de RunSale el lock de escritura ya está tomado.
func (r *InventoryRepository) ListForUpdate(ctx context.Context) ([]entity.InventoryItem, error) {
	return r.List(ctx)
}

func (r *InventoryRepository) Update(_ context.Context, it *entity.InventoryItem) error {
	var err error
	r.s.write(r.inTx, func() {
		if _, ok := r.s.inventory[it.ID]; !ok {
			err = domain.ErrNotFound
			return
		}
		r.s.inventory[it.ID] = cloneInventoryItem(*it)
	})
	return err
}

// ── Alertas ──────────────────────────────────────────────────────────────────

// AlertRepository implementa repository.AlertRepository.
type AlertRepository struct {
	s    *Store
	inTx bool
}

func (r *AlertRepository) Create(_ context.Context, a *entity.Alert) error {
	var err error
	r.s.write(r.inTx, func() {
		if _, ok := r.s.alerts[a.ID]; ok {
			err = domain.ErrDuplicate
			return
		}
		r.s.alerts[a.ID] = *a
	})
	return err
}

func (r *AlertRepository) List(_ context.Context, onlyPending bool) ([]entity.Alert, error) {
	out := make([]entity.Alert, 0)
	r.s.read(r.inTx, func() {
		for _, a := range r.s.alerts {
			if onlyPending && a.Acknowledged {
				continue
			}
			out = append(out, a)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *AlertRepository) Acknowledge(_ context.Context, id string) error {
	var err error
	r.s.write(r.inTx, func() {
		a, ok := r.s.alerts[id]
		if !ok {
			err = domain.ErrNotFound
			return
		}
		a.Acknowledged = true
		r.s.alerts[id] = a
	})
	return err
}

// ── Copias ───────────────────────────────────────────────────────────────────

func cloneSale(s entity.Sale) entity.Sale {
	s.Items = append([]entity.SaleItem(nil), s.Items...)
	return s
}

func cloneMenuItem(m entity.MenuItem) entity.MenuItem {
	m.Ingredients = append([]entity.Ingredient(nil), m.Ingredients...)
	return m
}

func cloneInventoryItem(i entity.InventoryItem) entity.InventoryItem {
	if i.ExpiryDate != nil {
		t := *i.ExpiryDate
		i.ExpiryDate = &t
	}
	return i
}
