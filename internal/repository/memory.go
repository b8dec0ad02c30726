package repository

import (
	"context"
	"sort"
	"sync"

	appErrors "github.com/taemotherlode01/ministore-api/internal/errors"
	"github.com/taemotherlode01/ministore-api/internal/filter"
	"github.com/taemotherlode01/ministore-api/internal/model"
)

// memoryTable keeps rows in insertion order, which is the order Find returns.
type memoryTable[T filter.Record] struct {
	mu     sync.RWMutex
	rows   []T
	id     func(T) int
	entity string
}

func (t *memoryTable[T]) indexOf(id int) int {
	for i, row := range t.rows {
		if t.id(row) == id {
			return i
		}
	}
	return -1
}

func (t *memoryTable[T]) create(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.indexOf(t.id(row)) >= 0 {
		return appErrors.ErrConflict
	}
	t.rows = append(t.rows, row)
	return nil
}

func (t *memoryTable[T]) update(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexOf(t.id(row))
	if i < 0 {
		return appErrors.NewNotFound(t.entity, t.id(row))
	}
	t.rows[i] = row
	return nil
}

func (t *memoryTable[T]) delete(id int) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	i := t.indexOf(id)
	if i < 0 {
		return zero, appErrors.NewNotFound(t.entity, id)
	}
	row := t.rows[i]
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return row, nil
}

func (t *memoryTable[T]) get(id int) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var zero T
	i := t.indexOf(id)
	if i < 0 {
		return zero, appErrors.NewNotFound(t.entity, id)
	}
	return t.rows[i], nil
}

func (t *memoryTable[T]) list() []T {
	t.mu.RLock()
	out := append([]T{}, t.rows...)
	t.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return t.id(out[i]) < t.id(out[j]) })
	return out
}

func (t *memoryTable[T]) find(pred filter.Predicate) ([]T, error) {
	if pred == nil {
		return nil, filter.ErrNilPredicate
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := []T{}
	for _, row := range t.rows {
		if filter.Match(pred, row) {
			out = append(out, row)
		}
	}
	return out, nil
}

// MemoryCustomerRepository is a process-local customer store.
type MemoryCustomerRepository struct {
	table memoryTable[model.Customer]
}

func NewMemoryCustomerRepository(seed ...model.Customer) *MemoryCustomerRepository {
	r := &MemoryCustomerRepository{table: memoryTable[model.Customer]{
		id:     func(c model.Customer) int { return c.ID },
		entity: "customer",
	}}
	r.table.rows = append(r.table.rows, seed...)
	return r
}

func (r *MemoryCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	return r.table.create(*c)
}

func (r *MemoryCustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	return r.table.update(*c)
}

func (r *MemoryCustomerRepository) Delete(ctx context.Context, id int) (*model.Customer, error) {
	c, err := r.table.delete(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MemoryCustomerRepository) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	c, err := r.table.get(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MemoryCustomerRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	return r.table.list(), nil
}

func (r *MemoryCustomerRepository) Find(ctx context.Context, pred filter.Predicate) ([]model.Customer, error) {
	return r.table.find(pred)
}

// MemoryProductRepository is a process-local product store.
type MemoryProductRepository struct {
	table memoryTable[model.Product]
}

func NewMemoryProductRepository(seed ...model.Product) *MemoryProductRepository {
	r := &MemoryProductRepository{table: memoryTable[model.Product]{
		id:     func(p model.Product) int { return p.ID },
		entity: "product",
	}}
	r.table.rows = append(r.table.rows, seed...)
	return r
}

func (r *MemoryProductRepository) Create(ctx context.Context, p *model.Product) error {
	return r.table.create(*p)
}

func (r *MemoryProductRepository) Update(ctx context.Context, p *model.Product) error {
	return r.table.update(*p)
}

func (r *MemoryProductRepository) Delete(ctx context.Context, id int) (*model.Product, error) {
	p, err := r.table.delete(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MemoryProductRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	p, err := r.table.get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MemoryProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	return r.table.list(), nil
}

func (r *MemoryProductRepository) Find(ctx context.Context, pred filter.Predicate) ([]model.Product, error) {
	return r.table.find(pred)
}

var (
	_ CustomerRepositoryInterface = (*MemoryCustomerRepository)(nil)
	_ ProductRepositoryInterface  = (*MemoryProductRepository)(nil)
)
