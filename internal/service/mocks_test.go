package service_test

import (
	"context"
	"sync"

	appErrors "github.com/taemotherlode01/ministore-api/internal/errors"
	"github.com/taemotherlode01/ministore-api/internal/filter"
	"github.com/taemotherlode01/ministore-api/internal/model"
	"github.com/taemotherlode01/ministore-api/internal/queue"
)

// --- Mock Repositories ---

type MockCustomerRepo struct {
	customers []model.Customer
	err       error
	findCalls int
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.customers {
		if existing.ID == c.ID {
			return appErrors.ErrConflict
		}
	}
	m.customers = append(m.customers, *c)
	return nil
}

func (m *MockCustomerRepo) Update(ctx context.Context, c *model.Customer) error {
	for i := range m.customers {
		if m.customers[i].ID == c.ID {
			m.customers[i] = *c
			return nil
		}
	}
	return appErrors.NewNotFound("customer", c.ID)
}

func (m *MockCustomerRepo) Delete(ctx context.Context, id int) (*model.Customer, error) {
	for i, c := range m.customers {
		if c.ID == id {
			m.customers = append(m.customers[:i], m.customers[i+1:]...)
			return &c, nil
		}
	}
	return nil, appErrors.NewNotFound("customer", id)
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, appErrors.NewNotFound("customer", id)
}

func (m *MockCustomerRepo) ListAll(ctx context.Context) ([]model.Customer, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.customers, nil
}

func (m *MockCustomerRepo) Find(ctx context.Context, pred filter.Predicate) ([]model.Customer, error) {
	m.findCalls++
	if m.err != nil {
		return nil, m.err
	}
	out := []model.Customer{}
	for _, c := range m.customers {
		if filter.Match(pred, c) {
			out = append(out, c)
		}
	}
	return out, nil
}

type MockProductRepo struct {
	products  []model.Product
	err       error
	lastPred  filter.Predicate
	findCalls int
}

func (m *MockProductRepo) Create(ctx context.Context, p *model.Product) error {
	if m.err != nil {
		return m.err
	}
	m.products = append(m.products, *p)
	return nil
}

func (m *MockProductRepo) Update(ctx context.Context, p *model.Product) error {
	for i := range m.products {
		if m.products[i].ID == p.ID {
			m.products[i] = *p
			return nil
		}
	}
	return appErrors.NewNotFound("product", p.ID)
}

func (m *MockProductRepo) Delete(ctx context.Context, id int) (*model.Product, error) {
	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return &p, nil
		}
	}
	return nil, appErrors.NewNotFound("product", id)
}

func (m *MockProductRepo) GetByID(ctx context.Context, id int) (*model.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, appErrors.NewNotFound("product", id)
}

func (m *MockProductRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	return m.products, m.err
}

func (m *MockProductRepo) Find(ctx context.Context, pred filter.Predicate) ([]model.Product, error) {
	m.findCalls++
	m.lastPred = pred
	if m.err != nil {
		return nil, m.err
	}
	out := []model.Product{}
	for _, p := range m.products {
		if filter.Match(pred, p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// RecordingQueue captures published events synchronously.
type RecordingQueue struct {
	mu     sync.Mutex
	events []model.RecordEvent
}

func (q *RecordingQueue) Publish(topic string, ev model.RecordEvent) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, ev)
	return nil
}

func (q *RecordingQueue) Subscribe(topic string, handler queue.Handler) error { return nil }

func (q *RecordingQueue) Topics() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]string, 0, len(q.events))
	for _, ev := range q.events {
		out = append(out, ev.Topic())
	}
	return out
}
