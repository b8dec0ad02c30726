// internal/service/customer_service.go
package service

import (
	"context"

	appErrors "github.com/taemotherlode01/ministore-api/internal/errors"
	"github.com/taemotherlode01/ministore-api/internal/filter"
	"github.com/taemotherlode01/ministore-api/internal/model"
	"github.com/taemotherlode01/ministore-api/internal/queue"
	"github.com/taemotherlode01/ministore-api/internal/repository"
)

type CustomerService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	Queue        queue.Queue
}

// SearchByTerm returns customers whose first name or email contains term.
// Zero matches is a NotFoundError; store failures are StoreFaults.
func (s *CustomerService) SearchByTerm(ctx context.Context, term string) ([]model.Customer, error) {
	pred, err := filter.CustomerTerm(term)
	if err != nil {
		return nil, err
	}
	customers, err := s.CustomerRepo.Find(ctx, pred)
	if err != nil {
		return nil, appErrors.Fault("search customers", err)
	}
	if len(customers) == 0 {
		return nil, appErrors.NewNoMatches("customer", term)
	}
	return customers, nil
}

func (s *CustomerService) Create(ctx context.Context, c *model.Customer) error {
	if c.ID <= 0 {
		return appErrors.Invalid("customer_id must be a positive integer")
	}
	if err := s.CustomerRepo.Create(ctx, c); err != nil {
		return appErrors.Fault("create customer", err)
	}
	publish(s.Queue, model.KindCustomer, model.ActionCreated, c.ID)
	return nil
}

func (s *CustomerService) Update(ctx context.Context, c *model.Customer) error {
	if c.ID <= 0 {
		return appErrors.Invalid("id must be a positive integer")
	}
	if err := s.CustomerRepo.Update(ctx, c); err != nil {
		return appErrors.Fault("update customer", err)
	}
	publish(s.Queue, model.KindCustomer, model.ActionUpdated, c.ID)
	return nil
}

func (s *CustomerService) Delete(ctx context.Context, id int) (*model.Customer, error) {
	c, err := s.CustomerRepo.Delete(ctx, id)
	if err != nil {
		return nil, appErrors.Fault("delete customer", err)
	}
	publish(s.Queue, model.KindCustomer, model.ActionDeleted, id)
	return c, nil
}

func (s *CustomerService) Get(ctx context.Context, id int) (*model.Customer, error) {
	c, err := s.CustomerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, appErrors.Fault("get customer", err)
	}
	return c, nil
}

func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.CustomerRepo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Fault("list customers", err)
	}
	return customers, nil
}
