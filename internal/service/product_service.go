// internal/service/product_service.go
package service

import (
	"context"
	"math"

	appErrors "github.com/taemotherlode01/ministore-api/internal/errors"
	"github.com/taemotherlode01/ministore-api/internal/filter"
	"github.com/taemotherlode01/ministore-api/internal/model"
	"github.com/taemotherlode01/ministore-api/internal/obs"
	"github.com/taemotherlode01/ministore-api/internal/queue"
	"github.com/taemotherlode01/ministore-api/internal/repository"
)

type ProductService struct {
	ProductRepo repository.ProductRepositoryInterface
	Queue       queue.Queue
	// PriceMode decides whether price bounds widen or narrow a term search.
	PriceMode filter.Mode
}

// SearchByTerm returns products whose name, description or category contains
// term, combined with the price bounds parsed from minRaw and maxRaw.
// Unparsable bounds are ignored.
func (s *ProductService) SearchByTerm(ctx context.Context, term, minRaw, maxRaw string) ([]model.Product, error) {
	minPrice, maxPrice := filter.ParseBound(minRaw), filter.ParseBound(maxRaw)
	pred, err := filter.ProductTerm(term, minPrice, maxPrice, s.PriceMode)
	if err != nil {
		return nil, err
	}
	obs.Logger.Debug("product search",
		"term", term,
		"min_price", minRaw,
		"max_price", maxRaw,
		"mode", s.PriceMode.String(),
	)
	products, err := s.ProductRepo.Find(ctx, pred)
	if err != nil {
		return nil, appErrors.Fault("search products", err)
	}
	if len(products) == 0 {
		return nil, appErrors.NewNoMatches("product", term)
	}
	return products, nil
}

func validateProduct(p *model.Product) error {
	if p.ID <= 0 {
		return appErrors.Invalid("product_id must be a positive integer")
	}
	if p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return appErrors.Invalid("price must be a non-negative number")
	}
	return nil
}

func (s *ProductService) Create(ctx context.Context, p *model.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if err := s.ProductRepo.Create(ctx, p); err != nil {
		return appErrors.Fault("create product", err)
	}
	publish(s.Queue, model.KindProduct, model.ActionCreated, p.ID)
	return nil
}

func (s *ProductService) Update(ctx context.Context, p *model.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if err := s.ProductRepo.Update(ctx, p); err != nil {
		return appErrors.Fault("update product", err)
	}
	publish(s.Queue, model.KindProduct, model.ActionUpdated, p.ID)
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id int) (*model.Product, error) {
	p, err := s.ProductRepo.Delete(ctx, id)
	if err != nil {
		return nil, appErrors.Fault("delete product", err)
	}
	publish(s.Queue, model.KindProduct, model.ActionDeleted, id)
	return p, nil
}

func (s *ProductService) Get(ctx context.Context, id int) (*model.Product, error) {
	p, err := s.ProductRepo.GetByID(ctx, id)
	if err != nil {
		return nil, appErrors.Fault("get product", err)
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.ProductRepo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Fault("list products", err)
	}
	return products, nil
}
