package repository

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/taemotherlode01/ministore-api/internal/errors"
	"github.com/taemotherlode01/ministore-api/internal/filter"
	"github.com/taemotherlode01/ministore-api/internal/model"
)

type ProductRepositoryInterface interface {
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int) (*model.Product, error)
	GetByID(ctx context.Context, id int) (*model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	Find(ctx context.Context, pred filter.Predicate) ([]model.Product, error)
}

type ProductRepository struct {
	DB *sql.DB
}

const productColumns = `product_id, name, description, price, category, image_url`

const (
	insertProduct = `INSERT INTO products (` + productColumns + `) VALUES ($1, $2, $3, $4, $5, $6) RETURNING ` + productColumns
	updateProduct = `UPDATE products SET name=$1, description=$2, price=$3, category=$4, image_url=$5 WHERE product_id=$6 RETURNING ` + productColumns
	deleteProduct = `DELETE FROM products WHERE product_id=$1 RETURNING ` + productColumns
	selectProduct = `SELECT ` + productColumns + ` FROM products`
)

func scanProduct(row rowScanner, p *model.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURL)
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	row := r.DB.QueryRowContext(ctx, insertProduct, p.ID, p.Name, p.Description, p.Price, p.Category, p.ImageURL)
	if err := scanProduct(row, p); err != nil {
		return classifyInsert(err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	row := r.DB.QueryRowContext(ctx, updateProduct, p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.ID)
	if err := scanProduct(row, p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NewNotFound("product", p.ID)
		}
		return err
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) (*model.Product, error) {
	var p model.Product
	if err := scanProduct(r.DB.QueryRowContext(ctx, deleteProduct, id), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound("product", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	var p model.Product
	row := r.DB.QueryRowContext(ctx, selectProduct+` WHERE product_id = $1`, id)
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound("product", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	return r.query(ctx, selectProduct+` ORDER BY product_id`)
}

// Find returns the products matching pred, in store order.
func (r *ProductRepository) Find(ctx context.Context, pred filter.Predicate) ([]model.Product, error) {
	clause, args, err := filter.SQL(pred, filter.ProductColumns, 1)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, selectProduct+` WHERE `+clause, args...)
}

func (r *ProductRepository) query(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)
