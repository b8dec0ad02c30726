package repository

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/taemotherlode01/ministore-api/internal/errors"
	"github.com/taemotherlode01/ministore-api/internal/filter"
	"github.com/taemotherlode01/ministore-api/internal/model"
)

// CustomerRepositoryInterface defines methods used by service
type CustomerRepositoryInterface interface {
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id int) (*model.Customer, error)
	GetByID(ctx context.Context, id int) (*model.Customer, error)
	ListAll(ctx context.Context) ([]model.Customer, error)
	Find(ctx context.Context, pred filter.Predicate) ([]model.Customer, error)
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	DB *sql.DB
}

const customerColumns = `customer_id, first_name, last_name, address, email, phone_number`

const (
	insertCustomer = `INSERT INTO customers (` + customerColumns + `) VALUES ($1, $2, $3, $4, $5, $6) RETURNING ` + customerColumns
	updateCustomer = `UPDATE customers SET first_name=$1, last_name=$2, address=$3, email=$4, phone_number=$5 WHERE customer_id=$6 RETURNING ` + customerColumns
	deleteCustomer = `DELETE FROM customers WHERE customer_id=$1 RETURNING ` + customerColumns
	selectCustomer = `SELECT ` + customerColumns + ` FROM customers`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner, c *model.Customer) error {
	return row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Address, &c.Email, &c.PhoneNumber)
}

// Create inserts a customer; the caller supplies the id.
func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	row := r.DB.QueryRowContext(ctx, insertCustomer, c.ID, c.FirstName, c.LastName, c.Address, c.Email, c.PhoneNumber)
	if err := scanCustomer(row, c); err != nil {
		return classifyInsert(err)
	}
	return nil
}

// Update overwrites every column of the customer with c.ID.
func (r *CustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	row := r.DB.QueryRowContext(ctx, updateCustomer, c.FirstName, c.LastName, c.Address, c.Email, c.PhoneNumber, c.ID)
	if err := scanCustomer(row, c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NewNotFound("customer", c.ID)
		}
		return err
	}
	return nil
}

// Delete removes a customer and returns the removed row.
func (r *CustomerRepository) Delete(ctx context.Context, id int) (*model.Customer, error) {
	var c model.Customer
	if err := scanCustomer(r.DB.QueryRowContext(ctx, deleteCustomer, id), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound("customer", id)
		}
		return nil, err
	}
	return &c, nil
}

// GetByID fetches a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	var c model.Customer
	row := r.DB.QueryRowContext(ctx, selectCustomer+` WHERE customer_id = $1`, id)
	if err := scanCustomer(row, &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFound("customer", id)
		}
		return nil, err
	}
	return &c, nil
}

// ListAll fetches all customers ordered by id.
func (r *CustomerRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	return r.query(ctx, selectCustomer+` ORDER BY customer_id`)
}

// Find returns the customers matching pred, in store order.
func (r *CustomerRepository) Find(ctx context.Context, pred filter.Predicate) ([]model.Customer, error) {
	clause, args, err := filter.SQL(pred, filter.CustomerColumns, 1)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, selectCustomer+` WHERE `+clause, args...)
}

func (r *CustomerRepository) query(ctx context.Context, query string, args ...any) ([]model.Customer, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
