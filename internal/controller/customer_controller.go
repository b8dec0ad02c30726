// internal/controller/customer_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"github.com/taemotherlode01/ministore-api/internal/model"
	"github.com/taemotherlode01/ministore-api/internal/respond"
	"github.com/taemotherlode01/ministore-api/internal/service"
)

type CustomerController struct {
	CustomerService *service.CustomerService
}

func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var body model.Customer
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid body")
		return
	}

	if err := c.CustomerService.Create(r.Context(), &body); err != nil {
		writeError(w, r, "Customer", err)
		return
	}
	respond.JSON(w, http.StatusOK, body)
}

// UpdateCustomer takes the id from the body, not the path.
func (c *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID          int    `json:"id"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		Address     string `json:"address"`
		Email       string `json:"email"`
		PhoneNumber string `json:"phone_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid body")
		return
	}

	customer := &model.Customer{
		ID:          body.ID,
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Address:     body.Address,
		Email:       body.Email,
		PhoneNumber: body.PhoneNumber,
	}
	if err := c.CustomerService.Update(r.Context(), customer); err != nil {
		writeError(w, r, "Customer", err)
		return
	}
	respond.JSON(w, http.StatusOK, customer)
}

func (c *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Customer", err)
		return
	}
	customer, err := c.CustomerService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, "Customer", err)
		return
	}
	respond.JSON(w, http.StatusOK, customer)
}

func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Customer", err)
		return
	}
	customer, err := c.CustomerService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "Customer", err)
		return
	}
	respond.JSON(w, http.StatusOK, customer)
}

func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.CustomerService.List(r.Context())
	if err != nil {
		writeError(w, r, "Customer", err)
		return
	}
	respond.JSON(w, http.StatusOK, customers)
}

func (c *CustomerController) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.CustomerService.SearchByTerm(r.Context(), termParam(r))
	if err != nil {
		writeError(w, r, "Customer", err)
		return
	}
	respond.JSON(w, http.StatusOK, customers)
}
