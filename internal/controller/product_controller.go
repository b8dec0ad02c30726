// internal/controller/product_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"github.com/taemotherlode01/ministore-api/internal/model"
	"github.com/taemotherlode01/ministore-api/internal/respond"
	"github.com/taemotherlode01/ministore-api/internal/service"
)

type ProductController struct {
	ProductService *service.ProductService
}

func (c *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var body model.Product
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid body")
		return
	}

	if err := c.ProductService.Create(r.Context(), &body); err != nil {
		writeError(w, r, "Product", err)
		return
	}
	respond.JSON(w, http.StatusOK, body)
}

// UpdateProduct takes the id from the body, not the path.
func (c *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID          int     `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Category    string  `json:"category"`
		ImageURL    string  `json:"image_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid body")
		return
	}

	product := &model.Product{
		ID:          body.ID,
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Category:    body.Category,
		ImageURL:    body.ImageURL,
	}
	if err := c.ProductService.Update(r.Context(), product); err != nil {
		writeError(w, r, "Product", err)
		return
	}
	respond.JSON(w, http.StatusOK, product)
}

func (c *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Product", err)
		return
	}
	product, err := c.ProductService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, "Product", err)
		return
	}
	respond.JSON(w, http.StatusOK, product)
}

func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Product", err)
		return
	}
	product, err := c.ProductService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, "Product", err)
		return
	}
	respond.JSON(w, http.StatusOK, product)
}

func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.ProductService.List(r.Context())
	if err != nil {
		writeError(w, r, "Product", err)
		return
	}
	respond.JSON(w, http.StatusOK, products)
}

// SearchProducts reads the term from the path and optional minPrice and
// maxPrice from the query string.
func (c *ProductController) SearchProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products, err := c.ProductService.SearchByTerm(r.Context(), termParam(r), q.Get("minPrice"), q.Get("maxPrice"))
	if err != nil {
		writeError(w, r, "Product", err)
		return
	}
	respond.JSON(w, http.StatusOK, products)
}
