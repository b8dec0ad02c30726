package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/taemotherlode01/ministore-api/internal/controller"
	"github.com/taemotherlode01/ministore-api/internal/filter"
	"github.com/taemotherlode01/ministore-api/internal/model"
	"github.com/taemotherlode01/ministore-api/internal/repository"
	"github.com/taemotherlode01/ministore-api/internal/service"
)

// --- Mock Repositories ---

// brokenCustomerRepo fails every search as a dropped connection would.
type brokenCustomerRepo struct {
	*repository.MemoryCustomerRepository
}

func (brokenCustomerRepo) Find(ctx context.Context, pred filter.Predicate) ([]model.Customer, error) {
	return nil, errors.New("driver: bad connection")
}

// --- Helpers ---

func customerServer(repo repository.CustomerRepositoryInterface) http.Handler {
	ctrl := &controller.CustomerController{
		CustomerService: &service.CustomerService{CustomerRepo: repo},
	}
	r := chi.NewRouter()
	r.Post("/customers", ctrl.CreateCustomer)
	r.Put("/customers", ctrl.UpdateCustomer)
	r.Delete("/customers/{id}", ctrl.DeleteCustomer)
	r.Get("/customers/{id}", ctrl.GetCustomer)
	r.Get("/customers/q/{term}", ctrl.SearchCustomers)
	r.Get("/customers", ctrl.ListCustomers)
	return r
}

func productServer(repo repository.ProductRepositoryInterface, mode filter.Mode) http.Handler {
	ctrl := &controller.ProductController{
		ProductService: &service.ProductService{ProductRepo: repo, PriceMode: mode},
	}
	r := chi.NewRouter()
	r.Post("/products", ctrl.CreateProduct)
	r.Put("/products", ctrl.UpdateProduct)
	r.Delete("/products/{id}", ctrl.DeleteProduct)
	r.Get("/products/{id}", ctrl.GetProduct)
	r.Get("/products/q/{term}", ctrl.SearchProducts)
	r.Get("/products", ctrl.ListProducts)
	return r
}

func do(h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a message body: %q", w.Body.String())
	}
	return body.Message
}

func seededCustomers() *repository.MemoryCustomerRepository {
	return repository.NewMemoryCustomerRepository(
		model.Customer{ID: 1, FirstName: "Ada", Email: "ada@example.com"},
		model.Customer{ID: 2, FirstName: "Grace", Email: "xphonex@example.com"},
	)
}

func seededProducts() *repository.MemoryProductRepository {
	return repository.NewMemoryProductRepository(
		model.Product{ID: 1, Name: "Teapot", Description: "Cast iron", Price: 30, Category: "kitchen"},
		model.Product{ID: 2, Name: "Mug", Description: "Stoneware", Price: 15, Category: "kitchen"},
		model.Product{ID: 3, Name: "Spoon", Description: "Steel", Price: 9, Category: "cutlery"},
	)
}

// --- Customers ---

func TestSearchCustomersMatchesEmail(t *testing.T) {
	w := do(customerServer(seededCustomers()), http.MethodGet, "/customers/q/phone", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got []model.Customer
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("expected customer 2, got %+v", got)
	}
}

func TestSearchCustomersNoMatch(t *testing.T) {
	w := do(customerServer(seededCustomers()), http.MethodGet, "/customers/q/nobody", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if msg := message(t, w); msg != "Customer not found!" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestSearchCustomersBlankTerm(t *testing.T) {
	w := do(customerServer(seededCustomers()), http.MethodGet, "/customers/q/%20%20", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSearchCustomersPercentIsLiteral(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository(
		model.Customer{ID: 1, FirstName: "a%41"},
		model.Customer{ID: 2, FirstName: "aA"},
	)
	w := do(customerServer(repo), http.MethodGet, "/customers/q/a%2541", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got []model.Customer
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("expected only customer 1, got %+v", got)
	}
}

func TestSearchCustomersEscapedSlash(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository(
		model.Customer{ID: 1, FirstName: "a/b"},
	)
	w := do(customerServer(repo), http.MethodGet, "/customers/q/a%2Fb", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSearchCustomersNonTextTerm(t *testing.T) {
	h := customerServer(seededCustomers())
	for _, target := range []string{"/customers/q/%FF", "/customers/q/a%00"} {
		if w := do(h, http.MethodGet, target, nil); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, w.Code)
		}
	}
}

func TestSearchCustomersStoreFault(t *testing.T) {
	repo := brokenCustomerRepo{repository.NewMemoryCustomerRepository()}
	w := do(customerServer(repo), http.MethodGet, "/customers/q/ada", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	msg := message(t, w)
	if msg != "internal server error" {
		t.Errorf("unexpected message %q", msg)
	}
	if strings.Contains(w.Body.String(), "bad connection") {
		t.Error("driver error leaked into the response")
	}
}

func TestCreateCustomerConflict(t *testing.T) {
	h := customerServer(seededCustomers())
	w := do(h, http.MethodPost, "/customers", model.Customer{ID: 3, FirstName: "Linus"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = do(h, http.MethodPost, "/customers", model.Customer{ID: 3, FirstName: "Again"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if msg := message(t, w); msg != "Customer already exists!" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestCreateCustomerInvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader("{"))
	w := httptest.NewRecorder()
	customerServer(seededCustomers()).ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestUpdateCustomerTakesIDFromBody(t *testing.T) {
	repo := seededCustomers()
	h := customerServer(repo)

	w := do(h, http.MethodPut, "/customers", map[string]any{"id": 1, "first_name": "Ada L."})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	c, err := repo.GetByID(context.Background(), 1)
	if err != nil || c.FirstName != "Ada L." {
		t.Errorf("update not stored: %+v, %v", c, err)
	}

	w = do(h, http.MethodPut, "/customers", map[string]any{"id": 99, "first_name": "Ghost"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing id, got %d", w.Code)
	}
}

func TestGetAndDeleteCustomer(t *testing.T) {
	h := customerServer(seededCustomers())

	if w := do(h, http.MethodGet, "/customers/abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric id, got %d", w.Code)
	}
	if w := do(h, http.MethodGet, "/customers/1", nil); w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	w := do(h, http.MethodDelete, "/customers/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var deleted model.Customer
	_ = json.Unmarshal(w.Body.Bytes(), &deleted)
	if deleted.FirstName != "Ada" {
		t.Errorf("expected the deleted row in the response, got %+v", deleted)
	}

	w = do(h, http.MethodGet, "/customers/1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
	if msg := message(t, w); msg != "Customer not found!" {
		t.Errorf("unexpected message %q", msg)
	}
}

// --- Products ---

func productIDs(t *testing.T, w *httptest.ResponseRecorder) []int {
	t.Helper()
	var got []model.Product
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	ids := make([]int, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestSearchProducts(t *testing.T) {
	tests := []struct {
		name   string
		target string
		mode   filter.Mode
		status int
		ids    []int
	}{
		{"text match", "/products/q/kitchen", filter.MatchAny, http.StatusOK, []int{1, 2}},
		{"range without text match", "/products/q/zzz?minPrice=10&maxPrice=20", filter.MatchAny, http.StatusOK, []int{2}},
		{"only min", "/products/q/zzz?minPrice=15", filter.MatchAny, http.StatusOK, []int{1, 2}},
		{"only max", "/products/q/zzz?maxPrice=10", filter.MatchAny, http.StatusOK, []int{3}},
		{"text or range", "/products/q/Spoon?minPrice=25", filter.MatchAny, http.StatusOK, []int{1, 3}},
		{"malformed bound ignored", "/products/q/zzz?minPrice=cheap", filter.MatchAny, http.StatusNotFound, nil},
		{"no bounds no match", "/products/q/nonexistent-zzz", filter.MatchAny, http.StatusNotFound, nil},
		{"narrow excludes text misses", "/products/q/zzz?minPrice=10&maxPrice=20", filter.NarrowByPrice, http.StatusNotFound, nil},
		{"narrow keeps text hits in range", "/products/q/kitchen?maxPrice=20", filter.NarrowByPrice, http.StatusOK, []int{2}},
		{"blank term", "/products/q/%20", filter.MatchAny, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(productServer(seededProducts(), tt.mode), http.MethodGet, tt.target, nil)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
			if tt.status != http.StatusOK {
				return
			}
			got := productIDs(t, w)
			if len(got) != len(tt.ids) {
				t.Fatalf("expected ids %v, got %v", tt.ids, got)
			}
			for i := range got {
				if got[i] != tt.ids[i] {
					t.Errorf("expected ids %v, got %v", tt.ids, got)
					break
				}
			}
		})
	}
}

func TestSearchProductsNotFoundMessage(t *testing.T) {
	w := do(productServer(seededProducts(), filter.MatchAny), http.MethodGet, "/products/q/nonexistent-zzz", nil)
	if msg := message(t, w); msg != "Product not found!" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	h := productServer(seededProducts(), filter.MatchAny)
	w := do(h, http.MethodPost, "/products", model.Product{ID: 9, Name: "Refund", Price: -1})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	w = do(h, http.MethodPost, "/products", model.Product{ID: 9, Name: "Kettle", Price: 40})
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestListProductsOrderedByID(t *testing.T) {
	repo := repository.NewMemoryProductRepository(
		model.Product{ID: 5, Name: "Fork"},
		model.Product{ID: 4, Name: "Knife"},
	)
	w := do(productServer(repo, filter.MatchAny), http.MethodGet, "/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ids := productIDs(t, w); len(ids) != 2 || ids[0] != 4 {
		t.Errorf("expected [4 5], got %v", ids)
	}
}

func TestDeleteMissingProduct(t *testing.T) {
	w := do(productServer(seededProducts(), filter.MatchAny), http.MethodDelete, "/products/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if msg := message(t, w); msg != "Product not found!" {
		t.Errorf("unexpected message %q", msg)
	}
}
