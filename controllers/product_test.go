package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"central-joias/cache"
	"central-joias/models"
	"central-joias/repository"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProductRepo struct {
	products    []models.Product
	inserted    []models.Product
	updated     map[string]map[string]any
	deactivated []string
	listCalls   int
	err         error
}

func (m *mockProductRepo) ListActive(context.Context) ([]models.Product, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id string) (models.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, repository.ErrNotFound
}

func (m *mockProductRepo) Insert(_ context.Context, product models.Product) error {
	if m.err != nil {
		return m.err
	}
	m.inserted = append(m.inserted, product)
	return nil
}

func (m *mockProductRepo) Update(_ context.Context, id string, fields map[string]any) error {
	for _, p := range m.products {
		if p.ID == id {
			if m.updated == nil {
				m.updated = map[string]map[string]any{}
			}
			m.updated[id] = fields
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockProductRepo) Deactivate(_ context.Context, id string) error {
	for _, p := range m.products {
		if p.ID == id {
			m.deactivated = append(m.deactivated, id)
			return nil
		}
	}
	return repository.ErrNotFound
}

type mockProductCache struct {
	products    []models.Product
	hasValue    bool
	setCalls    int
	invalidated int
}

func (m *mockProductCache) Get(context.Context) ([]models.Product, error) {
	if !m.hasValue {
		return nil, cache.ErrCacheMiss
	}
	return m.products, nil
}

func (m *mockProductCache) Set(_ context.Context, products []models.Product) error {
	m.products = products
	m.hasValue = true
	m.setCalls++
	return nil
}

func (m *mockProductCache) Invalidate(context.Context) error {
	m.products = nil
	m.hasValue = false
	m.invalidated++
	return nil
}

func productRouter(pc *ProductController) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/products", pc.GetProducts).Methods("GET")
	router.HandleFunc("/api/products/{id}", pc.GetProductByID).Methods("GET")
	router.HandleFunc("/api/products", pc.CreateProduct).Methods("POST")
	router.HandleFunc("/api/products/{id}", pc.UpdateProduct).Methods("PUT")
	router.HandleFunc("/api/products/{id}", pc.DeleteProduct).Methods("DELETE")
	return router
}

func TestGetProductsWithoutCache(t *testing.T) {
	repo := &mockProductRepo{products: []models.Product{{ID: "P1", Name: "Ring", Active: true}}}
	router := productRouter(NewProductController(repo, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Ring", got[0].Name)
}

func TestGetProductsFillsCacheOnMiss(t *testing.T) {
	repo := &mockProductRepo{products: []models.Product{{ID: "P1", Name: "Ring", Active: true}}}
	productCache := &mockProductCache{}
	router := productRouter(NewProductController(repo, productCache))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, 1, productCache.setCalls)

	// Second read is served from the cache.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, repo.listCalls)
}

func TestGetProductByID(t *testing.T) {
	repo := &mockProductRepo{products: []models.Product{{ID: "P1", Name: "Ring", Active: true}}}
	router := productRouter(NewProductController(repo, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products/P1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProductAppliesDefaults(t *testing.T) {
	repo := &mockProductRepo{}
	productCache := &mockProductCache{hasValue: true}
	router := productRouter(NewProductController(repo, productCache))

	body := `{"name":"Ring","category":"Aneis","price":120.50}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/products", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.inserted, 1)

	created := repo.inserted[0]
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active) // visible by default
	assert.False(t, created.CreatedAt.IsZero())
	assert.NotNil(t, created.Images)
	assert.NotNil(t, created.Specifications)

	// Any catalog write drops the cached listing.
	assert.Equal(t, 1, productCache.invalidated)
}

func TestCreateProductHonorsExplicitActive(t *testing.T) {
	repo := &mockProductRepo{}
	router := productRouter(NewProductController(repo, nil))

	body := `{"name":"Draft","price":10,"active":false}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/products", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.inserted, 1)
	assert.False(t, repo.inserted[0].Active)
}

func TestUpdateProduct(t *testing.T) {
	repo := &mockProductRepo{products: []models.Product{{ID: "P1", Active: true}}}
	productCache := &mockProductCache{hasValue: true}
	router := productRouter(NewProductController(repo, productCache))

	body := `{"id":"hacked","price":99.90}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/api/products/P1", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, repo.updated, "P1")
	assert.Equal(t, 1, productCache.invalidated)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("PUT", "/api/products/missing", strings.NewReader(`{"price":1}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProductSoftDeletes(t *testing.T) {
	repo := &mockProductRepo{products: []models.Product{{ID: "P1", Active: true}}}
	productCache := &mockProductCache{hasValue: true}
	router := productRouter(NewProductController(repo, productCache))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/products/P1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"P1"}, repo.deactivated)
	assert.Equal(t, 1, productCache.invalidated)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/products/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
