package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"central-joias/cache"
	"central-joias/models"
	"central-joias/repository"

	"github.com/gorilla/mux"
	"golang.org/x/sync/singleflight"
)

// ProductController handles catalog requests
type ProductController struct {
	Repo  repository.ProductRepository
	Cache cache.ProductCache // optional, may be nil
	sfg   singleflight.Group // Prevents cache stampede on the listing
}

// NewProductController creates a new ProductController
func NewProductController(repo repository.ProductRepository, productCache cache.ProductCache) *ProductController {
	return &ProductController{
		Repo:  repo,
		Cache: productCache,
	}
}

// GetProducts retrieves all active products
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	products, err := pc.listActive(ctx)
	if err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// listActive reads through the cache when one is configured; concurrent
// misses collapse into a single database query.
func (pc *ProductController) listActive(ctx context.Context) ([]models.Product, error) {
	if pc.Cache == nil {
		return pc.Repo.ListActive(ctx)
	}

	v, err, _ := pc.sfg.Do("products", func() (interface{}, error) {
		products, err := pc.Cache.Get(ctx)
		if err == nil {
			return products, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		products, err = pc.Repo.ListActive(ctx)
		if err != nil {
			return nil, err
		}

		if errSet := pc.Cache.Set(ctx, products); errSet != nil {
			log.Printf("cache set error: %v", errSet)
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Product), nil
}

// GetProductByID retrieves a single active product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	product, err := pc.Repo.GetByID(ctx, params["id"])
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error fetching product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// CreateProduct handles adding a new product (Admin only)
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	// New products are visible unless the form says otherwise.
	product := models.Product{Active: true}
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	product.EnsureDefaults()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := pc.Repo.Insert(ctx, product); err != nil {
		http.Error(w, "Error creating product", http.StatusInternalServerError)
		return
	}
	pc.invalidate()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(product)
}

// UpdateProduct handles a partial product update (Admin only)
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := pc.Repo.Update(ctx, params["id"], fields)
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error updating product", http.StatusInternalServerError)
		return
	}
	pc.invalidate()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// DeleteProduct soft-deletes a product (Admin only). The document stays
// in the database with active=false.
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := pc.Repo.Deactivate(ctx, params["id"])
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Error deleting product", http.StatusInternalServerError)
		return
	}
	pc.invalidate()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func (pc *ProductController) invalidate() {
	if pc.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := pc.Cache.Invalidate(ctx); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}
