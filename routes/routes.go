// routes/routes.go
package routes

import (
	"central-joias/controllers"
	"central-joias/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, authController *controllers.AuthController, productController *controllers.ProductController, homeController *controllers.HomeContentController, cartController *controllers.CartController, uploadController *controllers.UploadController) {
	api := router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/admin/login", authController.Login).Methods("POST")
	api.HandleFunc("/home-content", homeController.GetHomeContent).Methods("GET")
	api.HandleFunc("/products", productController.GetProducts).Methods("GET")
	api.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Admin routes
	admin := api.PathPrefix("/").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.HandleFunc("/products", productController.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id}", productController.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/products/{id}", productController.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/home-content", homeController.UpdateHomeContent).Methods("PUT")
	admin.HandleFunc("/upload", uploadController.UploadImage).Methods("POST")

	// Cart routes (session scoped)
	cartRoutes := api.PathPrefix("/cart").Subrouter()
	cartRoutes.Use(middleware.SessionMiddleware)
	cartRoutes.HandleFunc("", cartController.GetCart).Methods("GET")
	cartRoutes.HandleFunc("", cartController.ClearCart).Methods("DELETE")
	cartRoutes.HandleFunc("/items", cartController.AddToCart).Methods("POST")
	cartRoutes.HandleFunc("/items/{id}", cartController.RemoveFromCart).Methods("DELETE")
	cartRoutes.HandleFunc("/checkout", cartController.Checkout).Methods("POST")
}
