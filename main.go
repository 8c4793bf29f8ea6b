// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"central-joias/cache"
	"central-joias/cart"
	"central-joias/controllers"
	"central-joias/repository"
	"central-joias/routes"
	"central-joias/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "central_joias"
	}

	productRepo := repository.NewProductRepository(client, dbName)
	homeRepo := repository.NewHomeContentRepository(client, dbName)

	// Optional Redis cache in front of the catalog listing
	var productCache cache.ProductCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		productCache = cache.NewRedisProductCache(redis.NewClient(&redis.Options{Addr: addr}))
	}

	// Optional email copy of each order
	var emailService *utils.EmailService
	if os.Getenv("POSTMARK_API_TOKEN") != "" {
		emailService = utils.NewEmailService()
	}

	// Optional Cloudinary uploads (reads CLOUDINARY_URL)
	var cld *cloudinary.Cloudinary
	if os.Getenv("CLOUDINARY_URL") != "" {
		cld, err = cloudinary.New()
		if err != nil {
			log.Fatal(err)
		}
	}

	store := controllers.StoreConfig{
		Name:       getenv("STORE_NAME", "Central Joias"),
		WhatsApp:   getenv("STORE_WHATSAPP", "556233541453"),
		OrderEmail: os.Getenv("STORE_ORDER_EMAIL"),
	}

	// Initialize controllers
	authController := controllers.NewAuthController(controllers.AdminCredentials{
		Username: os.Getenv("ADMIN_USERNAME"),
		Password: os.Getenv("ADMIN_PASSWORD"),
	})
	productController := controllers.NewProductController(productRepo, productCache)
	homeController := controllers.NewHomeContentController(homeRepo)
	cartController := controllers.NewCartController(cart.NewStore(), store, emailService)
	uploadController := controllers.NewUploadController(cld)

	// Set up the router
	router := mux.NewRouter()
	// Register routes
	routes.RegisterRoutes(router, authController, productController, homeController, cartController, uploadController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
