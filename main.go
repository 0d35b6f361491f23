package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openshelf/library-backend/src/db"
	"github.com/openshelf/library-backend/src/middleware"
	"github.com/openshelf/library-backend/src/models"
	"github.com/openshelf/library-backend/src/routes"
	"github.com/openshelf/library-backend/src/seed"
	"github.com/openshelf/library-backend/src/services"
)

func main() {

	// Database connection
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := database.AutoMigrate(
		&models.BookModel{},
		&models.UserModel{},
		&models.RequestedBookModel{},
		&models.MembershipModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Optional dev seeding
	if os.Getenv("SEED_DB") == "true" {
		seed.Seed(database)
	}

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":3001"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	healthService := services.NewHealthService(database)
	bookService := services.NewBookService(database)
	userService := services.NewUserService(database)
	requestedBookService := services.NewRequestedBookService(database)
	membershipValidator := services.NewMembershipValidator(database)
	membershipService := services.NewMembershipService(database, membershipValidator)

	// Routes setup
	routes.SetupHealthRoutes(router, healthService)
	routes.SetupBookRoutes(router, bookService)
	routes.SetupUserRoutes(router, userService)
	routes.SetupRequestedBookRoutes(router, requestedBookService)
	routes.SetupMembershipRoutes(router, membershipService)

	// Server run with graceful shutdown
	server := &http.Server{
		Addr:    host,
		Handler: router,
	}

	go func() {
		log.Printf("Server is running on %s\n", host)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server on %s: %v\n", host, err)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done

	log.Println("Shutting down the server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v\n", err)
	}
	if err := db.Close(database); err != nil {
		log.Printf("Error closing database: %v\n", err)
	}
	log.Println("Server shut down successfully")
}
