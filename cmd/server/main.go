package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/theEndless11/news/internal/config"
	"github.com/theEndless11/news/internal/database"
	"github.com/theEndless11/news/internal/handlers"
	"github.com/theEndless11/news/internal/repository"
	"github.com/theEndless11/news/internal/services"
	"github.com/theEndless11/news/internal/uploads"
	"github.com/theEndless11/news/pkg/logger"
	"github.com/theEndless11/news/pkg/middleware"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	uploadStore, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Upload directory error: %v", err)
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Index creation error: %v", err)
	}
	if err := friendRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Index creation error: %v", err)
	}

	// --- Services ---
	userService := services.NewUserService(userRepo)
	friendService := services.NewFriendService(friendRepo)
	messageService := services.NewMessageService(messageRepo)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService)
	friendHandler := handlers.NewFriendHandler(friendService)
	messageHandler := handlers.NewMessageHandler(messageService, uploadStore)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	router.HandleFunc("/register", userHandler.RegisterUserHandler).Methods("POST")
	router.HandleFunc("/users", userHandler.GetActiveUsersHandler).Methods("GET")

	router.HandleFunc("/send-friend-request", friendHandler.SendFriendRequestHandler).Methods("POST")
	router.HandleFunc("/accept-friend-request", friendHandler.AcceptFriendRequestHandler).Methods("POST")
	router.HandleFunc("/reject-friend-request", friendHandler.RejectFriendRequestHandler).Methods("POST")
	router.HandleFunc("/friend-requests", friendHandler.GetPendingRequestsHandler).Methods("GET")

	router.HandleFunc("/send-message", messageHandler.SendMessageHandler).Methods("POST")
	router.HandleFunc("/messages", messageHandler.GetMessagesHandler).Methods("GET")

	// Uploaded attachments are publicly fetchable by generated filename
	router.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadStore.Dir()))))
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.PublicDir)))

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	handler := cors.AllowAll().Handler(router)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
