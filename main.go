package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"stepbuddy_server/config"
	"stepbuddy_server/logger"
	"stepbuddy_server/middleware"
	"stepbuddy_server/routes"
	"stepbuddy_server/services"
	"stepbuddy_server/socket"
	"stepbuddy_server/store"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	// Initialize DynamoDB client and stores
	zl.Info("initializing DynamoDB client", zap.String("region", cfg.AWSRegion))
	dynamoClient, err := store.InitializeDynamoDBClient(context.Background(), cfg.AWSRegion)
	if err != nil {
		zl.Fatal("failed to initialize DynamoDB client", zap.Error(err))
	}
	dynamo := &store.DynamoClient{Client: dynamoClient, Logger: zl}

	profileStore := &store.DynamoProfileStore{Dynamo: dynamo}
	swipeStore := &store.DynamoSwipeStore{Dynamo: dynamo}
	matchStore := &store.DynamoMatchStore{Dynamo: dynamo}
	messageStore := &store.DynamoMessageStore{Dynamo: dynamo}

	// Initialize the real-time hub
	hub := socket.NewHub(zl)
	go func() {
		if err := hub.Serve(); err != nil {
			zl.Error("socket server stopped", zap.Error(err))
		}
	}()
	defer hub.Close()

	// Initialize services
	userProfileService := &services.UserProfileService{Profiles: profileStore, Logger: zl}
	discoveryService := &services.DiscoveryService{Profiles: profileStore, Swipes: swipeStore, Logger: zl}
	swipeService := &services.SwipeService{Swipes: swipeStore, Matches: matchStore, Logger: zl}
	matchService := &services.MatchService{Matches: matchStore, Profiles: profileStore, Logger: zl}
	chatService := &services.ChatService{Messages: messageStore, Push: hub, Logger: zl}

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to StepBuddy")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	// Real-time channel; registration happens in-band, no bearer token
	r.Handle("/socket.io/", hub.Handler())

	// Authenticated API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(cfg.JWTSecret, zl))

	routes.RegisterUserProfileRoutes(api, userProfileService, zl)
	routes.RegisterDiscoveryRoutes(api, discoveryService, zl)
	routes.RegisterSwipeRoutes(api, swipeService, zl)
	routes.RegisterMatchRoutes(api, matchService, zl)
	routes.RegisterChatRoutes(api, chatService, zl)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	zl.Info("starting server", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
