package routes

import (
	"stepbuddy_server/controllers"
	"stepbuddy_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterDiscoveryRoutes sets up the candidate-feed route under /discover
func RegisterDiscoveryRoutes(api *mux.Router, discoveryService *services.DiscoveryService, logger *zap.Logger) {
	controller := controllers.NewDiscoveryController(discoveryService, logger)

	api.HandleFunc("/discover", controller.GetCandidates).Methods("GET")
}
