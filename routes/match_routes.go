package routes

import (
	"stepbuddy_server/controllers"
	"stepbuddy_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterMatchRoutes sets up the match-list route under /matches
func RegisterMatchRoutes(api *mux.Router, matchService *services.MatchService, logger *zap.Logger) {
	controller := controllers.NewMatchController(matchService, logger)

	api.HandleFunc("/matches", controller.GetUserMatches).Methods("GET")
}
