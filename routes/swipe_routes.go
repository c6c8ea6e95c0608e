package routes

import (
	"stepbuddy_server/controllers"
	"stepbuddy_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterSwipeRoutes sets up the swipe submission route under /swipes
func RegisterSwipeRoutes(api *mux.Router, swipeService *services.SwipeService, logger *zap.Logger) {
	controller := controllers.NewSwipeController(swipeService, logger)

	api.HandleFunc("/swipes", controller.RecordSwipe).Methods("POST")
}
