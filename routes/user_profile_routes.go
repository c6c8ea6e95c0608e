package routes

import (
	"stepbuddy_server/controllers"
	"stepbuddy_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterUserProfileRoutes sets up routes for profile operations under /profiles
func RegisterUserProfileRoutes(api *mux.Router, userProfileService *services.UserProfileService, logger *zap.Logger) {
	controller := controllers.NewUserProfileController(userProfileService, logger)

	profileRouter := api.PathPrefix("/profiles").Subrouter()

	profileRouter.HandleFunc("", controller.CreateUserProfile).Methods("POST")
	profileRouter.HandleFunc("/{userId}", controller.GetUserProfile).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.UpdateUserProfile).Methods("PUT")
}
