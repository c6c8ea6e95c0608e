package routes

import (
	"stepbuddy_server/controllers"
	"stepbuddy_server/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// RegisterChatRoutes sets up routes for chat operations under /chat
func RegisterChatRoutes(api *mux.Router, chatService *services.ChatService, logger *zap.Logger) {
	controller := controllers.NewChatController(chatService, logger)

	chatRouter := api.PathPrefix("/chat").Subrouter()

	chatRouter.HandleFunc("/message", controller.SendMessage).Methods("POST")
	chatRouter.HandleFunc("/messages", controller.GetMessages).Methods("GET")
}
