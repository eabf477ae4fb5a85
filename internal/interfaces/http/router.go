package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laborconnect/laborconnect-api/internal/application/auth"
	"github.com/laborconnect/laborconnect-api/internal/application/chat"
	"github.com/laborconnect/laborconnect-api/internal/application/usecase"
	"github.com/laborconnect/laborconnect-api/internal/relay"
	"github.com/laborconnect/laborconnect-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	WorkerUC     *usecase.WorkerUseCase
	ConnectionUC *usecase.ConnectionUseCase
	ContactUC    *usecase.ContactUseCase
	ChatUC       *chat.ChatUseCase
	Hub          *relay.Hub
	Log          *logger.Logger
	JWTSecret    string
}

// Router registra las rutas de la API y el endpoint websocket del chat.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro y login públicos; /me requiere Bearer Token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Workers (directorio público)
	workers := api.Group("/workers")
	workerHandler := NewWorkerHandler(deps.WorkerUC)
	workers.Get("/", workerHandler.Search)
	workers.Get("/:userId", workerHandler.GetByUserID)

	// Connections (la ruta /worker/:workerId va antes que /:employerId)
	connections := api.Group("/connections")
	connectionHandler := NewConnectionHandler(deps.ConnectionUC)
	connections.Post("/", connectionHandler.Create)
	connections.Get("/worker/:workerId", connectionHandler.ListByWorker)
	connections.Get("/:employerId", connectionHandler.ListByEmployer)

	// Chat: historial por HTTP, canal en vivo por websocket autenticado
	chatHandler := NewChatHandler(deps.ChatUC)
	api.Get("/chat/messages", chatHandler.History)

	wsHandler := NewWSHandler(deps.ChatUC, deps.Hub, deps.Log)
	app.Use("/ws", wsHandler.Upgrade, AuthMiddleware(deps.JWTSecret))
	app.Get("/ws", wsHandler.Serve())

	// Contact
	contactHandler := NewContactHandler(deps.ContactUC)
	api.Post("/contact", contactHandler.Create)
}
