package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/auth"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/media"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/orders"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/usecase"
	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/domain/policy"
	"github.com/AlanArratia12/MasterServicioAutomotriz/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	OrdersUC  *orders.OrdersUseCase
	TicketUC  *orders.TicketUseCase
	MediaUC   *media.MediaUseCase
	UserUC    *usecase.UserUseCase
	Sessions  auth.SessionStore
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: el login es público, el resto de la sesión requiere token.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (Bearer Token o cookie de sesión)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/yo", authHandler.Yo)

	// Órdenes
	ordenes := protected.Group("/ordenes")
	orderHandler := NewOrderHandler(deps.OrdersUC, deps.TicketUC, deps.Log)
	ordenes.Post("/", orderHandler.Create)
	ordenes.Get("/hoy", orderHandler.Today)
	ordenes.Get("/historial", orderHandler.History)
	ordenes.Get("/:id", orderHandler.GetByID)
	ordenes.Patch("/:id", orderHandler.Update)
	ordenes.Delete("/:id", RequireAction(policy.ActionOrderDelete), orderHandler.Delete)
	ordenes.Get("/:id/pdf", orderHandler.Ticket)

	// Fotos de evidencia
	attachmentHandler := NewAttachmentHandler(deps.MediaUC, deps.Log)
	ordenes.Get("/:id/fotos", attachmentHandler.List)
	ordenes.Post("/:id/fotos", attachmentHandler.Upload)
	protected.Delete("/fotos/:id", RequireAction(policy.ActionPhotoDelete), attachmentHandler.Delete)

	// Administración de cuentas (solo admin)
	usuarios := protected.Group("/ajustes/usuarios", RequireAction(policy.ActionUserManage))
	userHandler := NewUserHandler(deps.UserUC, deps.Log)
	usuarios.Get("/", userHandler.List)
	usuarios.Post("/", userHandler.Create)
	usuarios.Patch("/:id/role", userHandler.UpdateRole)
	usuarios.Patch("/:id/password", userHandler.UpdatePassword)
	usuarios.Delete("/:id", userHandler.Delete)
}
