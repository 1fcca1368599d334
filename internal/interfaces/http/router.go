package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-iptv/internal/application/auth"
	"github.com/jhoicas/inventario-iptv/internal/application/dto"
	"github.com/jhoicas/inventario-iptv/internal/application/inventory"
	"github.com/jhoicas/inventario-iptv/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC             *auth.AuthUseCase
	InventarioUC       *inventory.InventarioUseCase
	ImportUC           *inventory.ImportUseCase
	JWTSecret          string
	ServiceName        string
	LoginRatePerMinute int
	Logger             *logger.Logger
	// DBPing lo consulta /health; nil omite el chequeo.
	DBPing func(ctx context.Context) error
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", healthHandler(deps.ServiceName, deps.DBPing, log))

	authHandler := NewAuthHandler(deps.AuthUC, log)
	invHandler := NewInventarioHandler(deps.InventarioUC, log)
	uploadHandler := NewUploadHandler(deps.ImportUC, log)

	requireAuth := AuthMiddleware(deps.JWTSecret)
	canRead := RequireRole(ReadRoles...)
	canWrite := RequireRole(WriteRoles...)

	// Auth (público salvo /me)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", LoginRateLimit(deps.LoginRatePerMinute), authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Comprobación de token para clientes existentes
	app.Get("/protected", requireAuth, func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "Acceso concedido a la ruta protegida"})
	})

	// Rutas heredadas del router de auth; mismos handlers que /inventario (:id = serial)
	authGroup.Get("/", requireAuth, canRead, invHandler.List)
	authGroup.Post("/add", requireAuth, canWrite, invHandler.Create)
	authGroup.Put("/update/:id", requireAuth, canWrite, invHandler.Update)
	authGroup.Delete("/delete/:id", requireAuth, canWrite, invHandler.Delete)

	// Inventario (protegido). exportar y resumen antes de :serial.
	inv := app.Group("/inventario", requireAuth)
	inv.Get("/", canRead, invHandler.List)
	inv.Get("/exportar", canRead, invHandler.Export)
	inv.Get("/resumen", canRead, invHandler.Summary)
	inv.Get("/:serial", canRead, invHandler.GetBySerial)
	inv.Get("/:serial/tiquete", canRead, invHandler.Ticket)
	inv.Post("/", canWrite, invHandler.Create)
	inv.Put("/:serial", canWrite, invHandler.Update)
	inv.Delete("/:serial", canWrite, invHandler.Delete)

	// Carga masiva
	app.Post("/upload", requireAuth, canWrite, uploadHandler.Upload)
}

// healthHandler godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /health [get]
func healthHandler(service string, ping func(ctx context.Context) error, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ping == nil {
			return c.JSON(dto.HealthResponse{Status: "ok", Service: service})
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := ping(ctx); err != nil {
			log.Error().Err(err).Msg("health: base de datos no responde")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "error", Service: service, Database: "error"})
		}
		return c.JSON(dto.HealthResponse{Status: "ok", Service: service, Database: "ok"})
	}
}
