// @title                       Inventario IPTV API
// @version                     1.0
// @description                 Inventario de cajas IPTV: autenticación, CRUD por serial, carga masiva XLSX, exportación y tiquete de entrega.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer {token}
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-iptv/docs"
	"github.com/jhoicas/inventario-iptv/internal/application/auth"
	"github.com/jhoicas/inventario-iptv/internal/application/inventory"
	infrapdf "github.com/jhoicas/inventario-iptv/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-iptv/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/inventario-iptv/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/inventario-iptv/internal/interfaces/http"
	"github.com/jhoicas/inventario-iptv/internal/interfaces/web"
	"github.com/jhoicas/inventario-iptv/pkg/config"
	"github.com/jhoicas/inventario-iptv/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx, cancelStartup := context.WithTimeout(context.Background(), cfg.DB.ConnectTimeout+10*time.Second)
	db, err := store.Open(ctx, cfg.DB, log)
	cancelStartup()
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a la base de datos")
	}
	defer db.Close()

	authUC := auth.NewAuthUseCase(db.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	inventarioUC := inventory.NewInventarioUseCase(db.Inventario, spreadsheet.NewWriter(), infrapdf.NewTiquetePDFGenerator(cfg.App.Name))
	importUC := inventory.NewImportUseCase(db.Tx, spreadsheet.NewReader())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Upload.MaxBytes(),
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://localhost:<port>/api-docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "api-docs",
		Title:       "Inventario IPTV API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:             authUC,
		InventarioUC:       inventarioUC,
		ImportUC:           importUC,
		JWTSecret:          cfg.JWT.Secret,
		ServiceName:        cfg.App.Name,
		LoginRatePerMinute: cfg.HTTP.LoginRatePerMinute,
		Logger:             log,
		DBPing:             db.Ping,
	})

	// Panel administrativo; va al final para no tapar rutas de la API
	app.Use("/", web.Handler())

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
