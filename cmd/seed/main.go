// seed crea la cuenta administradora inicial y, opcionalmente, importa un XLSX
// usando el mismo caso de uso de POST /upload.
//
// Uso:
//
//	go run ./cmd/seed --email admin@empresa.com --password '...' [--nombre admin] [--file cajas.xlsx]
//
// La conexión se toma de las mismas variables de entorno que la API (DB_DRIVER, DATABASE_URL...).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-iptv/internal/application/auth"
	"github.com/jhoicas/inventario-iptv/internal/application/dto"
	"github.com/jhoicas/inventario-iptv/internal/application/inventory"
	"github.com/jhoicas/inventario-iptv/internal/domain"
	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
	"github.com/jhoicas/inventario-iptv/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/inventario-iptv/internal/infrastructure/store"
	"github.com/jhoicas/inventario-iptv/pkg/config"
	"github.com/jhoicas/inventario-iptv/pkg/logger"
)

type options struct {
	Nombre   string
	Email    string
	Password string
	Rol      string
	File     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Crea el usuario administrador y opcionalmente importa cajas desde XLSX",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.DB.ConnectTimeout+time.Minute)
			defer cancel()

			db, err := store.Open(ctx, cfg.DB, log)
			if err != nil {
				return err
			}
			defer db.Close()
			return run(ctx, db, log, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Nombre, "nombre", "admin", "nombre de usuario")
	cmd.Flags().StringVar(&opts.Email, "email", "", "email del administrador")
	cmd.Flags().StringVar(&opts.Password, "password", "", "contraseña del administrador")
	cmd.Flags().StringVar(&opts.Rol, "rol", entity.RoleAdmin, "rol de la cuenta (admin, soporte, contabilidad)")
	cmd.Flags().StringVar(&opts.File, "file", "", "archivo .xlsx a importar (opcional)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// run crea la cuenta (si ya existe se continúa) y luego importa el archivo.
// El JWT no se usa aquí; el caso de uso de auth solo necesita el repositorio.
func run(ctx context.Context, db *store.Store, log *logger.Logger, opts options) error {
	authUC := auth.NewAuthUseCase(db.Users, auth.JWTConfig{})
	user, err := authUC.CreateUser(ctx, dto.RegisterRequest{
		NombreUsuario: opts.Nombre,
		Email:         opts.Email,
		Password:      opts.Password,
	}, opts.Rol)
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		log.Warn().Str("email", opts.Email).Msg("el usuario ya existe, se omite")
	case err != nil:
		return fmt.Errorf("crear usuario: %w", err)
	default:
		log.Info().Int64("id", user.ID).Str("email", user.Email).Str("rol", user.Rol).Msg("usuario creado")
	}

	if opts.File == "" {
		return nil
	}
	f, err := os.Open(opts.File)
	if err != nil {
		return fmt.Errorf("abrir %s: %w", opts.File, err)
	}
	defer f.Close()

	importUC := inventory.NewImportUseCase(db.Tx, spreadsheet.NewReader())
	summary, err := importUC.Import(ctx, opts.Nombre, opts.File, f)
	if err != nil {
		var ie *inventory.ImportError
		if errors.As(err, &ie) {
			for _, row := range ie.Rows {
				log.Error().Int("fila", row.Fila).Str("serial", row.Serial).Msg(row.Error)
			}
		}
		return fmt.Errorf("importar %s: %w", opts.File, err)
	}
	log.Info().
		Str("lote_id", summary.LoteID).
		Str("hoja", summary.Hoja).
		Int("insertadas", summary.Insertadas).
		Msg("importación completada")
	return nil
}
