// Package web sirve el panel administrativo embebido en el binario.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

//go:embed static
var static embed.FS

// Assets devuelve los archivos del panel con raíz en static/.
func Assets() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// static está embebido; solo falla si cambia el nombre del directorio
		panic(err)
	}
	return sub
}

// Handler sirve el panel en "/". Debe registrarse después de las rutas de la API:
// si el archivo no existe delega al siguiente handler.
func Handler() fiber.Handler {
	return filesystem.New(filesystem.Config{
		Root:   http.FS(Assets()),
		Index:  "index.html",
		Browse: false,
		MaxAge: 300,
	})
}
