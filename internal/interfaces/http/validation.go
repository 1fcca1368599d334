package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-iptv/internal/application/dto"
)

// bindBody decodifica el JSON y valida los tags `validate`.
// Devuelve nil si todo está bien; si no, el cuerpo 400 a responder.
func bindBody(c *fiber.Ctx, in any) *dto.ErrorResponse {
	if err := c.BodyParser(in); err != nil {
		return &dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"}
	}
	return validateStruct(in)
}

func validateStruct(in any) *dto.ErrorResponse {
	if err := dto.Validate(in); err != nil {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: strings.Join(dto.ValidationMessages(err), "; ")}
	}
	return nil
}
