package http

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-iptv/internal/application/dto"
	"github.com/jhoicas/inventario-iptv/internal/application/inventory"
	"github.com/jhoicas/inventario-iptv/internal/domain"
	"github.com/jhoicas/inventario-iptv/pkg/logger"
)

// UploadFormField nombre del campo multipart del archivo.
const UploadFormField = "file"

// UploadHandler carga masiva de cajas desde XLSX.
type UploadHandler struct {
	uc  *inventory.ImportUseCase
	log *logger.Logger
}

// NewUploadHandler construye el handler de carga masiva.
func NewUploadHandler(uc *inventory.ImportUseCase, log *logger.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, log: log}
}

// Upload godoc
// @Summary      Carga masiva (XLSX)
// @Description  Valida todas las filas y las inserta en una sola transacción (todo o nada).
// @Tags         inventario
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "Archivo .xlsx"
// @Success      200  {object}  dto.ImportSummary
// @Failure      400  {object}  dto.ImportErrorResponse
// @Failure      409  {object}  dto.ImportErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile(UploadFormField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "adjunte el archivo en el campo 'file'"})
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".xlsx" && ext != ".xlsm" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "solo se aceptan archivos .xlsx"})
	}
	f, err := fh.Open()
	if err != nil {
		return serverError(c, h.log, err)
	}
	defer f.Close()

	summary, err := h.uc.Import(c.UserContext(), GetNombreUsuario(c), fh.Filename, f)
	if err != nil {
		var ie *inventory.ImportError
		if errors.As(err, &ie) {
			status, code := fiber.StatusBadRequest, "INVALID_FILE"
			if errors.Is(ie.Kind, domain.ErrDuplicate) {
				status, code = fiber.StatusConflict, "DUPLICATE_SERIAL"
			}
			return c.Status(status).JSON(dto.ImportErrorResponse{Code: code, Message: ie.Message, Errores: ie.Rows})
		}
		return serverError(c, h.log, err)
	}
	h.log.Info().
		Str("lote_id", summary.LoteID).
		Str("archivo", summary.Archivo).
		Int("insertadas", summary.Insertadas).
		Msg("carga masiva completada")
	return c.JSON(summary)
}
