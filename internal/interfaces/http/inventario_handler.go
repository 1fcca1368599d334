package http

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-iptv/internal/application/dto"
	"github.com/jhoicas/inventario-iptv/internal/application/inventory"
	"github.com/jhoicas/inventario-iptv/internal/domain"
	"github.com/jhoicas/inventario-iptv/pkg/logger"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// InventarioHandler CRUD de cajas IPTV, exportación, resumen y tiquete.
type InventarioHandler struct {
	uc  *inventory.InventarioUseCase
	log *logger.Logger
}

// NewInventarioHandler construye el handler de inventario.
func NewInventarioHandler(uc *inventory.InventarioUseCase, log *logger.Logger) *InventarioHandler {
	return &InventarioHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar cajas
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Param        serial    query  string  false  "contiene serial"
// @Param        proyecto  query  string  false  "contiene proyecto"
// @Param        estatus   query  string  false  "contiene estatus"
// @Success      200  {array}   dto.CajaResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /inventario [get]
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	var q dto.ListFilterRequest
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return serverError(c, h.log, err)
	}
	return c.JSON(list)
}

// GetBySerial godoc
// @Summary      Obtener caja por serial
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Param        serial  path  string  true  "Serial"
// @Success      200  {object}  dto.CajaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /inventario/{serial} [get]
func (h *InventarioHandler) GetBySerial(c *fiber.Ctx) error {
	serial, ok := serialParam(c)
	if !ok {
		return notFoundCaja(c)
	}
	out, err := h.uc.GetBySerial(c.UserContext(), serial)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFoundCaja(c)
		}
		return serverError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear caja
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CajaRequest  true  "Caja"
// @Success      201  {object}  dto.CajaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /inventario [post]
func (h *InventarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CajaRequest
	if e := bindBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Create(c.UserContext(), GetNombreUsuario(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_SERIAL", Message: "ya existe una caja con ese SERIAL"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return serverError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar caja
// @Description  Sobrescribe las columnas editables; el serial de la ruta prevalece.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        serial  path  string           true  "Serial"
// @Param        body    body  dto.CajaRequest  true  "Caja"
// @Success      200  {object}  dto.CajaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /inventario/{serial} [put]
func (h *InventarioHandler) Update(c *fiber.Ctx) error {
	serial, ok := serialParam(c)
	if !ok {
		return notFoundCaja(c)
	}
	var in dto.CajaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(in.Serial) == "" {
		in.Serial = serial
	}
	if e := validateStruct(&in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Update(c.UserContext(), GetNombreUsuario(c), serial, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return notFoundCaja(c)
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return serverError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar caja
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Param        serial  path  string  true  "Serial"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /inventario/{serial} [delete]
func (h *InventarioHandler) Delete(c *fiber.Ctx) error {
	serial, ok := serialParam(c)
	if !ok {
		return notFoundCaja(c)
	}
	if err := h.uc.Delete(c.UserContext(), serial); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFoundCaja(c)
		}
		return serverError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "caja eliminada"})
}

// Export godoc
// @Summary      Descargar inventario (XLSX)
// @Description  Mismos filtros que el listado; los encabezados permiten re-importar el archivo.
// @Tags         inventario
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        serial    query  string  false  "contiene serial"
// @Param        proyecto  query  string  false  "contiene proyecto"
// @Param        estatus   query  string  false  "contiene estatus"
// @Success      200  {file}  file
// @Router       /inventario/exportar [get]
func (h *InventarioHandler) Export(c *fiber.Ctx) error {
	var q dto.ListFilterRequest
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	data, err := h.uc.Export(c.UserContext(), q)
	if err != nil {
		return serverError(c, h.log, err)
	}
	name := fmt.Sprintf("inventario-%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, contentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}

// Summary godoc
// @Summary      Resumen del inventario
// @Description  Conteos por estatus y proyecto más el total de contratos.
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ResumenInventarioDTO
// @Router       /inventario/resumen [get]
func (h *InventarioHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return serverError(c, h.log, err)
	}
	return c.JSON(out)
}

// Ticket godoc
// @Summary      Tiquete de entrega (PDF)
// @Tags         inventario
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        serial  path  string  true  "Serial"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /inventario/{serial}/tiquete [get]
func (h *InventarioHandler) Ticket(c *fiber.Ctx) error {
	serial, ok := serialParam(c)
	if !ok {
		return notFoundCaja(c)
	}
	data, err := h.uc.DeliveryTicket(c.UserContext(), serial)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFoundCaja(c)
		}
		return serverError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, contentTypePDF)
	c.Set(fiber.HeaderContentDisposition, `inline; filename="tiquete-`+url.PathEscape(serial)+`.pdf"`)
	return c.Send(data)
}

// serialParam lee :serial (o :id en las rutas heredadas) ya decodificado.
func serialParam(c *fiber.Ctx) (string, bool) {
	raw := c.Params("serial")
	if raw == "" {
		raw = c.Params("id")
	}
	serial, err := url.PathUnescape(raw)
	if err != nil {
		return "", false
	}
	serial = strings.TrimSpace(serial)
	return serial, serial != ""
}

func notFoundCaja(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "caja no encontrada"})
}
