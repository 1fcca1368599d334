package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Encabezados canónicos de la hoja de cálculo, en orden de exportación.
// Coinciden con las claves JSON de CajaRequest/CajaResponse.
const (
	ColProyecto                            = "Proyecto"
	ColEstatus                             = "Estatus"
	ColContratoLiberty                     = "Contrato_Liberty"
	ColCodigoClienteBlueSAT                = "CodigoClienteBlueSAT"
	ColNombreContratoSolicitado            = "NombreContratoSolicitado"
	ColTipoContratacion                    = "TipoContratacion"
	ColEstatusContrato                     = "EstatusContrato"
	ColCodigoCliente                       = "CodigoCliente"
	ColRazonSocial                         = "RazonSocial"
	ColUbicacionFinal                      = "UbicacionFinal"
	ColTiqueteDeEntrega                    = "TiqueteDeEntrega"
	ColSerial                              = "SERIAL"
	ColMAC                                 = "MAC"
	ColObservaciones                       = "Observaciones"
	ColContratoFacturacion                 = "ContratoFacturacion"
	ColTipoServicio                        = "tipoServicio"
	ColCantidadDeCajasColocadasRevify      = "CantidadDeCajasColocadasRevify"
	ColPrecioIPTVPrincipalRevify           = "PrecioIPTVPrincipalRevify"
	ColPrecioIPTVAdicionalRevify           = "PrecioIPTVAdicionalRevify"
	ColPrecioIPTVPrincipalLiberty          = "PrecioIPTVPrincipalLiberty"
	ColPrecioIPTVAdicionalLiberty          = "PrecioIPTVAdicionalLiberty"
	ColPreciodeConvertidorPrincipalLiberty = "PreciodeConvertidorPrincipalLiberty"
	ColPreciodeConvertidorAdicionalLiberty = "PreciodeConvertidorAdicionalLiberty"
	ColTotaldelContrato                    = "TotaldelContrato"
)

// CajaColumns orden de columnas de exportación e importación.
var CajaColumns = []string{
	ColProyecto, ColEstatus, ColContratoLiberty, ColCodigoClienteBlueSAT,
	ColNombreContratoSolicitado, ColTipoContratacion, ColEstatusContrato,
	ColCodigoCliente, ColRazonSocial, ColUbicacionFinal, ColTiqueteDeEntrega,
	ColSerial, ColMAC, ColObservaciones, ColContratoFacturacion, ColTipoServicio,
	ColCantidadDeCajasColocadasRevify,
	ColPrecioIPTVPrincipalRevify, ColPrecioIPTVAdicionalRevify,
	ColPrecioIPTVPrincipalLiberty, ColPrecioIPTVAdicionalLiberty,
	ColPreciodeConvertidorPrincipalLiberty, ColPreciodeConvertidorAdicionalLiberty,
	ColTotaldelContrato,
}

// CajaRequest body para POST /inventario y PUT /inventario/:serial, y cada fila
// de la carga masiva. Los max son el ancho de la columna; los montos caben en NUMERIC(18,2).
// En PUT el serial de la ruta prevalece sobre el del body.
type CajaRequest struct {
	Proyecto                            string          `json:"Proyecto" validate:"max=255"`
	Estatus                             string          `json:"Estatus" validate:"max=100"`
	ContratoLiberty                     string          `json:"Contrato_Liberty" validate:"max=255"`
	CodigoClienteBlueSAT                string          `json:"CodigoClienteBlueSAT" validate:"max=100"`
	NombreContratoSolicitado            string          `json:"NombreContratoSolicitado" validate:"max=255"`
	TipoContratacion                    string          `json:"TipoContratacion" validate:"max=100"`
	EstatusContrato                     string          `json:"EstatusContrato" validate:"max=100"`
	CodigoCliente                       string          `json:"CodigoCliente" validate:"max=100"`
	RazonSocial                         string          `json:"RazonSocial" validate:"max=255"`
	UbicacionFinal                      string          `json:"UbicacionFinal" validate:"max=255"`
	TiqueteDeEntrega                    string          `json:"TiqueteDeEntrega" validate:"max=100"`
	Serial                              string          `json:"SERIAL" validate:"required,max=100"`
	MAC                                 string          `json:"MAC" validate:"max=50"`
	Observaciones                       string          `json:"Observaciones"`
	ContratoFacturacion                 string          `json:"ContratoFacturacion" validate:"max=255"`
	TipoServicio                        string          `json:"tipoServicio" validate:"max=100"`
	CantidadDeCajasColocadasRevify      int             `json:"CantidadDeCajasColocadasRevify" validate:"min=0"`
	PrecioIPTVPrincipalRevify           decimal.Decimal `json:"PrecioIPTVPrincipalRevify" validate:"gt=-1e16,lt=1e16"`
	PrecioIPTVAdicionalRevify           decimal.Decimal `json:"PrecioIPTVAdicionalRevify" validate:"gt=-1e16,lt=1e16"`
	PrecioIPTVPrincipalLiberty          decimal.Decimal `json:"PrecioIPTVPrincipalLiberty" validate:"gt=-1e16,lt=1e16"`
	PrecioIPTVAdicionalLiberty          decimal.Decimal `json:"PrecioIPTVAdicionalLiberty" validate:"gt=-1e16,lt=1e16"`
	PreciodeConvertidorPrincipalLiberty decimal.Decimal `json:"PreciodeConvertidorPrincipalLiberty" validate:"gt=-1e16,lt=1e16"`
	PreciodeConvertidorAdicionalLiberty decimal.Decimal `json:"PreciodeConvertidorAdicionalLiberty" validate:"gt=-1e16,lt=1e16"`
	TotaldelContrato                    decimal.Decimal `json:"TotaldelContrato" validate:"gt=-1e16,lt=1e16"`
}

// CajaResponse caja en respuestas; incluye id y campos de auditoría.
type CajaResponse struct {
	ID                                  int64           `json:"id"`
	Proyecto                            string          `json:"Proyecto"`
	Estatus                             string          `json:"Estatus"`
	ContratoLiberty                     string          `json:"Contrato_Liberty"`
	CodigoClienteBlueSAT                string          `json:"CodigoClienteBlueSAT"`
	NombreContratoSolicitado            string          `json:"NombreContratoSolicitado"`
	TipoContratacion                    string          `json:"TipoContratacion"`
	EstatusContrato                     string          `json:"EstatusContrato"`
	CodigoCliente                       string          `json:"CodigoCliente"`
	RazonSocial                         string          `json:"RazonSocial"`
	UbicacionFinal                      string          `json:"UbicacionFinal"`
	TiqueteDeEntrega                    string          `json:"TiqueteDeEntrega"`
	Serial                              string          `json:"SERIAL"`
	MAC                                 string          `json:"MAC"`
	Observaciones                       string          `json:"Observaciones"`
	ContratoFacturacion                 string          `json:"ContratoFacturacion"`
	TipoServicio                        string          `json:"tipoServicio"`
	CantidadDeCajasColocadasRevify      int             `json:"CantidadDeCajasColocadasRevify"`
	PrecioIPTVPrincipalRevify           decimal.Decimal `json:"PrecioIPTVPrincipalRevify"`
	PrecioIPTVAdicionalRevify           decimal.Decimal `json:"PrecioIPTVAdicionalRevify"`
	PrecioIPTVPrincipalLiberty          decimal.Decimal `json:"PrecioIPTVPrincipalLiberty"`
	PrecioIPTVAdicionalLiberty          decimal.Decimal `json:"PrecioIPTVAdicionalLiberty"`
	PreciodeConvertidorPrincipalLiberty decimal.Decimal `json:"PreciodeConvertidorPrincipalLiberty"`
	PreciodeConvertidorAdicionalLiberty decimal.Decimal `json:"PreciodeConvertidorAdicionalLiberty"`
	TotaldelContrato                    decimal.Decimal `json:"TotaldelContrato"`
	UsuarioCreacion                     string          `json:"usuario_creacion"`
	FechaCreacion                       time.Time       `json:"fecha_creacion"`
	UsuarioModificador                  string          `json:"usuario_modificador,omitempty"`
	FechaModificacion                   *time.Time      `json:"fecha_modificacion,omitempty"`
}

// ListFilterRequest query params opcionales de GET /inventario.
type ListFilterRequest struct {
	Serial   string `query:"serial"`
	Proyecto string `query:"proyecto"`
	Estatus  string `query:"estatus"`
}

// ConteoDTO cantidad de cajas por valor de un campo.
type ConteoDTO struct {
	Clave    string `json:"clave"`
	Cantidad int    `json:"cantidad"`
}

// ResumenInventarioDTO respuesta de GET /inventario/resumen.
type ResumenInventarioDTO struct {
	TotalCajas     int             `json:"total_cajas"`
	TotalContratos decimal.Decimal `json:"total_contratos"`
	PorEstatus     []ConteoDTO     `json:"por_estatus"`
	PorProyecto    []ConteoDTO     `json:"por_proyecto"`
}
