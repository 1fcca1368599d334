package inventory

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-iptv/internal/application/dto"
	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
)

func requestToCaja(in dto.CajaRequest) *entity.Caja {
	return &entity.Caja{
		Proyecto:                            strings.TrimSpace(in.Proyecto),
		Estatus:                             strings.TrimSpace(in.Estatus),
		ContratoLiberty:                     strings.TrimSpace(in.ContratoLiberty),
		CodigoClienteBlueSAT:                strings.TrimSpace(in.CodigoClienteBlueSAT),
		NombreContratoSolicitado:            strings.TrimSpace(in.NombreContratoSolicitado),
		TipoContratacion:                    strings.TrimSpace(in.TipoContratacion),
		EstatusContrato:                     strings.TrimSpace(in.EstatusContrato),
		CodigoCliente:                       strings.TrimSpace(in.CodigoCliente),
		RazonSocial:                         strings.TrimSpace(in.RazonSocial),
		UbicacionFinal:                      strings.TrimSpace(in.UbicacionFinal),
		TiqueteDeEntrega:                    strings.TrimSpace(in.TiqueteDeEntrega),
		Serial:                              strings.TrimSpace(in.Serial),
		MAC:                                 strings.TrimSpace(in.MAC),
		Observaciones:                       in.Observaciones,
		ContratoFacturacion:                 strings.TrimSpace(in.ContratoFacturacion),
		TipoServicio:                        strings.TrimSpace(in.TipoServicio),
		CantidadDeCajasColocadasRevify:      in.CantidadDeCajasColocadasRevify,
		PrecioIPTVPrincipalRevify:           in.PrecioIPTVPrincipalRevify,
		PrecioIPTVAdicionalRevify:           in.PrecioIPTVAdicionalRevify,
		PrecioIPTVPrincipalLiberty:          in.PrecioIPTVPrincipalLiberty,
		PrecioIPTVAdicionalLiberty:          in.PrecioIPTVAdicionalLiberty,
		PreciodeConvertidorPrincipalLiberty: in.PreciodeConvertidorPrincipalLiberty,
		PreciodeConvertidorAdicionalLiberty: in.PreciodeConvertidorAdicionalLiberty,
		TotaldelContrato:                    in.TotaldelContrato,
	}
}

func cajaToResponse(c *entity.Caja) *dto.CajaResponse {
	if c == nil {
		return nil
	}
	var fm *time.Time
	if c.FechaModificacion != nil {
		t := *c.FechaModificacion
		fm = &t
	}
	return &dto.CajaResponse{
		ID:                                  c.ID,
		Proyecto:                            c.Proyecto,
		Estatus:                             c.Estatus,
		ContratoLiberty:                     c.ContratoLiberty,
		CodigoClienteBlueSAT:                c.CodigoClienteBlueSAT,
		NombreContratoSolicitado:            c.NombreContratoSolicitado,
		TipoContratacion:                    c.TipoContratacion,
		EstatusContrato:                     c.EstatusContrato,
		CodigoCliente:                       c.CodigoCliente,
		RazonSocial:                         c.RazonSocial,
		UbicacionFinal:                      c.UbicacionFinal,
		TiqueteDeEntrega:                    c.TiqueteDeEntrega,
		Serial:                              c.Serial,
		MAC:                                 c.MAC,
		Observaciones:                       c.Observaciones,
		ContratoFacturacion:                 c.ContratoFacturacion,
		TipoServicio:                        c.TipoServicio,
		CantidadDeCajasColocadasRevify:      c.CantidadDeCajasColocadasRevify,
		PrecioIPTVPrincipalRevify:           c.PrecioIPTVPrincipalRevify,
		PrecioIPTVAdicionalRevify:           c.PrecioIPTVAdicionalRevify,
		PrecioIPTVPrincipalLiberty:          c.PrecioIPTVPrincipalLiberty,
		PrecioIPTVAdicionalLiberty:          c.PrecioIPTVAdicionalLiberty,
		PreciodeConvertidorPrincipalLiberty: c.PreciodeConvertidorPrincipalLiberty,
		PreciodeConvertidorAdicionalLiberty: c.PreciodeConvertidorAdicionalLiberty,
		TotaldelContrato:                    c.TotaldelContrato,
		UsuarioCreacion:                     c.UsuarioCreacion,
		FechaCreacion:                       c.FechaCreacion,
		UsuarioModificador:                  c.UsuarioModificador,
		FechaModificacion:                   fm,
	}
}

// cajaToRow fila de exportación en el orden de dto.CajaColumns.
func cajaToRow(c *entity.Caja) []any {
	return []any{
		c.Proyecto, c.Estatus, c.ContratoLiberty, c.CodigoClienteBlueSAT,
		c.NombreContratoSolicitado, c.TipoContratacion, c.EstatusContrato,
		c.CodigoCliente, c.RazonSocial, c.UbicacionFinal, c.TiqueteDeEntrega,
		c.Serial, c.MAC, c.Observaciones, c.ContratoFacturacion, c.TipoServicio,
		c.CantidadDeCajasColocadasRevify,
		moneyCell(c.PrecioIPTVPrincipalRevify),
		moneyCell(c.PrecioIPTVAdicionalRevify),
		moneyCell(c.PrecioIPTVPrincipalLiberty),
		moneyCell(c.PrecioIPTVAdicionalLiberty),
		moneyCell(c.PreciodeConvertidorPrincipalLiberty),
		moneyCell(c.PreciodeConvertidorAdicionalLiberty),
		moneyCell(c.TotaldelContrato),
	}
}

// moneyCell número si float64 lo representa exacto, para que la hoja pueda sumarlo;
// si no, texto con dos decimales que parseDecimal vuelve a leer sin pérdida.
func moneyCell(d decimal.Decimal) any {
	f := d.InexactFloat64()
	if decimal.NewFromFloat(f).Equal(d) {
		return f
	}
	return d.StringFixed(2)
}
