package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Caja representa una caja IPTV (set-top box) del inventario.
// Serial es el identificador externo; Estatus y EstatusContrato son texto libre.
type Caja struct {
	ID                                  int64
	Proyecto                            string
	Estatus                             string
	ContratoLiberty                     string
	CodigoClienteBlueSAT                string
	NombreContratoSolicitado            string
	TipoContratacion                    string
	EstatusContrato                     string
	CodigoCliente                       string
	RazonSocial                         string
	UbicacionFinal                      string
	TiqueteDeEntrega                    string
	Serial                              string
	MAC                                 string
	Observaciones                       string
	ContratoFacturacion                 string
	TipoServicio                        string
	CantidadDeCajasColocadasRevify      int
	PrecioIPTVPrincipalRevify           decimal.Decimal
	PrecioIPTVAdicionalRevify           decimal.Decimal
	PrecioIPTVPrincipalLiberty          decimal.Decimal
	PrecioIPTVAdicionalLiberty          decimal.Decimal
	PreciodeConvertidorPrincipalLiberty decimal.Decimal
	PreciodeConvertidorAdicionalLiberty decimal.Decimal
	TotaldelContrato                    decimal.Decimal

	UsuarioCreacion    string
	FechaCreacion      time.Time
	UsuarioModificador string
	FechaModificacion  *time.Time
}

// Prices devuelve los campos monetarios en orden de columna.
func (c *Caja) Prices() []decimal.Decimal {
	return []decimal.Decimal{
		c.PrecioIPTVPrincipalRevify,
		c.PrecioIPTVAdicionalRevify,
		c.PrecioIPTVPrincipalLiberty,
		c.PrecioIPTVAdicionalLiberty,
		c.PreciodeConvertidorPrincipalLiberty,
		c.PreciodeConvertidorAdicionalLiberty,
		c.TotaldelContrato,
	}
}
