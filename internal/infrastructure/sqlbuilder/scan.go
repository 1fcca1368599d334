package sqlbuilder

import (
	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
)

// Scanner lo cumplen pgx.Row, pgx.Rows, *sql.Row y *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// ScanCaja lee una fila con las columnas de cajaSelect.
func ScanCaja(s Scanner) (*entity.Caja, error) {
	var c entity.Caja
	err := s.Scan(
		&c.ID,
		&c.Proyecto, &c.Estatus, &c.ContratoLiberty, &c.CodigoClienteBlueSAT,
		&c.NombreContratoSolicitado, &c.TipoContratacion, &c.EstatusContrato,
		&c.CodigoCliente, &c.RazonSocial, &c.UbicacionFinal, &c.TiqueteDeEntrega,
		&c.Serial, &c.MAC, &c.Observaciones, &c.ContratoFacturacion, &c.TipoServicio,
		&c.CantidadDeCajasColocadasRevify,
		&c.PrecioIPTVPrincipalRevify, &c.PrecioIPTVAdicionalRevify,
		&c.PrecioIPTVPrincipalLiberty, &c.PrecioIPTVAdicionalLiberty,
		&c.PreciodeConvertidorPrincipalLiberty, &c.PreciodeConvertidorAdicionalLiberty,
		&c.TotaldelContrato,
		&c.UsuarioCreacion, &c.FechaCreacion, &c.UsuarioModificador, &c.FechaModificacion,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ScanUser lee una fila con las columnas de userSelect.
func ScanUser(s Scanner) (*entity.User, error) {
	var u entity.User
	if err := s.Scan(&u.ID, &u.NombreUsuario, &u.Email, &u.PasswordHash, &u.Rol, &u.FechaCreacion); err != nil {
		return nil, err
	}
	return &u, nil
}

// ScanGroupCount lee (clave, cantidad).
func ScanGroupCount(s Scanner) (repository.GroupCount, error) {
	var g repository.GroupCount
	err := s.Scan(&g.Key, &g.Count)
	return g, err
}
