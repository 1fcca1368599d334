// Package sqlbuilder arma las sentencias SQL de inventario y usuarios con squirrel
// para los dos motores soportados (PostgreSQL y SQLite) y escanea sus filas.
package sqlbuilder

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
)

// Tablas.
const (
	TableCajas    = "inventario_iptv"
	TableUsuarios = "usuario_inventario"
)

// Columnas editables de inventario_iptv, en el orden de CajaValues.
var cajaEditable = []string{
	"proyecto", "estatus", "contrato_liberty", "codigo_cliente_bluesat",
	"nombre_contrato_solicitado", "tipo_contratacion", "estatus_contrato",
	"codigo_cliente", "razon_social", "ubicacion_final", "tiquete_de_entrega",
	"serial", "mac", "observaciones", "contrato_facturacion", "tipo_servicio",
	"cantidad_cajas_colocadas_revify",
	"precio_iptv_principal_revify", "precio_iptv_adicional_revify",
	"precio_iptv_principal_liberty", "precio_iptv_adicional_liberty",
	"precio_convertidor_principal_liberty", "precio_convertidor_adicional_liberty",
	"total_del_contrato",
}

var cajaAudit = []string{"usuario_creacion", "fecha_creacion", "usuario_modificador", "fecha_modificacion"}

var cajaSelect = append(append([]string{"id"}, cajaEditable...), cajaAudit...)

var userSelect = []string{"id", "nombre_usuario", "email", "password_hash", "rol", "fecha_creacion"}

// Builder genera SQL para un dialecto concreto.
type Builder struct {
	sb         squirrel.StatementBuilderType
	ciContains func(col, v string) squirrel.Sqlizer
}

// Postgres placeholders $n e ILIKE.
func Postgres() Builder {
	return Builder{
		sb:         squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		ciContains: containsExpr("ILIKE"),
	}
}

// SQLite placeholders ? y LIKE (ya es case-insensitive para ASCII).
func SQLite() Builder {
	return Builder{
		sb:         squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		ciContains: containsExpr("LIKE"),
	}
}

// containsExpr "col OP ? ESCAPE '\'" con el valor ya escapado y envuelto en %.
func containsExpr(op string) func(col, v string) squirrel.Sqlizer {
	return func(col, v string) squirrel.Sqlizer {
		return squirrel.Expr(col+" "+op+` ? ESCAPE '\'`, "%"+v+"%")
	}
}

// ListCajas SELECT con filtros opcionales, ordenado por serial.
func (b Builder) ListCajas(f repository.ListFilter) (string, []any, error) {
	q := b.sb.Select(cajaSelect...).From(TableCajas)
	and := squirrel.And{}
	if f.Serial != "" {
		and = append(and, b.ciContains("serial", escapeLike(f.Serial)))
	}
	if f.Proyecto != "" {
		and = append(and, b.ciContains("proyecto", escapeLike(f.Proyecto)))
	}
	if f.Estatus != "" {
		and = append(and, b.ciContains("estatus", escapeLike(f.Estatus)))
	}
	if len(and) > 0 {
		q = q.Where(and)
	}
	return q.OrderBy("serial").ToSql()
}

// GetCaja SELECT por serial.
func (b Builder) GetCaja(serial string) (string, []any, error) {
	return b.sb.Select(cajaSelect...).From(TableCajas).Where(squirrel.Eq{"serial": serial}).ToSql()
}

// InsertCaja INSERT ... RETURNING id.
func (b Builder) InsertCaja(c *entity.Caja) (string, []any, error) {
	cols := append(append([]string{}, cajaEditable...), cajaAudit...)
	vals := append(CajaValues(c), c.UsuarioCreacion, c.FechaCreacion, c.UsuarioModificador, c.FechaModificacion)
	return b.sb.Insert(TableCajas).Columns(cols...).Values(vals...).Suffix("RETURNING id").ToSql()
}

// UpdateCaja sobrescribe las columnas editables y las de modificación; no toca las de creación.
func (b Builder) UpdateCaja(c *entity.Caja) (string, []any, error) {
	set := make(map[string]any, len(cajaEditable)+2)
	vals := CajaValues(c)
	for i, col := range cajaEditable {
		if col == "serial" {
			continue
		}
		set[col] = vals[i]
	}
	set["usuario_modificador"] = c.UsuarioModificador
	set["fecha_modificacion"] = c.FechaModificacion
	return b.sb.Update(TableCajas).SetMap(set).Where(squirrel.Eq{"serial": c.Serial}).ToSql()
}

// DeleteCaja DELETE por serial.
func (b Builder) DeleteCaja(serial string) (string, []any, error) {
	return b.sb.Delete(TableCajas).Where(squirrel.Eq{"serial": serial}).ToSql()
}

// CountCajasBy conteo agrupado por una columna de texto.
func (b Builder) CountCajasBy(column string) (string, []any, error) {
	return b.sb.Select(column, "COUNT(*)").From(TableCajas).
		GroupBy(column).OrderBy("COUNT(*) DESC", column).ToSql()
}

// TotalsCajas cantidad de cajas y suma de total_del_contrato.
func (b Builder) TotalsCajas() (string, []any, error) {
	return b.sb.Select("COUNT(*)", "COALESCE(SUM(total_del_contrato), 0)").From(TableCajas).ToSql()
}

// InsertUser INSERT ... RETURNING id.
func (b Builder) InsertUser(u *entity.User) (string, []any, error) {
	return b.sb.Insert(TableUsuarios).
		Columns("nombre_usuario", "email", "password_hash", "rol", "fecha_creacion").
		Values(u.NombreUsuario, u.Email, u.PasswordHash, u.Rol, u.FechaCreacion).
		Suffix("RETURNING id").ToSql()
}

// GetUserBy SELECT de usuario por una columna (id o email).
func (b Builder) GetUserBy(column string, value any) (string, []any, error) {
	return b.sb.Select(userSelect...).From(TableUsuarios).Where(squirrel.Eq{column: value}).ToSql()
}

// CajaValues valores de las columnas editables en orden.
func CajaValues(c *entity.Caja) []any {
	return []any{
		c.Proyecto, c.Estatus, c.ContratoLiberty, c.CodigoClienteBlueSAT,
		c.NombreContratoSolicitado, c.TipoContratacion, c.EstatusContrato,
		c.CodigoCliente, c.RazonSocial, c.UbicacionFinal, c.TiqueteDeEntrega,
		c.Serial, c.MAC, c.Observaciones, c.ContratoFacturacion, c.TipoServicio,
		c.CantidadDeCajasColocadasRevify,
		c.PrecioIPTVPrincipalRevify, c.PrecioIPTVAdicionalRevify,
		c.PrecioIPTVPrincipalLiberty, c.PrecioIPTVAdicionalLiberty,
		c.PreciodeConvertidorPrincipalLiberty, c.PreciodeConvertidorAdicionalLiberty,
		c.TotaldelContrato,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike hace que % y _ del usuario se busquen literalmente.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
