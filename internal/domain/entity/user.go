package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin        = "admin"
	RoleSoporte      = "soporte"
	RoleContabilidad = "contabilidad"
)

// RoleDefault es el rol asignado en el registro; la elevación no es autoservicio.
const RoleDefault = RoleContabilidad

// User representa un usuario del inventario.
type User struct {
	ID            int64
	NombreUsuario string
	Email         string
	PasswordHash  string // bcrypt hash, nunca sale del caso de uso de auth
	Rol           string // admin, soporte, contabilidad
	FechaCreacion time.Time
}

// IsValidRole indica si r pertenece al conjunto fijo de roles.
func IsValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleSoporte, RoleContabilidad:
		return true
	}
	return false
}
