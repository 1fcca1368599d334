package dto

// RegisterRequest entrada para POST /auth/register.
// bcrypt ignora lo que pase de 72 bytes, por eso el límite.
type RegisterRequest struct {
	NombreUsuario string `json:"nombre_usuario" validate:"required,max=100"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Password      string `json:"password" validate:"required,max=72"`
}

// LoginRequest entrada para POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserProfile campos públicos del usuario (nunca el hash).
type UserProfile struct {
	ID            int64  `json:"id"`
	NombreUsuario string `json:"nombre_usuario"`
	Email         string `json:"email"`
	Rol           string `json:"rol"`
}

// LoginResponse token JWT más el perfil del usuario autenticado.
type LoginResponse struct {
	Token   string      `json:"token"`
	Usuario UserProfile `json:"usuario"`
}
