package repository

import (
	"context"

	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario y asigna user.ID. ErrEmailAlreadyExists si el email existe.
	Create(ctx context.Context, user *entity.User) error
	// FindByID y FindByEmail devuelven (nil, nil) cuando no hay fila.
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
