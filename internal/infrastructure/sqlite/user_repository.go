package sqlite

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-iptv/internal/domain"
	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
	"github.com/jhoicas/inventario-iptv/internal/domain/repository"
	"github.com/jhoicas/inventario-iptv/internal/infrastructure/sqlbuilder"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo UserRepository sobre SQLite.
type UserRepo struct {
	q  querier
	sb sqlbuilder.Builder
}

// NewUserRepository construye el repositorio de usuarios.
func NewUserRepository(s *Storage) *UserRepo {
	return &UserRepo{q: s.db, sb: sqlbuilder.SQLite()}
}

func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query, args, err := r.sb.InsertUser(user)
	if err != nil {
		return fmt.Errorf("build insert user: %w", err)
	}
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findBy(ctx, "id", id)
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findBy(ctx, "email", email)
}

func (r *UserRepo) findBy(ctx context.Context, column string, value any) (*entity.User, error) {
	query, args, err := r.sb.GetUserBy(column, value)
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}
	u, err := sqlbuilder.ScanUser(r.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by %s: %w", column, err)
	}
	return u, nil
}
