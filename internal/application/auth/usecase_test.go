package auth_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-iptv/internal/application/auth"
	"github.com/jhoicas/inventario-iptv/internal/application/dto"
	"github.com/jhoicas/inventario-iptv/internal/domain"
	"github.com/jhoicas/inventario-iptv/internal/domain/entity"
	pkgjwt "github.com/jhoicas/inventario-iptv/pkg/jwt"
)

const testSecret = "secret-de-pruebas"

// fakeUserRepo repositorio en memoria.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*entity.User
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func newUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"}).
		WithBcryptCost(bcrypt.MinCost)
}

func TestRegister_RolPorDefectoYHash(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	profile, err := uc.Register(context.Background(), dto.RegisterRequest{
		NombreUsuario: "alice", Email: "Alice@X.com ", Password: "pw1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.ID)
	assert.Equal(t, "alice", profile.NombreUsuario)
	assert.Equal(t, "alice@x.com", profile.Email)
	assert.Equal(t, entity.RoleContabilidad, profile.Rol)

	stored := repo.users[profile.ID]
	assert.NotEqual(t, "pw1", stored.PasswordHash, "el password no se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	in := dto.RegisterRequest{NombreUsuario: "alice", Email: "alice@x.com", Password: "pw1"}

	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateUser_RolInvalido(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	_, err := uc.CreateUser(context.Background(), dto.RegisterRequest{
		NombreUsuario: "x", Email: "x@x.com", Password: "pw",
	}, "superusuario")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateUser_PasswordMultibyteExcedeBytes(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	// 40 runas, 80 bytes
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		NombreUsuario: "ñandu", Email: "n@x.com", Password: strings.Repeat("ñ", 40),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		NombreUsuario: "ñandu", Email: "n@x.com", Password: strings.Repeat("ñ", 36),
	})
	assert.NoError(t, err, "72 bytes exactos es válido")
}

func TestLogin_TokenConMismoUsuario(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	ctx := context.Background()

	profile, err := uc.Register(ctx, dto.RegisterRequest{NombreUsuario: "alice", Email: "alice@x.com", Password: "pw1"})
	require.NoError(t, err)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "alice@x.com", Password: "pw1"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, *profile, resp.Usuario)

	id, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, id.UserID)
	assert.Equal(t, "alice", id.NombreUsuario)
	assert.Equal(t, entity.RoleContabilidad, id.Rol)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	ctx := context.Background()
	_, err := uc.Register(ctx, dto.RegisterRequest{NombreUsuario: "alice", Email: "alice@x.com", Password: "pw1"})
	require.NoError(t, err)

	cases := []struct {
		name string
		in   dto.LoginRequest
	}{
		{"password incorrecto", dto.LoginRequest{Email: "alice@x.com", Password: "otra"}},
		{"email desconocido", dto.LoginRequest{Email: "bob@x.com", Password: "pw1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := uc.Login(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
			assert.Nil(t, resp, "no se emite token")
		})
	}
}

func TestGetCurrentUser(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	ctx := context.Background()
	profile, err := uc.Register(ctx, dto.RegisterRequest{NombreUsuario: "alice", Email: "alice@x.com", Password: "pw1"})
	require.NoError(t, err)

	got, err := uc.GetCurrentUser(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	_, err = uc.GetCurrentUser(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRepoError_SePropaga(t *testing.T) {
	repo := newFakeUserRepo()
	repo.err = errors.New("conexión perdida")
	uc := newUseCase(repo)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}
