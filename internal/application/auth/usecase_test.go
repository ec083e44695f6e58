package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucatax/luca-api/internal/application/auth"
	"github.com/lucatax/luca-api/internal/application/dto"
	"github.com/lucatax/luca-api/internal/domain"
	"github.com/lucatax/luca-api/internal/domain/entity"
	pkgjwt "github.com/lucatax/luca-api/pkg/jwt"
)

// fakeUserRepo usuarios en memoria, indexados por email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func newTestAuth() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret-de-prueba",
		ExpMinutes: 60,
		Issuer:     "luca-api-test",
	})
	return uc, repo
}

func TestRegisterUser_RolPorDefectoContador(t *testing.T) {
	uc, repo := newTestAuth()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "maria@estudio.pe",
		Password: "clave-segura",
		Name:     "María Quispe",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleContador, out.Role)
	assert.Equal(t, "active", out.Status)

	stored := repo.byEmail["maria@estudio.pe"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-segura", stored.PasswordHash, "el password nunca se guarda en claro")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newTestAuth()

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "maria@estudio.pe", Password: "x1"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "maria@estudio.pe", Password: "x2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_GeneraTokenConRol(t *testing.T) {
	uc, _ := newTestAuth()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "admin@estudio.pe",
		Password: "clave-admin",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@estudio.pe", Password: "clave-admin"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	userID, role, err := pkgjwt.Parse("secret-de-prueba", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newTestAuth()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "maria@estudio.pe", Password: "correcta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "maria@estudio.pe", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newTestAuth()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@estudio.pe", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioSuspendido(t *testing.T) {
	uc, repo := newTestAuth()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "maria@estudio.pe", Password: "clave"})
	require.NoError(t, err)
	repo.byEmail["maria@estudio.pe"].Status = "suspended"

	_, err = uc.Login(dto.LoginRequest{Email: "maria@estudio.pe", Password: "clave"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
