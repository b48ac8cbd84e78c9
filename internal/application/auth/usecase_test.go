package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vishal7007/MobileShop-api/internal/application/auth"
	"github.com/vishal7007/MobileShop-api/internal/application/dto"
	"github.com/vishal7007/MobileShop-api/internal/domain"
	"github.com/vishal7007/MobileShop-api/internal/domain/entity"
	"github.com/vishal7007/MobileShop-api/pkg/jwt"
)

type fakeUserRepo struct{ byUsername map[string]*entity.User }

func (r *fakeUserRepo) Create(u *entity.User) error { r.byUsername[u.Username] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.byUsername[username], nil
}
func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byUsername {
		out = append(out, u)
	}
	return out, nil
}
func (r *fakeUserRepo) Count() (int, error) { return len(r.byUsername), nil }

var testJWT = auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "mobileshop-test"}

func newAuth(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{byUsername: map[string]*entity.User{
		"admin": {
			ID: "user-1", Username: "admin", PasswordHash: string(hash),
			Role: entity.RoleAdmin, FullName: "Admin", Active: true,
		},
	}}
	return auth.NewAuthUseCase(repo, testJWT), repo
}

func TestLogin_TokenConUserIDYRole(t *testing.T) {
	uc, _ := newAuth(t)

	resp, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, "admin", resp.User.Role)

	userID, role, err := jwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "admin", role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuth(t)

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistenteMismoError(t *testing.T) {
	uc, _ := newAuth(t)

	// Mismo error que password mala: no se revela si el usuario existe.
	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, repo := newAuth(t)
	repo.byUsername["admin"].Active = false

	_, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegisterUser_CreaConHash(t *testing.T) {
	uc, repo := newAuth(t)

	resp, err := uc.RegisterUser(dto.RegisterRequest{
		Username: "ravi", Password: "clave123", Role: "employee", FullName: "Ravi Kumar",
	})
	require.NoError(t, err)
	assert.Equal(t, "employee", resp.Role)
	assert.True(t, resp.Active)

	stored := repo.byUsername["ravi"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave123", stored.PasswordHash, "nunca se guarda la password plana")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave123")))
}

func TestRegisterUser_UsernameOcupado(t *testing.T) {
	uc, _ := newAuth(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "admin", Password: "x", Role: "admin"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegisterUser_RolInvalido(t *testing.T) {
	uc, _ := newAuth(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "nuevo", Password: "x", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
