package auth_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/turavia-api/internal/application/auth"
	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/domain"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
)

// fakeUserRepo almacén en memoria indexado por email en minúsculas.
type fakeUserRepo struct {
	rows   map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{rows: make(map[int64]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.rows[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.rows {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(q string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for id := int64(1); id < r.nextID; id++ {
		if u, ok := r.rows[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.rows[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) SetActive(id int64, active bool) error {
	if u, ok := r.rows[id]; ok {
		u.IsActive = active
	}
	return nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	delete(r.rows, id)
	return nil
}

var testJWT = auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "turavia-test"}

func newAuthUC() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return auth.NewAuthUseCase(repo, testJWT), repo
}

func TestRegister_Valido(t *testing.T) {
	uc, repo := newAuthUC()

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "Ana@Turavia.com",
		Password: "contraseña-segura",
		Name:     "Ana Gómez",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "ana@turavia.com", out.Email, "el email se normaliza a minúsculas")
	assert.Equal(t, entity.RoleEditor, out.Role, "sin rol explícito, editor por defecto")
	assert.True(t, out.IsActive)

	stored, _ := repo.GetByID(out.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "contraseña-segura", stored.PasswordHash, "la contraseña nunca se guarda en claro")
}

func TestRegister_PasswordCorta(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@turavia.com",
		Password: "corta",
		Name:     "Ana",
	})
	require.Error(t, err)

	var errs validation.FieldErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs, "password")
}

func TestRegister_RolInvalido(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@turavia.com",
		Password: "contraseña-segura",
		Name:     "Ana",
		Role:     "superadmin",
	})
	require.Error(t, err)

	var errs validation.FieldErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs, "role")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@turavia.com", Password: "contraseña-segura", Name: "Ana",
	})
	require.NoError(t, err)

	// Mismo email con distinta capitalización
	_, err = uc.RegisterUser(dto.RegisterRequest{
		Email: "ANA@turavia.com", Password: "otra-contraseña", Name: "Ana Bis",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_Valido(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@turavia.com", Password: "contraseña-segura", Name: "Ana", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@turavia.com", Password: "contraseña-segura"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@turavia.com", Password: "contraseña-segura", Name: "Ana",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@turavia.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@turavia.com", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivoBloqueado(t *testing.T) {
	uc, repo := newAuthUC()
	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@turavia.com", Password: "contraseña-segura", Name: "Ana",
	})
	require.NoError(t, err)

	require.NoError(t, repo.SetActive(out.ID, false))

	_, err = uc.Login(dto.LoginRequest{Email: "ana@turavia.com", Password: "contraseña-segura"})
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un usuario deshabilitado no entra aunque la contraseña sea correcta")
}
