package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/usecase"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
	"github.com/jhoicas/turavia-api/internal/infrastructure/flash"
	apphttp "github.com/jhoicas/turavia-api/internal/interfaces/http"
)

// contactRepoStub guarda un único mensaje en memoria, suficiente para
// ejercitar las acciones de moderación del handler.
type contactRepoStub struct {
	contact *entity.Contact
}

func (s *contactRepoStub) Create(c *entity.Contact) error { c.ID = 1; s.contact = c; return nil }
func (s *contactRepoStub) GetByID(id int64) (*entity.Contact, error) {
	if s.contact == nil || s.contact.ID != id {
		return nil, nil
	}
	cp := *s.contact
	return &cp, nil
}
func (s *contactRepoStub) List(q string, limit, offset int) ([]*entity.Contact, error) {
	return nil, nil
}
func (s *contactRepoStub) SetRead(id int64, read bool) error {
	if s.contact != nil && s.contact.ID == id {
		s.contact.IsRead = read
	}
	return nil
}
func (s *contactRepoStub) Delete(id int64) error {
	if s.contact != nil && s.contact.ID == id {
		s.contact = nil
	}
	return nil
}

// companyRepoStub guarda una única compañía en memoria.
type companyRepoStub struct {
	company *entity.Company
}

func (s *companyRepoStub) Create(c *entity.Company) error { c.ID = 1; s.company = c; return nil }
func (s *companyRepoStub) GetByID(id int64) (*entity.Company, error) {
	if s.company == nil || s.company.ID != id {
		return nil, nil
	}
	cp := *s.company
	return &cp, nil
}
func (s *companyRepoStub) List(q string, limit, offset int) ([]*entity.Company, error) {
	return nil, nil
}
func (s *companyRepoStub) Update(c *entity.Company) error { s.company = c; return nil }
func (s *companyRepoStub) SetActive(id int64, active bool) error {
	if s.company != nil && s.company.ID == id {
		s.company.IsActive = active
	}
	return nil
}
func (s *companyRepoStub) Delete(id int64) error { s.company = nil; return nil }

type noopStorage struct{}

func (noopStorage) Save(entityKind string, img *dto.ImageUpload) (string, error) { return "", nil }
func (noopStorage) Delete(publicURL string) error                               { return nil }

func doPatch(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// popFlash saca el flash pendiente del usuario de pruebas.
func popFlash(t *testing.T, store *flash.MemoryStore) *dto.Flash {
	t.Helper()
	f, err := store.Pop(context.Background(), testUserID)
	require.NoError(t, err)
	return f
}

func seededContact() *entity.Contact {
	now := time.Now()
	return &entity.Contact{
		ID:        1,
		Name:      "Laura Méndez",
		Email:     "laura@example.com",
		Message:   "Quisiera información sobre paquetes al Caribe",
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func buildContactApp(repo *contactRepoStub, store *flash.MemoryStore) *fiber.App {
	app := fiber.New()
	h := apphttp.NewContactHandler(usecase.NewContactUseCase(repo), store)
	app.Post("/api/contacts", h.Create)
	grp := app.Group("/api/contacts", apphttp.AuthMiddleware(testJWTSecret))
	grp.Patch("/:id/read", h.MarkRead)
	grp.Patch("/:id/unread", h.MarkUnread)
	grp.Delete("/:id", h.Delete)
	return app
}

// Marcar un mensaje como leído debe dejar un flash de confirmación en la
// ranura del usuario autenticado.
func TestContactMarkRead_EncolaFlash(t *testing.T) {
	repo := &contactRepoStub{contact: seededContact()}
	store := flash.NewMemoryStore()
	app := buildContactApp(repo, store)

	resp := doPatch(t, app, "/api/contacts/1/read", tokenForRole(t, "admin"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	f := popFlash(t, store)
	require.NotNil(t, f, "la acción de moderación debe encolar un flash")
	assert.Equal(t, dto.FlashSuccess, f.Type)
	assert.Equal(t, "Mensaje marcado como leído", f.Message)
}

func TestContactMarkUnread_EncolaFlash(t *testing.T) {
	c := seededContact()
	c.IsRead = true
	repo := &contactRepoStub{contact: c}
	store := flash.NewMemoryStore()
	app := buildContactApp(repo, store)

	resp := doPatch(t, app, "/api/contacts/1/unread", tokenForRole(t, "admin"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	f := popFlash(t, store)
	require.NotNil(t, f)
	assert.Equal(t, "Mensaje marcado como no leído", f.Message)
}

func TestContactDelete_EncolaFlash(t *testing.T) {
	repo := &contactRepoStub{contact: seededContact()}
	store := flash.NewMemoryStore()
	app := buildContactApp(repo, store)

	req := httptest.NewRequest(http.MethodDelete, "/api/contacts/1", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	f := popFlash(t, store)
	require.NotNil(t, f)
	assert.Equal(t, "Mensaje eliminado", f.Message)
}

// El alta pública no lleva token, así que no debe quedar flash en ninguna
// ranura: pushFlash ignora peticiones sin usuario autenticado.
func TestContactCreatePublico_NoEncolaFlash(t *testing.T) {
	repo := &contactRepoStub{}
	store := flash.NewMemoryStore()
	app := buildContactApp(repo, store)

	body := `{"name":"Pedro","email":"pedro@example.com","message":"Busco vuelos baratos a Roma"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contacts", strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	f, err := store.Pop(context.Background(), 0)
	require.NoError(t, err)
	assert.Nil(t, f, "una petición anónima no debe encolar flash")
}

// Los toggles también dejan feedback, con el mensaje según el estado
// resultante de la entidad.
func TestCompanyToggleActive_EncolaFlashSegunEstado(t *testing.T) {
	now := time.Now()
	repo := &companyRepoStub{company: &entity.Company{
		ID:        1,
		Name:      "Viajes Atlas",
		Email:     "contacto@atlas.test",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}}
	store := flash.NewMemoryStore()

	app := fiber.New()
	h := apphttp.NewCompanyHandler(usecase.NewCompanyUseCase(repo, noopStorage{}), store, 1<<20)
	app.Patch("/api/companies/:id/toggle-active", apphttp.AuthMiddleware(testJWTSecret), h.ToggleActive)

	resp := doPatch(t, app, "/api/companies/1/toggle-active", tokenForRole(t, "admin"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	f := popFlash(t, store)
	require.NotNil(t, f, "el toggle debe encolar un flash")
	assert.Equal(t, "Compañía deshabilitada", f.Message)

	// Segundo toggle: vuelve a activa y el mensaje cambia.
	resp2 := doPatch(t, app, "/api/companies/1/toggle-active", tokenForRole(t, "admin"))
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	f2 := popFlash(t, store)
	require.NotNil(t, f2)
	assert.Equal(t, "Compañía habilitada", f2.Message)
}
