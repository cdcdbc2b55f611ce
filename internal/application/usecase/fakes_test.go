package usecase_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
	"github.com/jhoicas/turavia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia y almacenamiento.
// Cada fake asigna IDs secuenciales y guarda copias para que los tests
// puedan mutar sin afectar el "almacén".
// ──────────────────────────────────────────────────────────────────────────────

type fakeDestinationRepo struct {
	rows   map[int64]*entity.Destination
	nextID int64
	err    error // si no es nil, todas las operaciones fallan con este error
}

func newFakeDestinationRepo() *fakeDestinationRepo {
	return &fakeDestinationRepo{rows: make(map[int64]*entity.Destination), nextID: 1}
}

func (r *fakeDestinationRepo) Create(d *entity.Destination) error {
	if r.err != nil {
		return r.err
	}
	d.ID = r.nextID
	r.nextID++
	cp := *d
	r.rows[d.ID] = &cp
	return nil
}

func (r *fakeDestinationRepo) GetByID(id int64) (*entity.Destination, error) {
	if r.err != nil {
		return nil, r.err
	}
	d, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDestinationRepo) List(q string, limit, offset int) ([]*entity.Destination, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Destination
	for id := int64(1); id < r.nextID; id++ {
		d, ok := r.rows[id]
		if !ok {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(q)) &&
			!strings.Contains(strings.ToLower(d.Location), strings.ToLower(q)) {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeDestinationRepo) Update(d *entity.Destination) error {
	if r.err != nil {
		return r.err
	}
	cp := *d
	r.rows[d.ID] = &cp
	return nil
}

func (r *fakeDestinationRepo) SetActive(id int64, active bool) error {
	if r.err != nil {
		return r.err
	}
	if d, ok := r.rows[id]; ok {
		d.IsActive = active
	}
	return nil
}

func (r *fakeDestinationRepo) SetFeatured(id int64, featured bool) error {
	if r.err != nil {
		return r.err
	}
	if d, ok := r.rows[id]; ok {
		d.IsFeatured = featured
	}
	return nil
}

func (r *fakeDestinationRepo) Delete(id int64) error {
	if r.err != nil {
		return r.err
	}
	delete(r.rows, id)
	return nil
}

type fakeCompanyRepo struct {
	rows   map[int64]*entity.Company
	nextID int64
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{rows: make(map[int64]*entity.Company), nextID: 1}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(id int64) (*entity.Company, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) List(q string, limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.rows[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) SetActive(id int64, active bool) error {
	if c, ok := r.rows[id]; ok {
		c.IsActive = active
	}
	return nil
}

func (r *fakeCompanyRepo) Delete(id int64) error {
	delete(r.rows, id)
	return nil
}

type fakeOfferRepo struct {
	rows   map[int64]*entity.Offer
	nextID int64
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{rows: make(map[int64]*entity.Offer), nextID: 1}
}

func (r *fakeOfferRepo) Create(o *entity.Offer) error {
	o.ID = r.nextID
	r.nextID++
	cp := *o
	r.rows[o.ID] = &cp
	return nil
}

func (r *fakeOfferRepo) GetByID(id int64) (*entity.Offer, error) {
	o, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOfferRepo) List(q string, limit, offset int) ([]*entity.Offer, error) {
	var out []*entity.Offer
	for id := int64(1); id < r.nextID; id++ {
		if o, ok := r.rows[id]; ok {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOfferRepo) ListActiveByDestination(destinationID int64) ([]*entity.Offer, error) {
	var out []*entity.Offer
	for id := int64(1); id < r.nextID; id++ {
		o, ok := r.rows[id]
		if !ok || !o.IsActive || o.DestinationID != destinationID {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeOfferRepo) Update(o *entity.Offer) error {
	cp := *o
	r.rows[o.ID] = &cp
	return nil
}

func (r *fakeOfferRepo) SetActive(id int64, active bool) error {
	if o, ok := r.rows[id]; ok {
		o.IsActive = active
	}
	return nil
}

func (r *fakeOfferRepo) Delete(id int64) error {
	delete(r.rows, id)
	return nil
}

type fakePackageRepo struct {
	rows   map[int64]*entity.TravelPackage
	nextID int64
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{rows: make(map[int64]*entity.TravelPackage), nextID: 1}
}

func (r *fakePackageRepo) Create(p *entity.TravelPackage) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *fakePackageRepo) GetByID(id int64) (*entity.TravelPackage, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePackageRepo) List(q string, limit, offset int) ([]*entity.TravelPackage, error) {
	var out []*entity.TravelPackage
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.rows[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePackageRepo) Update(p *entity.TravelPackage) error {
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *fakePackageRepo) SetActive(id int64, active bool) error {
	if p, ok := r.rows[id]; ok {
		p.IsActive = active
	}
	return nil
}

func (r *fakePackageRepo) SetFeatured(id int64, featured bool) error {
	if p, ok := r.rows[id]; ok {
		p.IsFeatured = featured
	}
	return nil
}

func (r *fakePackageRepo) Delete(id int64) error {
	delete(r.rows, id)
	return nil
}

type fakeContactRepo struct {
	rows   map[int64]*entity.Contact
	nextID int64
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{rows: make(map[int64]*entity.Contact), nextID: 1}
}

func (r *fakeContactRepo) Create(c *entity.Contact) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

func (r *fakeContactRepo) GetByID(id int64) (*entity.Contact, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContactRepo) List(q string, limit, offset int) ([]*entity.Contact, error) {
	var out []*entity.Contact
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.rows[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeContactRepo) SetRead(id int64, read bool) error {
	if c, ok := r.rows[id]; ok {
		c.IsRead = read
	}
	return nil
}

func (r *fakeContactRepo) Delete(id int64) error {
	delete(r.rows, id)
	return nil
}

// fakeStorage registra saves y deletes para verificar la limpieza de imágenes.
type fakeStorage struct {
	saved    []string
	deleted  []string
	saveErr  error
	counter  int
	basePath string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{basePath: "/uploads/test"}
}

func (s *fakeStorage) Save(entityKind string, img *dto.ImageUpload) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.counter++
	url := fmt.Sprintf("%s/%s/%d.jpg", s.basePath, entityKind, s.counter)
	s.saved = append(s.saved, url)
	return url, nil
}

func (s *fakeStorage) Delete(publicURL string) error {
	s.deleted = append(s.deleted, publicURL)
	return nil
}

// fakeTxRunner ejecuta el callback directo contra los fakes, sin transacción.
type fakeTxRunner struct {
	offers       *fakeOfferRepo
	packages     *fakePackageRepo
	companies    *fakeCompanyRepo
	destinations *fakeDestinationRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	offers repository.OfferRepository,
	packages repository.TravelPackageRepository,
	companies repository.CompanyRepository,
	destinations repository.DestinationRepository,
) error) error {
	return fn(t.offers, t.packages, t.companies, t.destinations)
}

// fakeLLM respuesta fija o error, para el caso de uso del asistente.
type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (l *fakeLLM) Chat(ctx context.Context, messages []dto.ChatMessage) (string, error) {
	l.calls++
	if l.err != nil {
		return "", l.err
	}
	return l.reply, nil
}

// testImage imagen mínima para pasar la validación de presencia.
func testImage() *dto.ImageUpload {
	return &dto.ImageUpload{
		Filename:    "playa.jpg",
		ContentType: "image/jpeg",
		Size:        1024,
		Reader:      strings.NewReader("not-a-real-jpeg"),
	}
}
