package usecase

import (
	"time"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/domain"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
	"github.com/jhoicas/turavia-api/internal/domain/moderation"
	"github.com/jhoicas/turavia-api/internal/domain/repository"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
)

// CompanyUseCase casos de uso CRUD + moderación para compañías.
type CompanyUseCase struct {
	repo    repository.CompanyRepository
	storage ports.ImageStorage
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository, storage ports.ImageStorage) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, storage: storage}
}

// Create valida y persiste una compañía. El logo es opcional.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	errs := validation.FieldErrors{}
	validation.Length(errs, "name", in.Name, 3, 255)
	validation.Required(errs, "email", in.Email)
	if in.Email != "" {
		validation.Email(errs, "email", in.Email)
	}
	if errs.HasErrors() {
		return nil, errs
	}

	logoURL := ""
	if in.Logo != nil {
		var err error
		logoURL, err = uc.storage.Save("companies", in.Logo)
		if err != nil {
			return nil, err
		}
	}
	now := time.Now()
	c := &entity.Company{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		LogoURL:   logoURL,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(c); err != nil {
		if logoURL != "" {
			_ = uc.storage.Delete(logoURL)
		}
		return nil, err
	}
	return toCompanyResponse(c), nil
}

// GetByID obtiene una compañía por ID.
func (uc *CompanyUseCase) GetByID(id int64) (*dto.CompanyResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCompanyResponse(c), nil
}

// List lista compañías con paginación y filtro por name/email.
func (uc *CompanyUseCase) List(q string, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(q, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica solo los campos presentes; un logo nuevo reemplaza al anterior.
func (uc *CompanyUseCase) Update(id int64, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	errs := validation.FieldErrors{}
	if in.Name != nil {
		validation.Length(errs, "name", *in.Name, 3, 255)
	}
	if in.Email != nil {
		validation.Email(errs, "email", *in.Email)
	}
	if errs.HasErrors() {
		return nil, errs
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.Address != nil {
		c.Address = *in.Address
	}

	oldLogo := ""
	if in.Logo != nil {
		logoURL, err := uc.storage.Save("companies", in.Logo)
		if err != nil {
			return nil, err
		}
		oldLogo = c.LogoURL
		c.LogoURL = logoURL
	}

	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		if in.Logo != nil {
			_ = uc.storage.Delete(c.LogoURL)
		}
		return nil, err
	}
	if oldLogo != "" {
		_ = uc.storage.Delete(oldLogo)
	}
	return toCompanyResponse(c), nil
}

// ToggleActive alterna is_active y devuelve la fila resultante.
func (uc *CompanyUseCase) ToggleActive(id int64) (*dto.CompanyResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	next := moderation.FromActive(c.IsActive).Toggled()
	c.IsActive = next == moderation.StateActive
	if err := uc.repo.SetActive(id, c.IsActive); err != nil {
		return nil, err
	}
	return toCompanyResponse(c), nil
}

// Delete borra la compañía; sus ofertas caen en cascada por la FK.
func (uc *CompanyUseCase) Delete(id int64) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	if c.LogoURL != "" {
		_ = uc.storage.Delete(c.LogoURL)
	}
	return nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		LogoURL:   c.LogoURL,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
