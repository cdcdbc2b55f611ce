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

// DestinationUseCase casos de uso CRUD + moderación para destinos.
type DestinationUseCase struct {
	repo    repository.DestinationRepository
	storage ports.ImageStorage
}

// NewDestinationUseCase construye el caso de uso.
func NewDestinationUseCase(repo repository.DestinationRepository, storage ports.ImageStorage) *DestinationUseCase {
	return &DestinationUseCase{repo: repo, storage: storage}
}

// Create valida, guarda la imagen y persiste el destino. La imagen es
// obligatoria al crear. Si la validación falla no se persiste ni almacena nada.
func (uc *DestinationUseCase) Create(in dto.CreateDestinationRequest) (*dto.DestinationResponse, error) {
	errs := validation.FieldErrors{}
	validation.Length(errs, "name", in.Name, 3, 255)
	validation.Length(errs, "location", in.Location, 2, 255)
	validation.MinLength(errs, "description", in.Description, 10)
	if in.Image == nil {
		errs.Add("image", "la imagen es requerida")
	}
	if errs.HasErrors() {
		return nil, errs
	}

	imageURL, err := uc.storage.Save("destinations", in.Image)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	d := &entity.Destination{
		Name:        in.Name,
		Location:    in.Location,
		Description: in.Description,
		ImageURL:    imageURL,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(d); err != nil {
		_ = uc.storage.Delete(imageURL)
		return nil, err
	}
	return toDestinationResponse(d), nil
}

// GetByID obtiene un destino por ID.
func (uc *DestinationUseCase) GetByID(id int64) (*dto.DestinationResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return toDestinationResponse(d), nil
}

// List lista destinos con paginación y filtro substring case-insensitive.
func (uc *DestinationUseCase) List(q string, limit, offset int) (*dto.DestinationListResponse, error) {
	list, err := uc.repo.List(q, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DestinationResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDestinationResponse(d))
	}
	return &dto.DestinationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica solo los campos presentes. Los campos modificados se validan
// con las mismas reglas del create; una imagen nueva reemplaza (y borra) la anterior.
func (uc *DestinationUseCase) Update(id int64, in dto.UpdateDestinationRequest) (*dto.DestinationResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}

	errs := validation.FieldErrors{}
	if in.Name != nil {
		validation.Length(errs, "name", *in.Name, 3, 255)
	}
	if in.Location != nil {
		validation.Length(errs, "location", *in.Location, 2, 255)
	}
	if in.Description != nil {
		validation.MinLength(errs, "description", *in.Description, 10)
	}
	if errs.HasErrors() {
		return nil, errs
	}

	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Location != nil {
		d.Location = *in.Location
	}
	if in.Description != nil {
		d.Description = *in.Description
	}

	oldImage := ""
	if in.Image != nil {
		imageURL, err := uc.storage.Save("destinations", in.Image)
		if err != nil {
			return nil, err
		}
		oldImage = d.ImageURL
		d.ImageURL = imageURL
	}

	d.UpdatedAt = time.Now()
	if err := uc.repo.Update(d); err != nil {
		if in.Image != nil {
			_ = uc.storage.Delete(d.ImageURL)
		}
		return nil, err
	}
	if oldImage != "" {
		_ = uc.storage.Delete(oldImage)
	}
	return toDestinationResponse(d), nil
}

// ToggleActive alterna is_active sin tocar otros campos y devuelve la fila
// resultante (el servidor es autoritativo; el cliente repinta con esto).
func (uc *DestinationUseCase) ToggleActive(id int64) (*dto.DestinationResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	next := moderation.FromActive(d.IsActive).Toggled()
	d.IsActive = next == moderation.StateActive
	if err := uc.repo.SetActive(id, d.IsActive); err != nil {
		return nil, err
	}
	return toDestinationResponse(d), nil
}

// ToggleFeatured alterna is_featured; independiente de is_active.
func (uc *DestinationUseCase) ToggleFeatured(id int64) (*dto.DestinationResponse, error) {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	d.IsFeatured = !d.IsFeatured
	if err := uc.repo.SetFeatured(id, d.IsFeatured); err != nil {
		return nil, err
	}
	return toDestinationResponse(d), nil
}

// Delete borra el destino y su imagen. Los paquetes y ofertas dependientes
// caen por el ON DELETE CASCADE de la FK. Irreversible.
func (uc *DestinationUseCase) Delete(id int64) error {
	d, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	if d.ImageURL != "" {
		_ = uc.storage.Delete(d.ImageURL)
	}
	return nil
}

func toDestinationResponse(d *entity.Destination) *dto.DestinationResponse {
	if d == nil {
		return nil
	}
	return &dto.DestinationResponse{
		ID:          d.ID,
		Name:        d.Name,
		Location:    d.Location,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		IsActive:    d.IsActive,
		IsFeatured:  d.IsFeatured,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
