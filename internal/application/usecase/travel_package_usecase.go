package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/domain"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
	"github.com/jhoicas/turavia-api/internal/domain/moderation"
	"github.com/jhoicas/turavia-api/internal/domain/repository"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
)

// TravelPackageUseCase casos de uso CRUD + moderación para paquetes.
// Igual que las ofertas, la escritura referencial va en transacción.
type TravelPackageUseCase struct {
	repo    repository.TravelPackageRepository
	tx      ports.TxRunner
	storage ports.ImageStorage
}

// NewTravelPackageUseCase construye el caso de uso.
func NewTravelPackageUseCase(repo repository.TravelPackageRepository, tx ports.TxRunner, storage ports.ImageStorage) *TravelPackageUseCase {
	return &TravelPackageUseCase{repo: repo, tx: tx, storage: storage}
}

func validatePackageFields(p *entity.TravelPackage) validation.FieldErrors {
	errs := validation.FieldErrors{}
	validation.Length(errs, "name", p.Name, 3, 255)
	validation.MinLength(errs, "description", p.Description, 10)
	validation.NonNegative(errs, "price", p.Price)
	validation.MinInt(errs, "duration_days", p.DurationDays, 1)
	return errs
}

// Create valida, verifica el destino y persiste el paquete.
func (uc *TravelPackageUseCase) Create(ctx context.Context, in dto.CreateTravelPackageRequest) (*dto.TravelPackageResponse, error) {
	now := time.Now()
	p := &entity.TravelPackage{
		DestinationID: in.DestinationID,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		DurationDays:  in.DurationDays,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	errs := validatePackageFields(p)
	if in.Image == nil {
		errs.Add("image", "la imagen es requerida")
	}
	if errs.HasErrors() {
		return nil, errs
	}

	imageURL, err := uc.storage.Save("packages", in.Image)
	if err != nil {
		return nil, err
	}
	p.ImageURL = imageURL

	err = uc.tx.Run(ctx, func(
		_ repository.OfferRepository,
		packages repository.TravelPackageRepository,
		_ repository.CompanyRepository,
		destinations repository.DestinationRepository,
	) error {
		destination, derr := destinations.GetByID(p.DestinationID)
		if derr != nil {
			return derr
		}
		if destination == nil {
			ferrs := validation.FieldErrors{}
			ferrs.Add("destination_id", "el destino no existe")
			return ferrs
		}
		return packages.Create(p)
	})
	if err != nil {
		_ = uc.storage.Delete(imageURL)
		return nil, err
	}
	return toTravelPackageResponse(p), nil
}

// GetByID obtiene un paquete por ID.
func (uc *TravelPackageUseCase) GetByID(id int64) (*dto.TravelPackageResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toTravelPackageResponse(p), nil
}

// List lista paquetes con paginación y filtro por name.
func (uc *TravelPackageUseCase) List(q string, limit, offset int) (*dto.TravelPackageListResponse, error) {
	list, err := uc.repo.List(q, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TravelPackageResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toTravelPackageResponse(p))
	}
	return &dto.TravelPackageListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica solo los campos presentes y revalida el resultado fusionado.
func (uc *TravelPackageUseCase) Update(ctx context.Context, id int64, in dto.UpdateTravelPackageRequest) (*dto.TravelPackageResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	if in.DestinationID != nil {
		p.DestinationID = *in.DestinationID
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.DurationDays != nil {
		p.DurationDays = *in.DurationDays
	}

	if errs := validatePackageFields(p); errs.HasErrors() {
		return nil, errs
	}

	oldImage := ""
	if in.Image != nil {
		imageURL, serr := uc.storage.Save("packages", in.Image)
		if serr != nil {
			return nil, serr
		}
		oldImage = p.ImageURL
		p.ImageURL = imageURL
	}

	p.UpdatedAt = time.Now()
	err = uc.tx.Run(ctx, func(
		_ repository.OfferRepository,
		packages repository.TravelPackageRepository,
		_ repository.CompanyRepository,
		destinations repository.DestinationRepository,
	) error {
		if in.DestinationID != nil {
			destination, derr := destinations.GetByID(p.DestinationID)
			if derr != nil {
				return derr
			}
			if destination == nil {
				ferrs := validation.FieldErrors{}
				ferrs.Add("destination_id", "el destino no existe")
				return ferrs
			}
		}
		return packages.Update(p)
	})
	if err != nil {
		if in.Image != nil {
			_ = uc.storage.Delete(p.ImageURL)
		}
		return nil, err
	}
	if oldImage != "" {
		_ = uc.storage.Delete(oldImage)
	}
	return toTravelPackageResponse(p), nil
}

// ToggleActive alterna is_active y devuelve la fila resultante.
func (uc *TravelPackageUseCase) ToggleActive(id int64) (*dto.TravelPackageResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	next := moderation.FromActive(p.IsActive).Toggled()
	p.IsActive = next == moderation.StateActive
	if err := uc.repo.SetActive(id, p.IsActive); err != nil {
		return nil, err
	}
	return toTravelPackageResponse(p), nil
}

// ToggleFeatured alterna is_featured; independiente de is_active.
func (uc *TravelPackageUseCase) ToggleFeatured(id int64) (*dto.TravelPackageResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	p.IsFeatured = !p.IsFeatured
	if err := uc.repo.SetFeatured(id, p.IsFeatured); err != nil {
		return nil, err
	}
	return toTravelPackageResponse(p), nil
}

// Delete borra el paquete y su imagen. Irreversible.
func (uc *TravelPackageUseCase) Delete(id int64) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	if p.ImageURL != "" {
		_ = uc.storage.Delete(p.ImageURL)
	}
	return nil
}

func toTravelPackageResponse(p *entity.TravelPackage) *dto.TravelPackageResponse {
	if p == nil {
		return nil
	}
	return &dto.TravelPackageResponse{
		ID:            p.ID,
		DestinationID: p.DestinationID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		DurationDays:  p.DurationDays,
		ImageURL:      p.ImageURL,
		IsActive:      p.IsActive,
		IsFeatured:    p.IsFeatured,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
