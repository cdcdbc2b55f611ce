package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/domain"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
	"github.com/jhoicas/turavia-api/internal/domain/moderation"
	"github.com/jhoicas/turavia-api/internal/domain/repository"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
)

// OfferUseCase casos de uso CRUD + moderación para ofertas. Las escrituras
// van dentro de una transacción: la verificación de company_id/destination_id
// y el insert/update deben ser atómicos frente a borrados concurrentes.
type OfferUseCase struct {
	repo    repository.OfferRepository
	tx      ports.TxRunner
	storage ports.ImageStorage
}

// NewOfferUseCase construye el caso de uso.
func NewOfferUseCase(repo repository.OfferRepository, tx ports.TxRunner, storage ports.ImageStorage) *OfferUseCase {
	return &OfferUseCase{repo: repo, tx: tx, storage: storage}
}

// validateOfferFields reglas compartidas entre create y update, evaluadas
// siempre sobre el estado final de la fila.
func validateOfferFields(o *entity.Offer) validation.FieldErrors {
	errs := validation.FieldErrors{}
	validation.Length(errs, "title", o.Title, 3, 255)
	validation.MinLength(errs, "description", o.Description, 10)
	validation.NonNegative(errs, "price", o.Price)
	if o.DiscountPrice != nil {
		validation.NonNegative(errs, "discount_price", *o.DiscountPrice)
		validation.LessThan(errs, "discount_price", *o.DiscountPrice, o.Price)
	}
	if o.DiscountType != "" && o.DiscountType != entity.DiscountPercentage && o.DiscountType != entity.DiscountFixed {
		// Etiqueta libre: solo se acota la longitud.
		validation.Length(errs, "discount_type", o.DiscountType, 1, 50)
	}
	validation.DateWindow(errs, "end_date", o.StartDate, o.EndDate)
	return errs
}

// Create valida, verifica las FKs y persiste la oferta. La imagen es
// obligatoria al crear. Nada se persiste si algo falla.
func (uc *OfferUseCase) Create(ctx context.Context, in dto.CreateOfferRequest) (*dto.OfferResponse, error) {
	now := time.Now()
	o := &entity.Offer{
		CompanyID:     in.CompanyID,
		DestinationID: in.DestinationID,
		Title:         in.Title,
		Description:   in.Description,
		Price:         in.Price,
		DiscountPrice: in.DiscountPrice,
		DiscountType:  in.DiscountType,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	errs := validateOfferFields(o)
	if in.Image == nil {
		errs.Add("image", "la imagen es requerida")
	}
	if errs.HasErrors() {
		return nil, errs
	}

	imageURL, err := uc.storage.Save("offers", in.Image)
	if err != nil {
		return nil, err
	}
	o.ImageURL = imageURL

	err = uc.tx.Run(ctx, func(
		offers repository.OfferRepository,
		_ repository.TravelPackageRepository,
		companies repository.CompanyRepository,
		destinations repository.DestinationRepository,
	) error {
		if ferr := checkOfferRefs(companies, destinations, o.CompanyID, o.DestinationID); ferr != nil {
			return ferr
		}
		return offers.Create(o)
	})
	if err != nil {
		_ = uc.storage.Delete(imageURL)
		return nil, err
	}
	return toOfferResponse(o), nil
}

// checkOfferRefs verifica que las FKs apunten a filas existentes y devuelve
// errores por campo para que el formulario los muestre donde corresponde.
func checkOfferRefs(
	companies repository.CompanyRepository,
	destinations repository.DestinationRepository,
	companyID, destinationID int64,
) error {
	errs := validation.FieldErrors{}
	company, err := companies.GetByID(companyID)
	if err != nil {
		return err
	}
	if company == nil {
		errs.Add("company_id", "la compañía no existe")
	}
	destination, err := destinations.GetByID(destinationID)
	if err != nil {
		return err
	}
	if destination == nil {
		errs.Add("destination_id", "el destino no existe")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// GetByID obtiene una oferta por ID.
func (uc *OfferUseCase) GetByID(id int64) (*dto.OfferResponse, error) {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	return toOfferResponse(o), nil
}

// List lista ofertas con paginación y filtro por title/description.
func (uc *OfferUseCase) List(q string, limit, offset int) (*dto.OfferListResponse, error) {
	list, err := uc.repo.List(q, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfferResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOfferResponse(o))
	}
	return &dto.OfferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica solo los campos presentes y revalida el resultado fusionado:
// bajar price por debajo del discount_price guardado falla sobre
// discount_price aunque ese campo no haya viajado en la petición.
func (uc *OfferUseCase) Update(ctx context.Context, id int64, in dto.UpdateOfferRequest) (*dto.OfferResponse, error) {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}

	if in.CompanyID != nil {
		o.CompanyID = *in.CompanyID
	}
	if in.DestinationID != nil {
		o.DestinationID = *in.DestinationID
	}
	if in.Title != nil {
		o.Title = *in.Title
	}
	if in.Description != nil {
		o.Description = *in.Description
	}
	if in.Price != nil {
		o.Price = *in.Price
	}
	if in.DiscountPrice != nil {
		o.DiscountPrice = in.DiscountPrice
	}
	if in.DiscountType != nil {
		o.DiscountType = *in.DiscountType
	}
	if in.StartDate != nil {
		o.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		o.EndDate = *in.EndDate
	}

	if errs := validateOfferFields(o); errs.HasErrors() {
		return nil, errs
	}

	oldImage := ""
	if in.Image != nil {
		imageURL, err := uc.storage.Save("offers", in.Image)
		if err != nil {
			return nil, err
		}
		oldImage = o.ImageURL
		o.ImageURL = imageURL
	}

	o.UpdatedAt = time.Now()
	err = uc.tx.Run(ctx, func(
		offers repository.OfferRepository,
		_ repository.TravelPackageRepository,
		companies repository.CompanyRepository,
		destinations repository.DestinationRepository,
	) error {
		if in.CompanyID != nil || in.DestinationID != nil {
			if ferr := checkOfferRefs(companies, destinations, o.CompanyID, o.DestinationID); ferr != nil {
				return ferr
			}
		}
		return offers.Update(o)
	})
	if err != nil {
		if in.Image != nil {
			_ = uc.storage.Delete(o.ImageURL)
		}
		return nil, err
	}
	if oldImage != "" {
		_ = uc.storage.Delete(oldImage)
	}
	return toOfferResponse(o), nil
}

// ToggleActive alterna is_active y devuelve la fila resultante.
func (uc *OfferUseCase) ToggleActive(id int64) (*dto.OfferResponse, error) {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	next := moderation.FromActive(o.IsActive).Toggled()
	o.IsActive = next == moderation.StateActive
	if err := uc.repo.SetActive(id, o.IsActive); err != nil {
		return nil, err
	}
	return toOfferResponse(o), nil
}

// Delete borra la oferta y su imagen. Irreversible.
func (uc *OfferUseCase) Delete(id int64) error {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	if o.ImageURL != "" {
		_ = uc.storage.Delete(o.ImageURL)
	}
	return nil
}

func toOfferResponse(o *entity.Offer) *dto.OfferResponse {
	if o == nil {
		return nil
	}
	var discount *decimal.Decimal
	if o.DiscountPrice != nil {
		d := *o.DiscountPrice
		discount = &d
	}
	return &dto.OfferResponse{
		ID:            o.ID,
		CompanyID:     o.CompanyID,
		DestinationID: o.DestinationID,
		Title:         o.Title,
		Description:   o.Description,
		Price:         o.Price,
		DiscountPrice: discount,
		DiscountType:  o.DiscountType,
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
		ImageURL:      o.ImageURL,
		IsActive:      o.IsActive,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
