package usecase

import (
	"time"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/domain"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
	"github.com/jhoicas/turavia-api/internal/domain/moderation"
	"github.com/jhoicas/turavia-api/internal/domain/repository"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
)

// ContactUseCase casos de uso para mensajes de contacto: alta pública,
// listado moderado y marcado leído / no leído.
type ContactUseCase struct {
	repo repository.ContactRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// Create valida y persiste un mensaje del formulario público.
func (uc *ContactUseCase) Create(in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	errs := validation.FieldErrors{}
	validation.Length(errs, "name", in.Name, 2, 255)
	validation.Required(errs, "email", in.Email)
	if in.Email != "" {
		validation.Email(errs, "email", in.Email)
	}
	validation.MinLength(errs, "message", in.Message, 10)
	if errs.HasErrors() {
		return nil, errs
	}
	now := time.Now()
	c := &entity.Contact{
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toContactResponse(c), nil
}

// GetByID obtiene un mensaje por ID.
func (uc *ContactUseCase) GetByID(id int64) (*dto.ContactResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toContactResponse(c), nil
}

// List lista mensajes con paginación y filtro por name/email/message.
func (uc *ContactUseCase) List(q string, limit, offset int) (*dto.ContactListResponse, error) {
	list, err := uc.repo.List(q, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContactResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toContactResponse(c))
	}
	return &dto.ContactListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// MarkRead marca el mensaje como leído. Idempotente: marcar leído un mensaje
// ya leído no cambia nada.
func (uc *ContactUseCase) MarkRead(id int64) (*dto.ContactResponse, error) {
	return uc.setRead(id, moderation.ReadStateRead)
}

// MarkUnread vuelve el mensaje a no leído (la acción simétrica del listado).
func (uc *ContactUseCase) MarkUnread(id int64) (*dto.ContactResponse, error) {
	return uc.setRead(id, moderation.ReadStateUnread)
}

func (uc *ContactUseCase) setRead(id int64, target moderation.ReadState) (*dto.ContactResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	c.IsRead = target == moderation.ReadStateRead
	if err := uc.repo.SetRead(id, c.IsRead); err != nil {
		return nil, err
	}
	return toContactResponse(c), nil
}

// Delete borra el mensaje. Irreversible.
func (uc *ContactUseCase) Delete(id int64) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	if c == nil {
		return nil
	}
	return &dto.ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		IsRead:    c.IsRead,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
