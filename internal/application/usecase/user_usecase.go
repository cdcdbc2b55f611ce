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

// UserUseCase moderación de usuarios del panel (solo admin). El alta va por
// el caso de uso de auth; aquí viven listado, edición, toggle y borrado.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return entityToUserResponse(user), nil
}

// List lista usuarios con paginación y filtro por name/email.
func (uc *UserUseCase) List(q string, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(q, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica solo los campos presentes (nombre y rol).
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	errs := validation.FieldErrors{}
	if in.Name != nil {
		validation.Length(errs, "name", *in.Name, 2, 255)
	}
	if in.Role != nil {
		validation.OneOf(errs, "role", *in.Role, entity.RoleAdmin, entity.RoleEditor)
	}
	if errs.HasErrors() {
		return nil, errs
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// ToggleActive alterna is_active; un usuario inactivo no puede iniciar sesión.
// El contador de usuarios activos del dashboard refleja este flag.
func (uc *UserUseCase) ToggleActive(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	next := moderation.FromActive(user.IsActive).Toggled()
	user.IsActive = next == moderation.StateActive
	if err := uc.repo.SetActive(id, user.IsActive); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Delete borra el usuario; sus reseñas caen en cascada. Irreversible.
func (uc *UserUseCase) Delete(id int64) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
