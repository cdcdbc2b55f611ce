package usecase

import (
	"time"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/domain"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
	"github.com/jhoicas/turavia-api/internal/domain/repository"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
)

// CategoryUseCase casos de uso CRUD para categorías de películas.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create valida y persiste una categoría. El nombre es único.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	errs := validation.FieldErrors{}
	validation.Length(errs, "name", in.Name, 2, 100)
	if errs.HasErrors() {
		return nil, errs
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.Category{Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCategoryResponse(c), nil
}

// List lista categorías con paginación y filtro por name.
func (uc *CategoryUseCase) List(q string, limit, offset int) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(q, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update renombra una categoría.
func (uc *CategoryUseCase) Update(id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Name != nil {
		errs := validation.FieldErrors{}
		validation.Length(errs, "name", *in.Name, 2, 100)
		if errs.HasErrors() {
			return nil, errs
		}
		c.Name = *in.Name
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// Delete borra la categoría; sus películas caen en cascada por la FK.
func (uc *CategoryUseCase) Delete(id int64) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
