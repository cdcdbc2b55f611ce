package usecase

import (
	"time"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/application/ports"
	"github.com/jhoicas/turavia-api/internal/domain"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
	"github.com/jhoicas/turavia-api/internal/domain/repository"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
)

// MovieUseCase casos de uso CRUD + moderación para la cartelera.
type MovieUseCase struct {
	repo       repository.MovieRepository
	categories repository.CategoryRepository
	storage    ports.ImageStorage
}

// NewMovieUseCase construye el caso de uso.
func NewMovieUseCase(repo repository.MovieRepository, categories repository.CategoryRepository, storage ports.ImageStorage) *MovieUseCase {
	return &MovieUseCase{repo: repo, categories: categories, storage: storage}
}

func validateMovieFields(m *entity.Movie) validation.FieldErrors {
	errs := validation.FieldErrors{}
	validation.Length(errs, "title", m.Title, 3, 255)
	validation.MinLength(errs, "description", m.Description, 10)
	validation.Rating(errs, "rating", m.Rating)
	validation.MinInt(errs, "popularity", m.Popularity, 0)
	if m.Duration != nil {
		validation.MinInt(errs, "duration", *m.Duration, 1)
	}
	return errs
}

// Create valida, verifica la categoría y persiste la película con su póster.
func (uc *MovieUseCase) Create(in dto.CreateMovieRequest) (*dto.MovieResponse, error) {
	now := time.Now()
	m := &entity.Movie{
		Title:       in.Title,
		CategoryID:  in.CategoryID,
		Genre:       in.Genre,
		Description: in.Description,
		ReleaseDate: in.ReleaseDate,
		Rating:      in.Rating,
		TrailerURL:  in.TrailerURL,
		Popularity:  in.Popularity,
		Duration:    in.Duration,
		Language:    in.Language,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	errs := validateMovieFields(m)
	if in.Poster == nil {
		errs.Add("poster", "el póster es requerido")
	}
	category, err := uc.categories.GetByID(m.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		errs.Add("category_id", "la categoría no existe")
	}
	if errs.HasErrors() {
		return nil, errs
	}

	posterURL, err := uc.storage.Save("movies", in.Poster)
	if err != nil {
		return nil, err
	}
	m.PosterURL = posterURL

	if err := uc.repo.Create(m); err != nil {
		_ = uc.storage.Delete(posterURL)
		return nil, err
	}
	return toMovieResponse(m), nil
}

// GetByID obtiene una película por ID.
func (uc *MovieUseCase) GetByID(id int64) (*dto.MovieResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return toMovieResponse(m), nil
}

// List lista películas con paginación y filtro por title/genre.
func (uc *MovieUseCase) List(q string, limit, offset int) (*dto.MovieListResponse, error) {
	list, err := uc.repo.List(q, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovieResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovieResponse(m))
	}
	return &dto.MovieListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica solo los campos presentes y revalida el resultado fusionado.
func (uc *MovieUseCase) Update(id int64, in dto.UpdateMovieRequest) (*dto.MovieResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}

	if in.Title != nil {
		m.Title = *in.Title
	}
	if in.CategoryID != nil {
		m.CategoryID = *in.CategoryID
	}
	if in.Genre != nil {
		m.Genre = *in.Genre
	}
	if in.Description != nil {
		m.Description = *in.Description
	}
	if in.ReleaseDate != nil {
		m.ReleaseDate = *in.ReleaseDate
	}
	if in.Rating != nil {
		m.Rating = *in.Rating
	}
	if in.TrailerURL != nil {
		m.TrailerURL = *in.TrailerURL
	}
	if in.Popularity != nil {
		m.Popularity = *in.Popularity
	}
	if in.Duration != nil {
		m.Duration = in.Duration
	}
	if in.Language != nil {
		m.Language = *in.Language
	}

	errs := validateMovieFields(m)
	if in.CategoryID != nil {
		category, cerr := uc.categories.GetByID(m.CategoryID)
		if cerr != nil {
			return nil, cerr
		}
		if category == nil {
			errs.Add("category_id", "la categoría no existe")
		}
	}
	if errs.HasErrors() {
		return nil, errs
	}

	oldPoster := ""
	if in.Poster != nil {
		posterURL, serr := uc.storage.Save("movies", in.Poster)
		if serr != nil {
			return nil, serr
		}
		oldPoster = m.PosterURL
		m.PosterURL = posterURL
	}

	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		if in.Poster != nil {
			_ = uc.storage.Delete(m.PosterURL)
		}
		return nil, err
	}
	if oldPoster != "" {
		_ = uc.storage.Delete(oldPoster)
	}
	return toMovieResponse(m), nil
}

// ToggleFeatured alterna is_featured y devuelve la fila resultante.
func (uc *MovieUseCase) ToggleFeatured(id int64) (*dto.MovieResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	m.IsFeatured = !m.IsFeatured
	if err := uc.repo.SetFeatured(id, m.IsFeatured); err != nil {
		return nil, err
	}
	return toMovieResponse(m), nil
}

// Delete borra la película y su póster; las reseñas caen en cascada.
func (uc *MovieUseCase) Delete(id int64) error {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	if m.PosterURL != "" {
		_ = uc.storage.Delete(m.PosterURL)
	}
	return nil
}

func toMovieResponse(m *entity.Movie) *dto.MovieResponse {
	if m == nil {
		return nil
	}
	return &dto.MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		CategoryID:  m.CategoryID,
		Genre:       m.Genre,
		Description: m.Description,
		ReleaseDate: m.ReleaseDate,
		Rating:      m.Rating,
		PosterURL:   m.PosterURL,
		TrailerURL:  m.TrailerURL,
		Popularity:  m.Popularity,
		Duration:    m.Duration,
		Language:    m.Language,
		IsFeatured:  m.IsFeatured,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
