package usecase

import (
	"time"

	"github.com/jhoicas/turavia-api/internal/application/dto"
	"github.com/jhoicas/turavia-api/internal/domain"
	"github.com/jhoicas/turavia-api/internal/domain/entity"
	"github.com/jhoicas/turavia-api/internal/domain/repository"
	"github.com/jhoicas/turavia-api/internal/domain/validation"
)

// ReviewUseCase casos de uso para reseñas de películas.
type ReviewUseCase struct {
	repo   repository.ReviewRepository
	movies repository.MovieRepository
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(repo repository.ReviewRepository, movies repository.MovieRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, movies: movies}
}

// Create valida y persiste una reseña del usuario autenticado.
func (uc *ReviewUseCase) Create(userID, movieID int64, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	errs := validation.FieldErrors{}
	if in.Rating < 0 || in.Rating > 5 {
		errs.Add("rating", "debe estar entre 0 y 5")
	}
	if errs.HasErrors() {
		return nil, errs
	}
	movie, err := uc.movies.GetByID(movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	r := &entity.Review{
		UserID:    userID,
		MovieID:   movieID,
		Rating:    uint8(in.Rating),
		Review:    in.Review,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	return toReviewResponse(r), nil
}

// ListByMovie lista reseñas de una película.
func (uc *ReviewUseCase) ListByMovie(movieID int64, limit, offset int) (*dto.ReviewListResponse, error) {
	list, err := uc.repo.ListByMovie(movieID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReviewResponse(r))
	}
	return &dto.ReviewListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete borra una reseña. Irreversible.
func (uc *ReviewUseCase) Delete(id int64) error {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toReviewResponse(r *entity.Review) *dto.ReviewResponse {
	if r == nil {
		return nil
	}
	return &dto.ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		MovieID:   r.MovieID,
		Rating:    r.Rating,
		Review:    r.Review,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
