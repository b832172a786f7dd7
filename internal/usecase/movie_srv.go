package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-storefront/internal/data/entity"
	"movie-storefront/internal/data/repository"
	"movie-storefront/internal/dto/request"
	"movie-storefront/internal/dto/response"
	"movie-storefront/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, page, perPage int, releaseStatus *string, search string) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, id uuid.UUID) (*response.MovieDetailResponse, error)
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error)
	UpdateMovie(ctx context.Context, id uuid.UUID, req *request.MovieUpdateRequest) (*response.MovieDetailResponse, error)
	DeleteMovie(ctx context.Context, id uuid.UUID) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log,
	}
}

func (s *movieService) GetMovies(ctx context.Context, page, perPage int, releaseStatus *string, search string) (*response.PaginatedResponse[response.MovieResponse], error) {
	limit := perPage
	offset := utils.CalculateOffset(page, perPage)

	movies, err := s.repo.Movie.FindAll(ctx, limit, offset, releaseStatus, search)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("failed to get movies")
	}

	total, err := s.repo.Movie.CountAll(ctx, releaseStatus, search)
	if err != nil {
		s.log.Error("Failed to count movies", zap.Error(err))
		return nil, fmt.Errorf("failed to get movies")
	}

	items := make([]response.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		genres, err := s.genreNames(ctx, movie.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, response.MovieToResponse(movie, genres))
	}

	return response.NewPaginatedResponse(items, page, perPage, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id uuid.UUID) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find movie", zap.Error(err), zap.String("movie_id", id.String()))
		return nil, fmt.Errorf("failed to find movie")
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	genres, err := s.genreNames(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	resp := response.MovieToDetailResponse(movie, genres)
	return &resp, nil
}

func (s *movieService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get genres", zap.Error(err))
		return nil, fmt.Errorf("failed to get genres")
	}

	items := make([]response.GenreResponse, 0, len(genres))
	for _, genre := range genres {
		items = append(items, response.GenreToResponse(genre))
	}

	return items, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("invalid release date")
	}

	// 2. Create entity
	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:             req.Title,
		Synopsis:          req.Synopsis,
		PosterURL:         req.PosterURL,
		BackdropURL:       req.BackdropURL,
		Rating:            req.Rating,
		ReleaseDate:       releaseDate,
		DurationInMinutes: req.DurationInMinutes,
		ReleaseStatus:     entity.ReleaseStatus(req.ReleaseStatus),
		Director:          req.Director,
		Actors:            req.Actors,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to create movie")
	}

	// 3. Link genres
	if err := s.replaceGenres(ctx, movie.ID, req.GenreIDs); err != nil {
		return nil, err
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title))

	return s.GetMovieByID(ctx, movie.ID)
}

func (s *movieService) UpdateMovie(ctx context.Context, id uuid.UUID, req *request.MovieUpdateRequest) (*response.MovieDetailResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find existing
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find movie", zap.Error(err), zap.String("movie_id", id.String()))
		return nil, fmt.Errorf("failed to find movie")
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	// 3. Apply partial update
	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Synopsis != nil {
		movie.Synopsis = req.Synopsis
	}
	if req.PosterURL != nil {
		movie.PosterURL = req.PosterURL
	}
	if req.BackdropURL != nil {
		movie.BackdropURL = req.BackdropURL
	}
	if req.Rating != nil {
		movie.Rating = *req.Rating
	}
	if req.ReleaseDate != nil {
		releaseDate, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("invalid release date")
		}
		movie.ReleaseDate = releaseDate
	}
	if req.DurationInMinutes != nil {
		movie.DurationInMinutes = *req.DurationInMinutes
	}
	if req.ReleaseStatus != nil {
		movie.ReleaseStatus = entity.ReleaseStatus(*req.ReleaseStatus)
	}
	if req.Director != nil {
		movie.Director = req.Director
	}
	if req.Actors != nil {
		movie.Actors = req.Actors
	}

	movie.UpdatedAt = time.Now()
	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", id.String()))
		return nil, fmt.Errorf("failed to update movie")
	}

	// 4. Replace genres kalau dikirim
	if req.GenreIDs != nil {
		if err := s.replaceGenres(ctx, movie.ID, req.GenreIDs); err != nil {
			return nil, err
		}
	}

	s.log.Info("Movie updated", zap.String("movie_id", movie.ID.String()))

	return s.GetMovieByID(ctx, movie.ID)
}

func (s *movieService) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", id.String()))
		return fmt.Errorf("failed to delete movie")
	}

	s.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}

func (s *movieService) genreNames(ctx context.Context, movieID uuid.UUID) ([]string, error) {
	genres, err := s.repo.Genre.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to get movie genres", zap.Error(err), zap.String("movie_id", movieID.String()))
		return nil, fmt.Errorf("failed to get movie genres")
	}

	names := make([]string, 0, len(genres))
	for _, genre := range genres {
		names = append(names, genre.Name)
	}

	return names, nil
}

func (s *movieService) replaceGenres(ctx context.Context, movieID uuid.UUID, genreIDs []string) error {
	ids := make([]uuid.UUID, 0, len(genreIDs))
	for _, raw := range genreIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid genre id %q", raw)
		}
		ids = append(ids, id)
	}

	if err := s.repo.Genre.ReplaceForMovie(ctx, movieID, ids); err != nil {
		s.log.Error("Failed to set movie genres", zap.Error(err), zap.String("movie_id", movieID.String()))
		return fmt.Errorf("failed to set movie genres")
	}

	return nil
}
