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

type ShowtimeService interface {
	GetShowtimesByMovie(ctx context.Context, movieID uuid.UUID, date *time.Time) ([]response.ShowtimeDetailResponse, error)
	GetShowtimeByID(ctx context.Context, id uuid.UUID) (*response.ShowtimeDetailResponse, error)
	CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
	DeleteShowtime(ctx context.Context, id uuid.UUID) error
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log,
	}
}

func (s *showtimeService) GetShowtimesByMovie(ctx context.Context, movieID uuid.UUID, date *time.Time) ([]response.ShowtimeDetailResponse, error) {
	showtimes, err := s.repo.Showtime.FindByMovieID(ctx, movieID, date)
	if err != nil {
		s.log.Error("Failed to get showtimes", zap.Error(err), zap.String("movie_id", movieID.String()))
		return nil, fmt.Errorf("failed to get showtimes")
	}

	items := make([]response.ShowtimeDetailResponse, 0, len(showtimes))
	for _, showtime := range showtimes {
		detail, err := s.toDetail(ctx, showtime)
		if err != nil {
			return nil, err
		}
		items = append(items, *detail)
	}

	return items, nil
}

func (s *showtimeService) GetShowtimeByID(ctx context.Context, id uuid.UUID) (*response.ShowtimeDetailResponse, error) {
	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find showtime", zap.Error(err), zap.String("showtime_id", id.String()))
		return nil, fmt.Errorf("failed to find showtime")
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime not found")
	}

	return s.toDetail(ctx, showtime)
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie id")
	}
	theaterID, err := uuid.Parse(req.TheaterID)
	if err != nil {
		return nil, fmt.Errorf("invalid theater id")
	}
	showDate, err := time.Parse("2006-01-02", req.ShowDate)
	if err != nil {
		return nil, fmt.Errorf("invalid show date")
	}

	// 2. Cek movie & theater ada
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to find movie", zap.Error(err), zap.String("movie_id", movieID.String()))
		return nil, fmt.Errorf("failed to find movie")
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	theater, err := s.repo.Theater.FindByID(ctx, theaterID)
	if err != nil {
		s.log.Error("Failed to find theater", zap.Error(err), zap.String("theater_id", theaterID.String()))
		return nil, fmt.Errorf("failed to find theater")
	}
	if theater == nil {
		return nil, fmt.Errorf("theater not found")
	}

	// 3. Create
	now := time.Now()
	showtime := &entity.Showtime{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:   movieID,
		TheaterID: theaterID,
		ShowDate:  showDate,
		StartTime: req.StartTime,
		Price:     req.Price,
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		s.log.Error("Failed to create showtime", zap.Error(err))
		return nil, fmt.Errorf("failed to create showtime")
	}

	s.log.Info("Showtime created",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("movie_id", movieID.String()),
		zap.String("start_time", showtime.StartTime))

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) DeleteShowtime(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Showtime.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete showtime", zap.Error(err), zap.String("showtime_id", id.String()))
		return fmt.Errorf("failed to delete showtime")
	}

	s.log.Info("Showtime deleted", zap.String("showtime_id", id.String()))
	return nil
}

func (s *showtimeService) toDetail(ctx context.Context, showtime *entity.Showtime) (*response.ShowtimeDetailResponse, error) {
	var movieTitle, theaterName string

	movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID)
	if err != nil {
		s.log.Error("Failed to find movie", zap.Error(err), zap.String("movie_id", showtime.MovieID.String()))
		return nil, fmt.Errorf("failed to find movie")
	}
	if movie != nil {
		movieTitle = movie.Title
	}

	theater, err := s.repo.Theater.FindByID(ctx, showtime.TheaterID)
	if err != nil {
		s.log.Error("Failed to find theater", zap.Error(err), zap.String("theater_id", showtime.TheaterID.String()))
		return nil, fmt.Errorf("failed to find theater")
	}
	if theater != nil {
		theaterName = theater.Name
	}

	detail := response.ShowtimeToDetailResponse(showtime, movieTitle, theaterName)
	return &detail, nil
}
