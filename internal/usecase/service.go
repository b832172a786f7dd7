package usecase

import (
	"movie-storefront/internal/data/repository"
	"movie-storefront/internal/queue"
	"movie-storefront/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Movie    MovieService
	Theater  TheaterService
	Showtime ShowtimeService
	Booking  BookingService
	Article  ArticleService
}

func NewService(repo *repository.Repository, config *utils.Config, publisher *queue.Publisher, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo.User, log),
		Movie:    NewMovieService(repo, log),
		Theater:  NewTheaterService(repo, log),
		Showtime: NewShowtimeService(repo, log),
		Booking:  NewBookingService(repo, config, publisher, log),
		Article:  NewArticleService(repo.Article, log),
	}
}
