package adaptor

import (
	"movie-storefront/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Movie    *MovieHandler
	Theater  *TheaterHandler
	Showtime *ShowtimeHandler
	Booking  *BookingHandler
	Article  *ArticleHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Movie:    NewMovieHandler(service.Movie, log),
		Theater:  NewTheaterHandler(service.Theater, log),
		Showtime: NewShowtimeHandler(service.Showtime, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Article:  NewArticleHandler(service.Article, log),
	}
}
