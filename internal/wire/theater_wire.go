package wire

import (
	"movie-storefront/internal/adaptor"
	"movie-storefront/internal/data/repository"
	"movie-storefront/pkg/middleware"
	"movie-storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTheater(
	r chi.Router,
	theaterHandler *adaptor.TheaterHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/theaters", theaterHandler.GetTheaters)
	r.Get("/api/theaters/{id}", theaterHandler.GetTheaterByID)

	// Seat map per showtime; seats booked for other showtimes stay available
	r.Get("/api/showtimes/{id}/seats", theaterHandler.GetSeatMap)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/theaters", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", theaterHandler.CreateTheater)
	})
}
