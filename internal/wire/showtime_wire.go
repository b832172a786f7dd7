package wire

import (
	"movie-storefront/internal/adaptor"
	"movie-storefront/internal/data/repository"
	"movie-storefront/pkg/middleware"
	"movie-storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShowtime(
	r chi.Router,
	showtimeHandler *adaptor.ShowtimeHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/movies/{id}/showtimes", showtimeHandler.GetShowtimesByMovie)
	r.Get("/api/showtimes/{id}", showtimeHandler.GetShowtimeByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/showtimes", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", showtimeHandler.CreateShowtime)
		r.Delete("/{id}", showtimeHandler.DeleteShowtime)
	})
}
