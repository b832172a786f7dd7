package wire

import (
	"movie-storefront/internal/adaptor"
	"movie-storefront/internal/data/repository"
	"movie-storefront/pkg/middleware"
	"movie-storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Price preview; no account needed to see the order summary
	r.Post("/api/bookings/quote", bookingHandler.Quote)

	// Gateway redirect target
	r.Get("/api/payment/return", bookingHandler.PaymentReturn)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// Booking drafts (server-side seat selection state)
		r.Post("/api/bookings/drafts", bookingHandler.CreateDraft)
		r.Get("/api/bookings/drafts/{id}", bookingHandler.GetDraft)

		// Checkout & history
		r.Post("/api/bookings", bookingHandler.CreateBooking)
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)
		r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/{id}", bookingHandler.GetBookingAdmin)
		r.Put("/{id}/cancel", bookingHandler.CancelBookingAdmin)
	})
}
