package repository

import (
	"movie-storefront/pkg/database"
	"movie-storefront/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Movie       MovieRepository
	Genre       GenreRepository
	Theater     TheaterRepository
	Seat        SeatRepository
	Showtime    ShowtimeRepository
	Booking     BookingRepository
	BookingSeat BookingSeatRepository
	Payment     PaymentRepository
	Draft       DraftRepository
	Article     ArticleRepository
}

// NewRepository wires semua repositories. rdb boleh nil; draft store
// degrades jadi disabled.
func NewRepository(db database.PgxIface, rdb *redis.Client, config *utils.Config, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Movie:       NewMovieRepository(db, log),
		Genre:       NewGenreRepository(db, log),
		Theater:     NewTheaterRepository(db, log),
		Seat:        NewSeatRepository(db, log),
		Showtime:    NewShowtimeRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		BookingSeat: NewBookingSeatRepository(db, log),
		Payment:     NewPaymentRepository(db, log),
		Draft:       NewDraftRepository(rdb, config.Redis, log),
		Article:     NewArticleRepository(db, log),
	}
}
