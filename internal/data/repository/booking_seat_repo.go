package repository

import (
	"context"
	"fmt"

	"movie-storefront/internal/data/entity"
	"movie-storefront/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingSeatRepository interface {
	CreateBatch(ctx context.Context, bookingSeats []*entity.BookingSeat) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingSeat, error)
	UpdateStatusByBookingID(ctx context.Context, bookingID uuid.UUID, status entity.AssignmentStatus) error
	DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error

	// Business queries
	FindAssignmentsByTheater(ctx context.Context, theaterID uuid.UUID) (map[uuid.UUID][]entity.SeatAssignment, error)
}

type bookingSeatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingSeatRepository(db database.PgxIface, log *zap.Logger) BookingSeatRepository {
	return &bookingSeatRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_seat")),
	}
}

func (r *bookingSeatRepository) CreateBatch(ctx context.Context, bookingSeats []*entity.BookingSeat) error {
	if len(bookingSeats) == 0 {
		return nil
	}

	// Build batch insert
	query := `INSERT INTO booking_seats (id, booking_id, seat_id, status, created_at) VALUES `
	args := []any{}

	for i, bs := range bookingSeats {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)",
			i*5+1, i*5+2, i*5+3, i*5+4, i*5+5)

		args = append(args,
			bs.ID,
			bs.BookingID,
			bs.SeatID,
			bs.Status,
			bs.CreatedAt,
		)
	}

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch booking seats",
			zap.Error(err),
			zap.Int("count", len(bookingSeats)),
		)
		return fmt.Errorf("failed to create booking seats: %w", err)
	}

	return nil
}

func (r *bookingSeatRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingSeat, error) {
	query := `
		SELECT id, booking_id, seat_id, status, created_at
		FROM booking_seats
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking seats by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find booking seats by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var bookingSeats []*entity.BookingSeat
	for rows.Next() {
		var bs entity.BookingSeat
		err := rows.Scan(
			&bs.ID,
			&bs.BookingID,
			&bs.SeatID,
			&bs.Status,
			&bs.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking seat row", zap.Error(err))
			return nil, fmt.Errorf("scan booking seat row: %w", err)
		}
		bookingSeats = append(bookingSeats, &bs)
	}

	return bookingSeats, nil
}

func (r *bookingSeatRepository) UpdateStatusByBookingID(ctx context.Context, bookingID uuid.UUID, status entity.AssignmentStatus) error {
	query := `UPDATE booking_seats SET status = $2 WHERE booking_id = $1`

	_, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking seat status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking seats for booking %s: %w", bookingID.String(), err)
	}

	return nil
}

func (r *bookingSeatRepository) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	query := `DELETE FROM booking_seats WHERE booking_id = $1`

	_, err := r.db.Exec(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to delete booking seats by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("delete booking seats by booking ID %s: %w", bookingID.String(), err)
	}

	return nil
}

// FindAssignmentsByTheater loads the full assignment history for every seat
// in a theater, joined with the parent booking so callers can filter per
// showtime. Cancelled bookings surface with their assignment status so the
// availability resolver can skip them.
func (r *bookingSeatRepository) FindAssignmentsByTheater(ctx context.Context, theaterID uuid.UUID) (map[uuid.UUID][]entity.SeatAssignment, error) {
	query := `
		SELECT bs.id, bs.seat_id, bs.status, b.id, b.showtime_id, b.booking_code
		FROM booking_seats bs
		INNER JOIN bookings b ON bs.booking_id = b.id
		INNER JOIN seats s ON bs.seat_id = s.id
		WHERE s.theater_id = $1 AND b.deleted_at IS NULL
	`

	rows, err := r.db.Query(ctx, query, theaterID)
	if err != nil {
		r.log.Error("Failed to find seat assignments by theater",
			zap.Error(err),
			zap.String("theater_id", theaterID.String()),
		)
		return nil, fmt.Errorf("find seat assignments for theater %s: %w", theaterID.String(), err)
	}
	defer rows.Close()

	assignments := make(map[uuid.UUID][]entity.SeatAssignment)
	for rows.Next() {
		var a entity.SeatAssignment
		err := rows.Scan(
			&a.ID,
			&a.SeatID,
			&a.Status,
			&a.BookingID,
			&a.ShowtimeID,
			&a.BookingCode,
		)
		if err != nil {
			r.log.Error("Failed to scan seat assignment row", zap.Error(err))
			return nil, fmt.Errorf("scan seat assignment row: %w", err)
		}
		assignments[a.SeatID] = append(assignments[a.SeatID], a)
	}

	return assignments, nil
}
