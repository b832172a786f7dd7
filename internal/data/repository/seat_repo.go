package repository

import (
	"context"
	"fmt"

	"movie-storefront/internal/data/entity"
	"movie-storefront/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeatRepository interface {
	CreateBatch(ctx context.Context, seats []*entity.Seat) error
	FindByTheaterID(ctx context.Context, theaterID uuid.UUID) ([]*entity.Seat, error)
	FindByIDs(ctx context.Context, seatIDs []uuid.UUID) ([]*entity.Seat, error)
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	// Build batch insert
	query := `INSERT INTO seats (id, theater_id, seat_row, seat_number, tier, price, created_at, updated_at) VALUES `
	args := []any{}

	for i, seat := range seats {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			i*8+1, i*8+2, i*8+3, i*8+4, i*8+5, i*8+6, i*8+7, i*8+8)

		args = append(args,
			seat.ID,
			seat.TheaterID,
			seat.SeatRow,
			seat.SeatNumber,
			seat.Tier,
			seat.Price,
			seat.CreatedAt,
			seat.UpdatedAt,
		)
	}

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch seats",
			zap.Error(err),
			zap.Int("count", len(seats)),
		)
		return fmt.Errorf("failed to create batch seats: %w", err)
	}

	return nil
}

func (r *seatRepository) FindByTheaterID(ctx context.Context, theaterID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT id, theater_id, seat_row, seat_number, tier, price, created_at, updated_at
		FROM seats
		WHERE theater_id = $1 AND deleted_at IS NULL
		ORDER BY seat_row, seat_number
	`

	rows, err := r.db.Query(ctx, query, theaterID)
	if err != nil {
		r.log.Error("Failed to find seats by theater ID",
			zap.Error(err),
			zap.String("theater_id", theaterID.String()),
		)
		return nil, fmt.Errorf("failed to find seats: %w", err)
	}
	defer rows.Close()

	return scanSeats(rows, r.log)
}

func (r *seatRepository) FindByIDs(ctx context.Context, seatIDs []uuid.UUID) ([]*entity.Seat, error) {
	if len(seatIDs) == 0 {
		return []*entity.Seat{}, nil
	}

	query := `
		SELECT id, theater_id, seat_row, seat_number, tier, price, created_at, updated_at
		FROM seats
		WHERE id = ANY($1) AND deleted_at IS NULL
		ORDER BY seat_row, seat_number
	`

	rows, err := r.db.Query(ctx, query, seatIDs)
	if err != nil {
		r.log.Error("Failed to find seats by IDs",
			zap.Error(err),
			zap.Int("seat_count", len(seatIDs)),
		)
		return nil, fmt.Errorf("failed to find seats: %w", err)
	}
	defer rows.Close()

	return scanSeats(rows, r.log)
}

func scanSeats(rows pgx.Rows, log *zap.Logger) ([]*entity.Seat, error) {
	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.TheaterID,
			&seat.SeatRow,
			&seat.SeatNumber,
			&seat.Tier,
			&seat.Price,
			&seat.CreatedAt,
			&seat.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan seat: %w", err)
		}
		seats = append(seats, &seat)
	}

	return seats, nil
}
