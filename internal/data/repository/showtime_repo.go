package repository

import (
	"context"
	"fmt"
	"time"

	"movie-storefront/internal/data/entity"
	"movie-storefront/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID, date *time.Time) ([]*entity.Showtime, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (id, movie_id, theater_id, show_date, start_time, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.TheaterID,
		showtime.ShowDate,
		showtime.StartTime,
		showtime.Price,
		showtime.CreatedAt,
		showtime.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", showtime.MovieID.String()),
		)
		return fmt.Errorf("failed to create showtime: %w", err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, theater_id, show_date, start_time, price, created_at, updated_at
		FROM showtimes
		WHERE id = $1 AND deleted_at IS NULL
	`

	var showtime entity.Showtime
	err := r.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.TheaterID,
		&showtime.ShowDate,
		&showtime.StartTime,
		&showtime.Price,
		&showtime.CreatedAt,
		&showtime.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find showtime: %w", err)
	}

	return &showtime, nil
}

func (r *showtimeRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID, date *time.Time) ([]*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, theater_id, show_date, start_time, price, created_at, updated_at
		FROM showtimes
		WHERE movie_id = $1 AND deleted_at IS NULL
	`
	args := []any{movieID}

	if date != nil {
		query += " AND show_date = $2"
		args = append(args, *date)
	}

	query += " ORDER BY show_date, start_time"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find showtimes by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("failed to find showtimes: %w", err)
	}
	defer rows.Close()

	var showtimes []*entity.Showtime
	for rows.Next() {
		var showtime entity.Showtime
		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.TheaterID,
			&showtime.ShowDate,
			&showtime.StartTime,
			&showtime.Price,
			&showtime.CreatedAt,
			&showtime.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan showtime: %w", err)
		}
		showtimes = append(showtimes, &showtime)
	}

	return showtimes, nil
}

func (r *showtimeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE showtimes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete showtime",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return fmt.Errorf("failed to delete showtime: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime not found or already deleted")
	}

	return nil
}
