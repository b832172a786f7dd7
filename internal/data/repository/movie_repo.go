package repository

import (
	"context"
	"fmt"
	"strings"

	"movie-storefront/internal/data/entity"
	"movie-storefront/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	// CRUD Movie
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, limit, offset int, releaseStatus *string, search string) ([]*entity.Movie, error)
	CountAll(ctx context.Context, releaseStatus *string, search string) (int64, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, synopsis, poster_url, backdrop_url, rating, release_date,
	       duration_in_minutes, release_status, director, actors, created_at, updated_at`

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, synopsis, poster_url, backdrop_url, rating,
		                   release_date, duration_in_minutes, release_status,
		                   director, actors, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Synopsis,
		movie.PosterURL,
		movie.BackdropURL,
		movie.Rating,
		movie.ReleaseDate,
		movie.DurationInMinutes,
		movie.ReleaseStatus,
		movie.Director,
		movie.Actors,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE id = $1 AND deleted_at IS NULL
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Synopsis,
		&movie.PosterURL,
		&movie.BackdropURL,
		&movie.Rating,
		&movie.ReleaseDate,
		&movie.DurationInMinutes,
		&movie.ReleaseStatus,
		&movie.Director,
		&movie.Actors,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, limit, offset int, releaseStatus *string, search string) ([]*entity.Movie, error) {
	query := `
		SELECT ` + movieColumns + `
		FROM movies
		WHERE deleted_at IS NULL
	`
	args := []any{}
	argPos := 1

	if releaseStatus != nil && *releaseStatus != "" {
		query += fmt.Sprintf(" AND release_status = $%d", argPos)
		args = append(args, *releaseStatus)
		argPos++
	}

	if search != "" {
		query += fmt.Sprintf(" AND LOWER(title) LIKE $%d", argPos)
		args = append(args, "%"+strings.ToLower(search)+"%")
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY release_date DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find movies", zap.Error(err))
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Synopsis,
			&movie.PosterURL,
			&movie.BackdropURL,
			&movie.Rating,
			&movie.ReleaseDate,
			&movie.DurationInMinutes,
			&movie.ReleaseStatus,
			&movie.Director,
			&movie.Actors,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, &movie)
	}

	return movies, nil
}

func (r *movieRepository) CountAll(ctx context.Context, releaseStatus *string, search string) (int64, error) {
	query := `SELECT COUNT(*) FROM movies WHERE deleted_at IS NULL`
	args := []any{}
	argPos := 1

	if releaseStatus != nil && *releaseStatus != "" {
		query += fmt.Sprintf(" AND release_status = $%d", argPos)
		args = append(args, *releaseStatus)
		argPos++
	}

	if search != "" {
		query += fmt.Sprintf(" AND LOWER(title) LIKE $%d", argPos)
		args = append(args, "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}

	return total, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, synopsis = $3, poster_url = $4, backdrop_url = $5, rating = $6,
		    release_date = $7, duration_in_minutes = $8, release_status = $9,
		    director = $10, actors = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Synopsis,
		movie.PosterURL,
		movie.BackdropURL,
		movie.Rating,
		movie.ReleaseDate,
		movie.DurationInMinutes,
		movie.ReleaseStatus,
		movie.Director,
		movie.Actors,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("failed to update movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie not found or already deleted")
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE movies SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie not found or already deleted")
	}

	r.log.Info("Movie soft deleted", zap.String("movie_id", id.String()))
	return nil
}
