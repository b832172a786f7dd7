package repository

import (
	"context"
	"fmt"

	"movie-storefront/internal/data/entity"
	"movie-storefront/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GenreRepository interface {
	FindAll(ctx context.Context) ([]*entity.Genre, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Genre, error)

	// Movie-genre links
	ReplaceForMovie(ctx context.Context, movieID uuid.UUID, genreIDs []uuid.UUID) error
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	query := `SELECT id, name, created_at FROM genres ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find genres", zap.Error(err))
		return nil, fmt.Errorf("failed to find genres: %w", err)
	}
	defer rows.Close()

	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.CreatedAt); err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, &genre)
	}

	return genres, nil
}

func (r *genreRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Genre, error) {
	query := `
		SELECT g.id, g.name, g.created_at
		FROM genres g
		INNER JOIN movie_genres mg ON mg.genre_id = g.id
		WHERE mg.movie_id = $1
		ORDER BY g.name
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find genres by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("failed to find genres: %w", err)
	}
	defer rows.Close()

	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.CreatedAt); err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, &genre)
	}

	return genres, nil
}

func (r *genreRepository) ReplaceForMovie(ctx context.Context, movieID uuid.UUID, genreIDs []uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM movie_genres WHERE movie_id = $1`, movieID); err != nil {
		r.log.Error("Failed to clear movie genres",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("failed to clear movie genres: %w", err)
	}

	if len(genreIDs) == 0 {
		return nil
	}

	// Build batch insert
	query := `INSERT INTO movie_genres (id, movie_id, genre_id, created_at) VALUES `
	args := []any{}

	for i, genreID := range genreIDs {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, NOW())", i*3+1, i*3+2, i*3+3)
		args = append(args, uuid.New(), movieID, genreID)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to link movie genres",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.Int("count", len(genreIDs)),
		)
		return fmt.Errorf("failed to link movie genres: %w", err)
	}

	return nil
}
