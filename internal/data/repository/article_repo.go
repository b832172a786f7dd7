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

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Article, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Article, error)
	CountAll(ctx context.Context) (int64, error)
}

type articleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewArticleRepository(db database.PgxIface, log *zap.Logger) ArticleRepository {
	return &articleRepository{
		db:  db,
		log: log.With(zap.String("repository", "article")),
	}
}

const articleColumns = `id, title, excerpt, content, image_url, author, published_at, created_at, updated_at`

func (r *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	query := `
		INSERT INTO articles (id, title, excerpt, content, image_url, author, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		article.ID,
		article.Title,
		article.Excerpt,
		article.Content,
		article.ImageURL,
		article.Author,
		article.PublishedAt,
		article.CreatedAt,
		article.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create article",
			zap.Error(err),
			zap.String("title", article.Title),
		)
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

func (r *articleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1 AND deleted_at IS NULL`

	var article entity.Article
	err := r.db.QueryRow(ctx, query, id).Scan(
		&article.ID,
		&article.Title,
		&article.Excerpt,
		&article.Content,
		&article.ImageURL,
		&article.Author,
		&article.PublishedAt,
		&article.CreatedAt,
		&article.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find article by ID",
			zap.Error(err),
			zap.String("article_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	return &article, nil
}

func (r *articleRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE deleted_at IS NULL
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find articles", zap.Error(err))
		return nil, fmt.Errorf("failed to find articles: %w", err)
	}
	defer rows.Close()

	var articles []*entity.Article
	for rows.Next() {
		var article entity.Article
		err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Excerpt,
			&article.Content,
			&article.ImageURL,
			&article.Author,
			&article.PublishedAt,
			&article.CreatedAt,
			&article.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan article row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, &article)
	}

	return articles, nil
}

func (r *articleRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM articles WHERE deleted_at IS NULL`

	var total int64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		r.log.Error("Failed to count articles", zap.Error(err))
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}

	return total, nil
}
