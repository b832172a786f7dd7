package response

import (
	"time"

	"movie-storefront/internal/data/entity"
)

type ArticleResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     *string   `json:"excerpt,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
}

type ArticleDetailResponse struct {
	ArticleResponse
	Content string `json:"content"`
}

// Helper converters
func ArticleToResponse(article *entity.Article) ArticleResponse {
	return ArticleResponse{
		ID:          article.ID.String(),
		Title:       article.Title,
		Excerpt:     article.Excerpt,
		ImageURL:    article.ImageURL,
		Author:      article.Author,
		PublishedAt: article.PublishedAt,
	}
}

func ArticleToDetailResponse(article *entity.Article) ArticleDetailResponse {
	return ArticleDetailResponse{
		ArticleResponse: ArticleToResponse(article),
		Content:         article.Content,
	}
}
