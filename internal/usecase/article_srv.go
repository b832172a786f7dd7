package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-storefront/internal/data/entity"
	"movie-storefront/internal/data/repository"
	"movie-storefront/internal/dto/request"
	"movie-storefront/internal/dto/response"
	"movie-storefront/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ArticleService interface {
	GetArticles(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.ArticleResponse], error)
	GetArticleByID(ctx context.Context, id uuid.UUID) (*response.ArticleDetailResponse, error)
	CreateArticle(ctx context.Context, req *request.ArticleRequest) (*response.ArticleDetailResponse, error)
}

type articleService struct {
	articleRepo repository.ArticleRepository
	log         *zap.Logger
}

func NewArticleService(articleRepo repository.ArticleRepository, log *zap.Logger) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		log:         log,
	}
}

func (s *articleService) GetArticles(ctx context.Context, page, perPage int) (*response.PaginatedResponse[response.ArticleResponse], error) {
	limit := perPage
	offset := utils.CalculateOffset(page, perPage)

	articles, err := s.articleRepo.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get articles", zap.Error(err))
		return nil, fmt.Errorf("failed to get articles")
	}

	total, err := s.articleRepo.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count articles", zap.Error(err))
		return nil, fmt.Errorf("failed to get articles")
	}

	items := make([]response.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		items = append(items, response.ArticleToResponse(article))
	}

	return response.NewPaginatedResponse(items, page, perPage, total), nil
}

func (s *articleService) GetArticleByID(ctx context.Context, id uuid.UUID) (*response.ArticleDetailResponse, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find article", zap.Error(err), zap.String("article_id", id.String()))
		return nil, fmt.Errorf("failed to find article")
	}
	if article == nil {
		return nil, fmt.Errorf("article not found")
	}

	resp := response.ArticleToDetailResponse(article)
	return &resp, nil
}

func (s *articleService) CreateArticle(ctx context.Context, req *request.ArticleRequest) (*response.ArticleDetailResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create article validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Create
	now := time.Now()
	article := &entity.Article{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Author:      req.Author,
		PublishedAt: now,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		s.log.Error("Failed to create article", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to create article")
	}

	s.log.Info("Article created",
		zap.String("article_id", article.ID.String()),
		zap.String("title", article.Title))

	resp := response.ArticleToDetailResponse(article)
	return &resp, nil
}
