package wire

import (
	"movie-storefront/internal/adaptor"
	"movie-storefront/internal/data/repository"
	"movie-storefront/pkg/middleware"
	"movie-storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireArticle(
	r chi.Router,
	articleHandler *adaptor.ArticleHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/articles", articleHandler.GetArticles)
	r.Get("/api/articles/{id}", articleHandler.GetArticleByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/articles", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", articleHandler.CreateArticle)
	})
}
