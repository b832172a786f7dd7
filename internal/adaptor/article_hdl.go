package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"movie-storefront/internal/dto/request"
	"movie-storefront/internal/usecase"
	"movie-storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ArticleHandler struct {
	service usecase.ArticleService
	log     *zap.Logger
}

func NewArticleHandler(service usecase.ArticleService, log *zap.Logger) *ArticleHandler {
	return &ArticleHandler{
		service: service,
		log:     log.With(zap.String("handler", "article")),
	}
}

// GetArticles handles GET /api/articles (public)
func (h *ArticleHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)

	articles, err := h.service.GetArticles(r.Context(), page, perPage)
	if err != nil {
		h.handleServiceError(w, err, "get articles")
		return
	}

	utils.ResponseSuccess(w, "success", articles)
}

// GetArticleByID handles GET /api/articles/{id} (public)
func (h *ArticleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	articleID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid article ID", nil)
		return
	}

	article, err := h.service.GetArticleByID(r.Context(), articleID)
	if err != nil {
		h.handleServiceError(w, err, "get article by ID")
		return
	}

	utils.ResponseSuccess(w, "success", article)
}

// CreateArticle handles POST /api/admin/articles (admin only)
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req request.ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	article, err := h.service.CreateArticle(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create article")
		return
	}

	utils.ResponseCreated(w, "success", article)
}

// handleServiceError handles errors untuk article operations
func (h *ArticleHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"), strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
