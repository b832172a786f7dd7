package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"movie-storefront/internal/dto/request"
	"movie-storefront/internal/usecase"
	"movie-storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// GetShowtimesByMovie handles GET /api/movies/{id}/showtimes (public)
func (h *ShowtimeHandler) GetShowtimesByMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	// Optional ?date=YYYY-MM-DD filter
	var date *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed := utils.ParseDate(raw)
		if parsed.IsZero() {
			utils.ResponseBadRequest(w, "Invalid date format, expected YYYY-MM-DD", nil)
			return
		}
		date = &parsed
	}

	showtimes, err := h.service.GetShowtimesByMovie(r.Context(), movieID, date)
	if err != nil {
		h.handleServiceError(w, err, "get showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// GetShowtimeByID handles GET /api/showtimes/{id} (public)
func (h *ShowtimeHandler) GetShowtimeByID(w http.ResponseWriter, r *http.Request) {
	showtimeID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid showtime ID", nil)
		return
	}

	showtime, err := h.service.GetShowtimeByID(r.Context(), showtimeID)
	if err != nil {
		h.handleServiceError(w, err, "get showtime by ID")
		return
	}

	utils.ResponseSuccess(w, "success", showtime)
}

// ==================== ADMIN METHODS ====================

// CreateShowtime handles POST /api/admin/showtimes (admin only)
func (h *ShowtimeHandler) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var req request.ShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	showtime, err := h.service.CreateShowtime(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create showtime")
		return
	}

	utils.ResponseCreated(w, "success", showtime)
}

// DeleteShowtime handles DELETE /api/admin/showtimes/{id} (admin only)
func (h *ShowtimeHandler) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid showtime ID", nil)
		return
	}

	if err := h.service.DeleteShowtime(r.Context(), showtimeID); err != nil {
		h.handleServiceError(w, err, "delete showtime")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError handles errors untuk showtime operations
func (h *ShowtimeHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
