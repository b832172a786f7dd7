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

type TheaterHandler struct {
	service usecase.TheaterService
	log     *zap.Logger
}

func NewTheaterHandler(service usecase.TheaterService, log *zap.Logger) *TheaterHandler {
	return &TheaterHandler{
		service: service,
		log:     log.With(zap.String("handler", "theater")),
	}
}

// GetTheaters handles GET /api/theaters (public)
func (h *TheaterHandler) GetTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := h.service.GetTheaters(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get theaters")
		return
	}

	utils.ResponseSuccess(w, "success", theaters)
}

// GetTheaterByID handles GET /api/theaters/{id} (public)
func (h *TheaterHandler) GetTheaterByID(w http.ResponseWriter, r *http.Request) {
	theaterID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid theater ID", nil)
		return
	}

	theater, err := h.service.GetTheaterByID(r.Context(), theaterID)
	if err != nil {
		h.handleServiceError(w, err, "get theater by ID")
		return
	}

	utils.ResponseSuccess(w, "success", theater)
}

// GetSeatMap handles GET /api/showtimes/{id}/seats (public)
func (h *TheaterHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	showtimeID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid showtime ID", nil)
		return
	}

	seatMap, err := h.service.GetSeatMap(r.Context(), showtimeID)
	if err != nil {
		h.handleServiceError(w, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}

// ==================== ADMIN METHODS ====================

// CreateTheater handles POST /api/admin/theaters (admin only)
func (h *TheaterHandler) CreateTheater(w http.ResponseWriter, r *http.Request) {
	var req request.TheaterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	theater, err := h.service.CreateTheater(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create theater")
		return
	}

	utils.ResponseCreated(w, "success", theater)
}

// handleServiceError handles errors untuk theater operations
func (h *TheaterHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
