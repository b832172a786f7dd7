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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Quote handles POST /api/bookings/quote (public)
// Returns the itemized price for a seat selection without creating anything.
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req request.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	breakdown, err := h.service.Quote(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "quote")
		return
	}

	utils.ResponseSuccess(w, "success", breakdown)
}

// CreateDraft handles POST /api/bookings/drafts (protected)
func (h *BookingHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	draft, err := h.service.CreateDraft(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create draft")
		return
	}

	utils.ResponseCreated(w, "success", draft)
}

// GetDraft handles GET /api/bookings/drafts/{id} (protected)
func (h *BookingHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	draftID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid draft ID", nil)
		return
	}

	draft, err := h.service.GetDraft(r.Context(), userID, draftID)
	if err != nil {
		h.handleServiceError(w, err, "get draft")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// CreateBooking handles POST /api/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetUserBookings handles GET /api/user/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
	req.Normalize()

	bookings, err := h.service.GetUserBookings(r.Context(), userID, req.Page, req.PerPage)
	if err != nil {
		h.handleServiceError(w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id} (protected)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), userID, bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBooking handles PUT /api/bookings/{id}/cancel (protected)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), userID, bookingID); err != nil {
		h.handleServiceError(w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// PaymentReturn handles GET /api/payment/return (public)
// The gateway redirects the customer back here with the booking reference.
func (h *BookingHandler) PaymentReturn(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	bookingCode := query.Get("ref")
	if bookingCode == "" {
		utils.ResponseBadRequest(w, "Booking reference is required", nil)
		return
	}

	transactionID := query.Get("transaction_id")
	success := query.Get("status") == "success"

	booking, err := h.service.PaymentReturn(r.Context(), bookingCode, transactionID, success)
	if err != nil {
		h.handleServiceError(w, err, "payment return")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ==================== ADMIN METHODS ====================

// GetBookingAdmin handles GET /api/admin/bookings/{id} (admin only)
func (h *BookingHandler) GetBookingAdmin(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	booking, err := h.service.GetBookingAdmin(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking (admin)")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBookingAdmin handles PUT /api/admin/bookings/{id}/cancel (admin only)
func (h *BookingHandler) CancelBookingAdmin(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	if err := h.service.CancelBookingAdmin(r.Context(), bookingID); err != nil {
		h.handleServiceError(w, err, "cancel booking (admin)")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError handles errors untuk booking operations
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already booked"):
		h.log.Warn(operation+" failed - seat already booked",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "disabled"):
		h.log.Warn(operation+" failed - drafts disabled",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseJSON(w, http.StatusServiceUnavailable, false, errMsg, nil, nil)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "required"),
		strings.Contains(errMsg, "malformed"),
		strings.Contains(errMsg, "has no"),
		strings.Contains(errMsg, "does not belong"),
		strings.Contains(errMsg, "duplicate"),
		strings.Contains(errMsg, "passed"):
		h.log.Warn(operation+" failed - bad input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "cannot"):
		h.log.Warn(operation+" failed - invalid state",
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
