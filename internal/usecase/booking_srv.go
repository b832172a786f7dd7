package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"movie-storefront/internal/data/entity"
	"movie-storefront/internal/data/repository"
	"movie-storefront/internal/dto/request"
	"movie-storefront/internal/dto/response"
	"movie-storefront/internal/queue"
	"movie-storefront/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Quote(ctx context.Context, req *request.QuoteRequest) (*response.BreakdownResponse, error)
	CreateDraft(ctx context.Context, userID uuid.UUID, req *request.CreateDraftRequest) (*response.DraftResponse, error)
	GetDraft(ctx context.Context, userID, draftID uuid.UUID) (*response.DraftResponse, error)
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, page, perPage int) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, userID, bookingID uuid.UUID) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error
	PaymentReturn(ctx context.Context, bookingCode, transactionID string, success bool) (*response.BookingResponse, error)

	// Admin operations; no ownership check
	GetBookingAdmin(ctx context.Context, bookingID uuid.UUID) (*response.BookingResponse, error)
	CancelBookingAdmin(ctx context.Context, bookingID uuid.UUID) error

	// Background sweep, invoked periodically from main
	ExpireStaleBookings(ctx context.Context) (int, error)
}

type bookingService struct {
	repo      *repository.Repository
	config    *utils.Config
	publisher *queue.Publisher
	log       *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	config *utils.Config,
	publisher *queue.Publisher,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		config:    config,
		publisher: publisher,
		log:       log,
	}
}

// selection is a validated seat pick for one showtime, priced server-side.
type selection struct {
	showtime  *entity.Showtime
	seats     []*entity.Seat
	breakdown *PriceBreakdown
}

func (s *bookingService) Quote(ctx context.Context, req *request.QuoteRequest) (*response.BreakdownResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Quote validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	sel, err := s.priceSelection(ctx, req.ShowtimeID, req.SeatIDs)
	if err != nil {
		return nil, err
	}

	return breakdownToResponse(sel.breakdown), nil
}

func (s *bookingService) CreateDraft(ctx context.Context, userID uuid.UUID, req *request.CreateDraftRequest) (*response.DraftResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create draft validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Price the selection; vacancy is rechecked here too
	sel, err := s.priceSelection(ctx, req.ShowtimeID, req.SeatIDs)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSeatsFree(ctx, sel); err != nil {
		return nil, err
	}

	// 3. Save draft with TTL
	seatIDs := make([]uuid.UUID, len(sel.seats))
	for i, seat := range sel.seats {
		seatIDs[i] = seat.ID
	}

	draft := &entity.BookingDraft{
		ID:         uuid.New(),
		UserID:     userID,
		ShowtimeID: sel.showtime.ID,
		SeatIDs:    seatIDs,
		TotalPrice: sel.breakdown.Total,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Draft.Save(ctx, draft); err != nil {
		s.log.Error("Failed to save draft", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, err
	}

	s.log.Info("Draft created",
		zap.String("draft_id", draft.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("seats", len(seatIDs)))

	resp := response.DraftToResponse(draft, breakdownToResponse(sel.breakdown), s.repo.Draft.TTL())
	return &resp, nil
}

func (s *bookingService) GetDraft(ctx context.Context, userID, draftID uuid.UUID) (*response.DraftResponse, error) {
	draft, err := s.repo.Draft.FindByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil || draft.UserID != userID {
		return nil, fmt.Errorf("draft not found")
	}

	// Reprice so the summary reflects current seat and showtime fees.
	sel, err := s.priceSelection(ctx, draft.ShowtimeID.String(), uuidStrings(draft.SeatIDs))
	if err != nil {
		return nil, err
	}

	resp := response.DraftToResponse(draft, breakdownToResponse(sel.breakdown), s.repo.Draft.TTL())
	return &resp, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Resolve the selection: draft checkout or inline seats
	showtimeID := req.ShowtimeID
	seatIDs := req.SeatIDs
	var draftID *uuid.UUID

	if req.DraftID != "" {
		id, err := uuid.Parse(req.DraftID)
		if err != nil {
			return nil, fmt.Errorf("invalid draft id")
		}
		draft, err := s.repo.Draft.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if draft == nil || draft.UserID != userID {
			return nil, fmt.Errorf("draft not found")
		}
		showtimeID = draft.ShowtimeID.String()
		seatIDs = uuidStrings(draft.SeatIDs)
		draftID = &id
	}
	if showtimeID == "" || len(seatIDs) == 0 {
		return nil, fmt.Errorf("either draft_id or showtime_id with seat_ids is required")
	}

	// 3. Price server-side; client totals are never trusted
	sel, err := s.priceSelection(ctx, showtimeID, seatIDs)
	if err != nil {
		return nil, err
	}

	// 4. Showtime must not have started yet
	if !showtimeStart(sel.showtime).After(time.Now()) {
		return nil, fmt.Errorf("showtime already passed")
	}

	// 5. Seats must still be free
	if err := s.ensureSeatsFree(ctx, sel); err != nil {
		return nil, err
	}

	// 6. Create booking
	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingCode: utils.GenerateBookingCode(),
		UserID:      userID,
		ShowtimeID:  sel.showtime.ID,
		TotalSeats:  len(sel.seats),
		TotalPrice:  sel.breakdown.Total,
		Status:      entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to create booking")
	}

	// 7. Hold the seats
	bookingSeats := make([]*entity.BookingSeat, len(sel.seats))
	for i, seat := range sel.seats {
		bookingSeats[i] = &entity.BookingSeat{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BookingID: booking.ID,
			SeatID:    seat.ID,
			Status:    entity.AssignmentStatusBooked,
		}
	}
	if err := s.repo.BookingSeat.CreateBatch(ctx, bookingSeats); err != nil {
		s.log.Error("Failed to hold seats", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return nil, fmt.Errorf("failed to hold seats")
	}

	// 8. Open pending payment
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:     booking.ID,
		Method:        entity.PaymentMethod(req.PaymentMethod),
		Amount:        sel.breakdown.Total,
		Status:        entity.PaymentStatusPending,
		ProofImageURL: req.ProofImageURL,
	}
	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return nil, fmt.Errorf("failed to create payment")
	}

	paymentURL := ""
	if payment.Method == entity.PaymentMethodVNPay {
		paymentURL = s.gatewayURL(booking.BookingCode, payment.Amount)
	}

	// 9. Burn the draft; it is spent either way
	if draftID != nil {
		if err := s.repo.Draft.Delete(ctx, *draftID); err != nil {
			s.log.Warn("Failed to delete draft after checkout",
				zap.Error(err), zap.String("draft_id", draftID.String()))
		}
	}

	// 10. Publish event (best effort)
	s.publishCreated(ctx, booking, sel)

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_code", booking.BookingCode),
		zap.String("user_id", userID.String()),
		zap.Int64("total_price", booking.TotalPrice))

	resp := response.BookingToResponse(booking, seatLabels(sel.seats), breakdownToResponse(sel.breakdown), response.PaymentToResponse(payment, paymentURL))
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, page, perPage int) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := perPage
	offset := utils.CalculateOffset(page, perPage)

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get bookings")
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get bookings")
	}

	items := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		item, err := s.toResponse(ctx, booking)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return response.NewPaginatedResponse(items, page, perPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, userID, bookingID uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("failed to find booking")
	}
	if booking == nil || booking.UserID != userID {
		return nil, fmt.Errorf("booking not found")
	}

	return s.toResponse(ctx, booking)
}

func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error {
	// 1. Find booking & cek kepemilikan
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return fmt.Errorf("failed to find booking")
	}
	if booking == nil || booking.UserID != userID {
		return fmt.Errorf("booking not found")
	}

	return s.cancel(ctx, booking)
}

func (s *bookingService) GetBookingAdmin(ctx context.Context, bookingID uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	return s.toResponse(ctx, booking)
}

func (s *bookingService) CancelBookingAdmin(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		return fmt.Errorf("booking not found")
	}

	return s.cancel(ctx, booking)
}

func (s *bookingService) cancel(ctx context.Context, booking *entity.Booking) error {
	// 2. Hanya pending/confirmed yang bisa dibatalkan
	if booking.Status != entity.BookingStatusPending && booking.Status != entity.BookingStatusConfirmed {
		return fmt.Errorf("booking cannot be cancelled")
	}

	// 3. Update status & lepas kursi
	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return fmt.Errorf("failed to cancel booking")
	}
	if err := s.repo.BookingSeat.UpdateStatusByBookingID(ctx, booking.ID, entity.AssignmentStatusCancelled); err != nil {
		s.log.Error("Failed to release seats", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return fmt.Errorf("failed to release seats")
	}

	// 4. Publish event (best effort)
	if s.publisher.Enabled() {
		event := queue.BookingCancelledEvent{
			BookingID:   booking.ID.String(),
			BookingCode: booking.BookingCode,
			ShowtimeID:  booking.ShowtimeID.String(),
			CancelledAt: time.Now().Format(time.RFC3339),
		}
		if err := s.publisher.PublishBookingCancelled(ctx, event); err != nil {
			s.log.Warn("Failed to publish cancel event", zap.Error(err), zap.String("booking_code", booking.BookingCode))
		}
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("booking_code", booking.BookingCode))

	return nil
}

// ExpireStaleBookings sweeps pending bookings whose payment never completed
// within the configured TTL: the booking flips to expired, its payment to
// failed and its seat assignments to CANCELLED so the seats go back on sale.
func (s *bookingService) ExpireStaleBookings(ctx context.Context) (int, error) {
	ttl := time.Duration(s.config.Payment.PendingTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	stale, err := s.repo.Booking.FindStalePending(ctx, time.Now().Add(-ttl))
	if err != nil {
		s.log.Error("Failed to find stale bookings", zap.Error(err))
		return 0, fmt.Errorf("failed to find stale bookings")
	}

	expired := 0
	for _, booking := range stale {
		if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusExpired); err != nil {
			s.log.Error("Failed to expire booking", zap.Error(err), zap.String("booking_id", booking.ID.String()))
			continue
		}
		if err := s.repo.BookingSeat.UpdateStatusByBookingID(ctx, booking.ID, entity.AssignmentStatusCancelled); err != nil {
			s.log.Error("Failed to release seats", zap.Error(err), zap.String("booking_id", booking.ID.String()))
			continue
		}
		if payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID); err == nil && payment != nil && payment.Status == entity.PaymentStatusPending {
			if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusFailed, nil); err != nil {
				s.log.Warn("Failed to fail stale payment", zap.Error(err), zap.String("payment_id", payment.ID.String()))
			}
		}

		if s.publisher.Enabled() {
			event := queue.BookingExpiredEvent{
				BookingID:   booking.ID.String(),
				BookingCode: booking.BookingCode,
				ShowtimeID:  booking.ShowtimeID.String(),
				ExpiredAt:   time.Now().Format(time.RFC3339),
			}
			if err := s.publisher.PublishBookingExpired(ctx, event); err != nil {
				s.log.Warn("Failed to publish expire event", zap.Error(err), zap.String("booking_code", booking.BookingCode))
			}
		}

		s.log.Info("Booking expired",
			zap.String("booking_id", booking.ID.String()),
			zap.String("booking_code", booking.BookingCode))
		expired++
	}

	return expired, nil
}

func (s *bookingService) PaymentReturn(ctx context.Context, bookingCode, transactionID string, success bool) (*response.BookingResponse, error) {
	// 1. Find booking by code
	booking, err := s.repo.Booking.FindByCode(ctx, bookingCode)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_code", bookingCode))
		return nil, fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	// 2. Hanya pending booking yang bisa di-settle. Return yang datang
	// setelah cancel (atau replay) tidak boleh mengubah state, kursi
	// sudah dilepas.
	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("booking cannot be settled, status is %s", booking.Status)
	}

	// 3. Find pending payment
	payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to find payment", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return nil, fmt.Errorf("failed to find payment")
	}
	if payment == nil {
		return nil, fmt.Errorf("payment not found")
	}
	if payment.Status != entity.PaymentStatusPending {
		return nil, fmt.Errorf("payment cannot be settled, status is %s", payment.Status)
	}

	// 4. Settle
	var txID *string
	if transactionID != "" {
		txID = &transactionID
	}

	if success {
		if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusCompleted, txID); err != nil {
			s.log.Error("Failed to complete payment", zap.Error(err), zap.String("payment_id", payment.ID.String()))
			return nil, fmt.Errorf("failed to update payment")
		}
		if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusConfirmed); err != nil {
			s.log.Error("Failed to confirm booking", zap.Error(err), zap.String("booking_id", booking.ID.String()))
			return nil, fmt.Errorf("failed to confirm booking")
		}
		booking.Status = entity.BookingStatusConfirmed
	} else {
		if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusFailed, txID); err != nil {
			s.log.Error("Failed to fail payment", zap.Error(err), zap.String("payment_id", payment.ID.String()))
			return nil, fmt.Errorf("failed to update payment")
		}
	}

	s.log.Info("Payment return processed",
		zap.String("booking_code", bookingCode),
		zap.Bool("success", success))

	return s.toResponse(ctx, booking)
}

// priceSelection loads the showtime and seats, checks the seats belong to
// the showtime's theater and runs the pricing engine over them.
func (s *bookingService) priceSelection(ctx context.Context, showtimeIDStr string, seatIDStrs []string) (*selection, error) {
	showtimeID, err := uuid.Parse(showtimeIDStr)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime id")
	}

	seatIDs := make([]uuid.UUID, 0, len(seatIDStrs))
	seen := make(map[uuid.UUID]bool)
	for _, raw := range seatIDStrs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid seat id %q", raw)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate seat id %q", raw)
		}
		seen[id] = true
		seatIDs = append(seatIDs, id)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		s.log.Error("Failed to find showtime", zap.Error(err), zap.String("showtime_id", showtimeID.String()))
		return nil, fmt.Errorf("failed to find showtime")
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime not found")
	}

	var seats []*entity.Seat
	if len(seatIDs) > 0 {
		seats, err = s.repo.Seat.FindByIDs(ctx, seatIDs)
		if err != nil {
			s.log.Error("Failed to find seats", zap.Error(err))
			return nil, fmt.Errorf("failed to find seats")
		}
		if len(seats) != len(seatIDs) {
			return nil, fmt.Errorf("one or more seats not found")
		}
		for _, seat := range seats {
			if seat.TheaterID != showtime.TheaterID {
				return nil, fmt.Errorf("seat %s does not belong to this theater", seat.Label())
			}
		}
	}

	breakdown, err := ComputeTotal(seats, showtime)
	if err != nil {
		s.log.Error("Failed to price selection", zap.Error(err), zap.String("showtime_id", showtimeID.String()))
		return nil, err
	}

	return &selection{showtime: showtime, seats: seats, breakdown: breakdown}, nil
}

// showtimeStart composes ShowDate and the HH:MM start time into a single
// local instant. priceSelection has already validated the time format.
func showtimeStart(showtime *entity.Showtime) time.Time {
	hour, _ := strconv.Atoi(showtime.StartTime[:2])
	minute, _ := strconv.Atoi(showtime.StartTime[3:])
	d := showtime.ShowDate
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.Local)
}

// ensureSeatsFree rejects the selection when any seat already has a live
// hold for this showtime.
func (s *bookingService) ensureSeatsFree(ctx context.Context, sel *selection) error {
	assignments, err := s.repo.BookingSeat.FindAssignmentsByTheater(ctx, sel.showtime.TheaterID)
	if err != nil {
		s.log.Error("Failed to get seat assignments", zap.Error(err), zap.String("theater_id", sel.showtime.TheaterID.String()))
		return fmt.Errorf("failed to check seat availability")
	}

	withHistory := make([]*entity.SeatWithAssignments, 0, len(sel.seats))
	for _, seat := range sel.seats {
		withHistory = append(withHistory, &entity.SeatWithAssignments{
			Seat:        *seat,
			Assignments: assignments[seat.ID],
		})
	}

	for _, sa := range ResolveAvailability(withHistory, sel.showtime.ID) {
		if sa.IsBooked {
			return fmt.Errorf("seat %s is already booked", sa.Seat.Label())
		}
	}

	return nil
}

func (s *bookingService) toResponse(ctx context.Context, booking *entity.Booking) (*response.BookingResponse, error) {
	bookingSeats, err := s.repo.BookingSeat.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to get booking seats", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return nil, fmt.Errorf("failed to get booking seats")
	}

	seatIDs := make([]uuid.UUID, 0, len(bookingSeats))
	for _, bs := range bookingSeats {
		seatIDs = append(seatIDs, bs.SeatID)
	}

	var seats []*entity.Seat
	if len(seatIDs) > 0 {
		seats, err = s.repo.Seat.FindByIDs(ctx, seatIDs)
		if err != nil {
			s.log.Error("Failed to get seats", zap.Error(err), zap.String("booking_id", booking.ID.String()))
			return nil, fmt.Errorf("failed to get seats")
		}
	}

	payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to get payment", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return nil, fmt.Errorf("failed to get payment")
	}

	paymentURL := ""
	if payment != nil && payment.Method == entity.PaymentMethodVNPay && payment.Status == entity.PaymentStatusPending {
		paymentURL = s.gatewayURL(booking.BookingCode, payment.Amount)
	}

	resp := response.BookingToResponse(booking, seatLabels(seats), nil, response.PaymentToResponse(payment, paymentURL))

	// Showtime context untuk tampilan riwayat
	showtime, err := s.repo.Showtime.FindByID(ctx, booking.ShowtimeID)
	if err != nil {
		s.log.Error("Failed to find showtime", zap.Error(err), zap.String("showtime_id", booking.ShowtimeID.String()))
		return nil, fmt.Errorf("failed to find showtime")
	}
	if showtime != nil {
		resp.ShowDate = showtime.ShowDate.Format("2006-01-02")
		resp.StartTime = showtime.StartTime

		if movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID); err == nil && movie != nil {
			resp.MovieTitle = movie.Title
		}
		if theater, err := s.repo.Theater.FindByID(ctx, showtime.TheaterID); err == nil && theater != nil {
			resp.TheaterName = theater.Name
		}
	}

	return &resp, nil
}

func (s *bookingService) gatewayURL(bookingCode string, amount int64) string {
	if s.config.Payment.GatewayURL == "" {
		return ""
	}

	params := url.Values{}
	params.Set("ref", bookingCode)
	params.Set("amount", strconv.FormatInt(amount, 10))
	params.Set("return_url", s.config.Payment.ReturnURL)

	return s.config.Payment.GatewayURL + "?" + params.Encode()
}

func (s *bookingService) publishCreated(ctx context.Context, booking *entity.Booking, sel *selection) {
	if !s.publisher.Enabled() {
		return
	}

	event := queue.BookingCreatedEvent{
		BookingID:   booking.ID.String(),
		BookingCode: booking.BookingCode,
		UserID:      booking.UserID.String(),
		ShowtimeID:  booking.ShowtimeID.String(),
		ShowDate:    sel.showtime.ShowDate.Format("2006-01-02"),
		StartTime:   sel.showtime.StartTime,
		SeatLabels:  seatLabels(sel.seats),
		TotalPrice:  booking.TotalPrice,
		CreatedAt:   booking.CreatedAt.Format(time.RFC3339),
	}

	if movie, err := s.repo.Movie.FindByID(ctx, sel.showtime.MovieID); err == nil && movie != nil {
		event.MovieTitle = movie.Title
	}
	if theater, err := s.repo.Theater.FindByID(ctx, sel.showtime.TheaterID); err == nil && theater != nil {
		event.TheaterName = theater.Name
	}

	if err := s.publisher.PublishBookingCreated(ctx, event); err != nil {
		s.log.Warn("Failed to publish booking event", zap.Error(err), zap.String("booking_code", booking.BookingCode))
	}
}

func breakdownToResponse(b *PriceBreakdown) *response.BreakdownResponse {
	if b == nil {
		return nil
	}
	return &response.BreakdownResponse{
		SeatsSubtotal:   b.SeatsSubtotal,
		ShowtimeFee:     b.ShowtimeFee,
		Surcharge:       b.Surcharge,
		SurchargeReason: b.SurchargeReason,
		Total:           b.Total,
	}
}

func seatLabels(seats []*entity.Seat) []string {
	labels := make([]string, 0, len(seats))
	for _, seat := range seats {
		labels = append(labels, seat.Label())
	}
	return labels
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
