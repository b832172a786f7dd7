package usecase

import (
	"context"
	"testing"
	"time"

	"movie-storefront/internal/data/entity"
	"movie-storefront/internal/data/repository"
	"movie-storefront/internal/dto/request"
	"movie-storefront/internal/queue"
	"movie-storefront/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ==================== STUB REPOSITORIES ====================

type stubShowtimeRepo struct {
	showtime *entity.Showtime
}

func (s *stubShowtimeRepo) Create(ctx context.Context, showtime *entity.Showtime) error {
	return nil
}

func (s *stubShowtimeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	if s.showtime != nil && s.showtime.ID == id {
		return s.showtime, nil
	}
	return nil, nil
}

func (s *stubShowtimeRepo) FindByMovieID(ctx context.Context, movieID uuid.UUID, date *time.Time) ([]*entity.Showtime, error) {
	return nil, nil
}

func (s *stubShowtimeRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubSeatRepo struct {
	seats map[uuid.UUID]*entity.Seat
}

func (s *stubSeatRepo) CreateBatch(ctx context.Context, seats []*entity.Seat) error { return nil }

func (s *stubSeatRepo) FindByTheaterID(ctx context.Context, theaterID uuid.UUID) ([]*entity.Seat, error) {
	var out []*entity.Seat
	for _, seat := range s.seats {
		if seat.TheaterID == theaterID {
			out = append(out, seat)
		}
	}
	return out, nil
}

func (s *stubSeatRepo) FindByIDs(ctx context.Context, seatIDs []uuid.UUID) ([]*entity.Seat, error) {
	var out []*entity.Seat
	for _, id := range seatIDs {
		if seat, ok := s.seats[id]; ok {
			out = append(out, seat)
		}
	}
	return out, nil
}

type stubBookingRepo struct {
	created  []*entity.Booking
	statuses map[uuid.UUID]entity.BookingStatus
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{statuses: make(map[uuid.UUID]entity.BookingStatus)}
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	s.created = append(s.created, booking)
	return nil
}

func (s *stubBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	for _, b := range s.created {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (s *stubBookingRepo) FindByCode(ctx context.Context, bookingCode string) (*entity.Booking, error) {
	for _, b := range s.created {
		if b.BookingCode == bookingCode {
			return b, nil
		}
	}
	return nil, nil
}

func (s *stubBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *stubBookingRepo) FindStalePending(ctx context.Context, olderThan time.Time) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range s.created {
		if b.Status == entity.BookingStatusPending && b.CreatedAt.Before(olderThan) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	s.statuses[id] = status
	for _, b := range s.created {
		if b.ID == id {
			b.Status = status
		}
	}
	return nil
}

func (s *stubBookingRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubBookingSeatRepo struct {
	assignments map[uuid.UUID][]entity.SeatAssignment
	created     []*entity.BookingSeat
	released    []uuid.UUID
}

func newStubBookingSeatRepo() *stubBookingSeatRepo {
	return &stubBookingSeatRepo{assignments: make(map[uuid.UUID][]entity.SeatAssignment)}
}

func (s *stubBookingSeatRepo) CreateBatch(ctx context.Context, bookingSeats []*entity.BookingSeat) error {
	s.created = append(s.created, bookingSeats...)
	return nil
}

func (s *stubBookingSeatRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingSeat, error) {
	var out []*entity.BookingSeat
	for _, bs := range s.created {
		if bs.BookingID == bookingID {
			out = append(out, bs)
		}
	}
	return out, nil
}

func (s *stubBookingSeatRepo) UpdateStatusByBookingID(ctx context.Context, bookingID uuid.UUID, status entity.AssignmentStatus) error {
	s.released = append(s.released, bookingID)
	return nil
}

func (s *stubBookingSeatRepo) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	return nil
}

func (s *stubBookingSeatRepo) FindAssignmentsByTheater(ctx context.Context, theaterID uuid.UUID) (map[uuid.UUID][]entity.SeatAssignment, error) {
	return s.assignments, nil
}

type stubMovieRepo struct {
	movie *entity.Movie
}

func (s *stubMovieRepo) Create(ctx context.Context, movie *entity.Movie) error { return nil }

func (s *stubMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	if s.movie != nil && s.movie.ID == id {
		return s.movie, nil
	}
	return nil, nil
}

func (s *stubMovieRepo) Update(ctx context.Context, movie *entity.Movie) error { return nil }

func (s *stubMovieRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubMovieRepo) FindAll(ctx context.Context, limit, offset int, releaseStatus *string, search string) ([]*entity.Movie, error) {
	return nil, nil
}

func (s *stubMovieRepo) CountAll(ctx context.Context, releaseStatus *string, search string) (int64, error) {
	return 0, nil
}

type stubTheaterRepo struct {
	theater *entity.Theater
}

func (s *stubTheaterRepo) Create(ctx context.Context, theater *entity.Theater) error { return nil }

func (s *stubTheaterRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Theater, error) {
	if s.theater != nil && s.theater.ID == id {
		return s.theater, nil
	}
	return nil, nil
}

func (s *stubTheaterRepo) FindAll(ctx context.Context) ([]*entity.Theater, error) { return nil, nil }

type stubPaymentRepo struct {
	created []*entity.Payment
}

func (s *stubPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	s.created = append(s.created, payment)
	return nil
}

func (s *stubPaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	for _, p := range s.created {
		if p.BookingID == bookingID {
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubPaymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, transactionID *string) error {
	for _, p := range s.created {
		if p.ID == id {
			p.Status = status
			p.TransactionID = transactionID
		}
	}
	return nil
}

type stubDraftRepo struct {
	drafts  map[uuid.UUID]*entity.BookingDraft
	deleted []uuid.UUID
}

func newStubDraftRepo() *stubDraftRepo {
	return &stubDraftRepo{drafts: make(map[uuid.UUID]*entity.BookingDraft)}
}

func (s *stubDraftRepo) Save(ctx context.Context, draft *entity.BookingDraft) error {
	s.drafts[draft.ID] = draft
	return nil
}

func (s *stubDraftRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingDraft, error) {
	return s.drafts[id], nil
}

func (s *stubDraftRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	delete(s.drafts, id)
	return nil
}

func (s *stubDraftRepo) TTL() time.Duration { return 15 * time.Minute }

// ==================== FIXTURE ====================

type bookingFixture struct {
	service  BookingService
	showtime *entity.Showtime
	seatA    *entity.Seat
	seatB    *entity.Seat
	bookings *stubBookingRepo
	holds    *stubBookingSeatRepo
	payments *stubPaymentRepo
	drafts   *stubDraftRepo
}

// 2030-01-01 is a Tuesday; 19:00 start means the evening surcharge applies.
func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	movie := &entity.Movie{
		Base:  entity.Base{ID: uuid.New()},
		Title: "Laskar Pelangi",
	}
	theater := &entity.Theater{
		Base:     entity.Base{ID: uuid.New()},
		Name:     "Studio 1",
		Location: "Jakarta",
		SeatRows: 5,
		SeatCols: 10,
	}

	theaterID := theater.ID
	showtime := &entity.Showtime{
		Base:      entity.Base{ID: uuid.New()},
		MovieID:   movie.ID,
		TheaterID: theaterID,
		ShowDate:  time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		StartTime: "19:00",
		Price:     20000,
	}

	seatA := &entity.Seat{
		Base:       entity.Base{ID: uuid.New()},
		TheaterID:  theaterID,
		SeatRow:    "A",
		SeatNumber: 1,
		Tier:       entity.SeatTierStandard,
		Price:      100000,
	}
	seatB := &entity.Seat{
		Base:       entity.Base{ID: uuid.New()},
		TheaterID:  theaterID,
		SeatRow:    "A",
		SeatNumber: 2,
		Tier:       entity.SeatTierPremium,
		Price:      150000,
	}

	bookings := newStubBookingRepo()
	holds := newStubBookingSeatRepo()
	payments := &stubPaymentRepo{}
	drafts := newStubDraftRepo()

	repo := &repository.Repository{
		Movie:       &stubMovieRepo{movie: movie},
		Theater:     &stubTheaterRepo{theater: theater},
		Showtime:    &stubShowtimeRepo{showtime: showtime},
		Seat:        &stubSeatRepo{seats: map[uuid.UUID]*entity.Seat{seatA.ID: seatA, seatB.ID: seatB}},
		Booking:     bookings,
		BookingSeat: holds,
		Payment:     payments,
		Draft:       drafts,
	}

	config := &utils.Config{}
	config.Payment.GatewayURL = "https://pay.example.com/checkout"
	config.Payment.ReturnURL = "https://storefront.example.com/api/payment/return"

	service := NewBookingService(repo, config, queue.NewPublisher("", zap.NewNop()), zap.NewNop())

	return &bookingFixture{
		service:  service,
		showtime: showtime,
		seatA:    seatA,
		seatB:    seatB,
		bookings: bookings,
		holds:    holds,
		payments: payments,
		drafts:   drafts,
	}
}

func validCustomer() request.CustomerInfo {
	return request.CustomerInfo{
		FullName: "Budi Santoso",
		Email:    "budi@example.com",
		Phone:    "081234567890",
	}
}

// ==================== TESTS ====================

func TestBookingService_Quote(t *testing.T) {
	f := newBookingFixture(t)

	breakdown, err := f.service.Quote(context.Background(), &request.QuoteRequest{
		ShowtimeID: f.showtime.ID.String(),
		SeatIDs:    []string{f.seatA.ID.String(), f.seatB.ID.String()},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(250000), breakdown.SeatsSubtotal)
	assert.Equal(t, int64(20000), breakdown.ShowtimeFee)
	assert.Equal(t, int64(20000), breakdown.Surcharge)
	assert.Equal(t, SurchargeReasonEvening, breakdown.SurchargeReason)
	assert.Equal(t, int64(290000), breakdown.Total)

	// Quote is read-only
	assert.Empty(t, f.bookings.created)
	assert.Empty(t, f.holds.created)
}

func TestBookingService_CreateBooking_TotalComputedServerSide(t *testing.T) {
	f := newBookingFixture(t)
	userID := uuid.New()

	booking, err := f.service.CreateBooking(context.Background(), userID, &request.CreateBookingRequest{
		ShowtimeID:    f.showtime.ID.String(),
		SeatIDs:       []string{f.seatA.ID.String(), f.seatB.ID.String()},
		PaymentMethod: "VNPAY",
		CustomerInfo:  validCustomer(),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(290000), booking.TotalPrice)
	assert.Equal(t, 2, booking.TotalSeats)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.ElementsMatch(t, []string{"A1", "A2"}, booking.SeatLabels)
	assert.NotEmpty(t, booking.BookingCode)

	require.NotNil(t, booking.Breakdown)
	assert.Equal(t, SurchargeReasonEvening, booking.Breakdown.SurchargeReason)

	// Seats are held as BOOKED
	require.Len(t, f.holds.created, 2)
	for _, hold := range f.holds.created {
		assert.Equal(t, entity.AssignmentStatusBooked, hold.Status)
	}

	// Pending payment opened with the server-side amount and a gateway URL
	require.Len(t, f.payments.created, 1)
	assert.Equal(t, int64(290000), f.payments.created[0].Amount)
	assert.Equal(t, entity.PaymentStatusPending, f.payments.created[0].Status)
	require.NotNil(t, booking.Payment)
	assert.Contains(t, booking.Payment.PaymentURL, "https://pay.example.com/checkout?")
	assert.Contains(t, booking.Payment.PaymentURL, "amount=290000")
}

func TestBookingService_CreateBooking_RejectsBookedSeat(t *testing.T) {
	f := newBookingFixture(t)

	// seatA already holds a BOOKED assignment for this showtime
	f.holds.assignments[f.seatA.ID] = []entity.SeatAssignment{{
		ID:         uuid.New(),
		SeatID:     f.seatA.ID,
		Status:     entity.AssignmentStatusBooked,
		ShowtimeID: f.showtime.ID,
	}}

	_, err := f.service.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		ShowtimeID:    f.showtime.ID.String(),
		SeatIDs:       []string{f.seatA.ID.String()},
		PaymentMethod: "BANK_TRANSFER",
		CustomerInfo:  validCustomer(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already booked")
	assert.Empty(t, f.bookings.created)
}

func TestBookingService_CreateBooking_OtherShowtimeHoldDoesNotBlock(t *testing.T) {
	f := newBookingFixture(t)

	// seatA sold for a different showtime in the same theater
	f.holds.assignments[f.seatA.ID] = []entity.SeatAssignment{{
		ID:         uuid.New(),
		SeatID:     f.seatA.ID,
		Status:     entity.AssignmentStatusBooked,
		ShowtimeID: uuid.New(),
	}}

	booking, err := f.service.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		ShowtimeID:    f.showtime.ID.String(),
		SeatIDs:       []string{f.seatA.ID.String()},
		PaymentMethod: "BANK_TRANSFER",
		CustomerInfo:  validCustomer(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(140000), booking.TotalPrice)
}

func TestBookingService_CreateBooking_RejectsDuplicateSeats(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.service.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		ShowtimeID:    f.showtime.ID.String(),
		SeatIDs:       []string{f.seatA.ID.String(), f.seatA.ID.String()},
		PaymentMethod: "BANK_TRANSFER",
		CustomerInfo:  validCustomer(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestBookingService_CreateBooking_RejectsEmptySelection(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.service.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		PaymentMethod: "BANK_TRANSFER",
		CustomerInfo:  validCustomer(),
	})
	assert.Error(t, err)
}

func TestBookingService_DraftCheckout(t *testing.T) {
	f := newBookingFixture(t)
	userID := uuid.New()

	draft, err := f.service.CreateDraft(context.Background(), userID, &request.CreateDraftRequest{
		ShowtimeID: f.showtime.ID.String(),
		SeatIDs:    []string{f.seatA.ID.String(), f.seatB.ID.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(290000), draft.TotalPrice)
	assert.True(t, draft.ExpiresAt.After(draft.CreatedAt))

	// Draft can be fetched back by its owner
	draftID, err := uuid.Parse(draft.ID)
	require.NoError(t, err)

	fetched, err := f.service.GetDraft(context.Background(), userID, draftID)
	require.NoError(t, err)
	assert.Equal(t, draft.TotalPrice, fetched.TotalPrice)

	// ...but not by anyone else
	_, err = f.service.GetDraft(context.Background(), uuid.New(), draftID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	// Checkout consumes the draft
	booking, err := f.service.CreateBooking(context.Background(), userID, &request.CreateBookingRequest{
		DraftID:       draft.ID,
		PaymentMethod: "BANK_TRANSFER",
		CustomerInfo:  validCustomer(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(290000), booking.TotalPrice)
	assert.Contains(t, f.drafts.deleted, draftID)
}

func TestBookingService_CancelBooking_ReleasesSeats(t *testing.T) {
	f := newBookingFixture(t)
	userID := uuid.New()

	booking, err := f.service.CreateBooking(context.Background(), userID, &request.CreateBookingRequest{
		ShowtimeID:    f.showtime.ID.String(),
		SeatIDs:       []string{f.seatA.ID.String()},
		PaymentMethod: "BANK_TRANSFER",
		CustomerInfo:  validCustomer(),
	})
	require.NoError(t, err)

	bookingID, err := uuid.Parse(booking.ID)
	require.NoError(t, err)

	// Someone else cannot cancel it
	err = f.service.CancelBooking(context.Background(), uuid.New(), bookingID)
	require.Error(t, err)

	// The owner can
	err = f.service.CancelBooking(context.Background(), userID, bookingID)
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusCancelled, f.bookings.statuses[bookingID])
	assert.Contains(t, f.holds.released, bookingID)
}

func TestBookingService_PaymentReturn_ConfirmsBooking(t *testing.T) {
	f := newBookingFixture(t)
	userID := uuid.New()

	booking, err := f.service.CreateBooking(context.Background(), userID, &request.CreateBookingRequest{
		ShowtimeID:    f.showtime.ID.String(),
		SeatIDs:       []string{f.seatA.ID.String()},
		PaymentMethod: "VNPAY",
		CustomerInfo:  validCustomer(),
	})
	require.NoError(t, err)

	updated, err := f.service.PaymentReturn(context.Background(), booking.BookingCode, "TX-123", true)
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, "Laskar Pelangi", updated.MovieTitle)
	assert.Equal(t, "Studio 1", updated.TheaterName)
	require.NotNil(t, updated.Payment)
	assert.Equal(t, entity.PaymentStatusCompleted, updated.Payment.Status)
	require.NotNil(t, updated.Payment.TransactionID)
	assert.Equal(t, "TX-123", *updated.Payment.TransactionID)
}

func TestBookingService_PaymentReturn_IgnoresLateReturnAfterCancel(t *testing.T) {
	f := newBookingFixture(t)
	userID := uuid.New()

	booking, err := f.service.CreateBooking(context.Background(), userID, &request.CreateBookingRequest{
		ShowtimeID:    f.showtime.ID.String(),
		SeatIDs:       []string{f.seatA.ID.String()},
		PaymentMethod: "VNPAY",
		CustomerInfo:  validCustomer(),
	})
	require.NoError(t, err)

	bookingID, err := uuid.Parse(booking.ID)
	require.NoError(t, err)
	require.NoError(t, f.service.CancelBooking(context.Background(), userID, bookingID))

	// The gateway return arrives after the customer already cancelled: it
	// must not revive the booking, its seats were released.
	_, err = f.service.PaymentReturn(context.Background(), booking.BookingCode, "TX-LATE", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be settled")

	assert.Equal(t, entity.BookingStatusCancelled, f.bookings.statuses[bookingID])
	assert.Equal(t, entity.PaymentStatusPending, f.payments.created[0].Status)
}

func TestBookingService_PaymentReturn_RejectsReplayedReturn(t *testing.T) {
	f := newBookingFixture(t)
	userID := uuid.New()

	booking, err := f.service.CreateBooking(context.Background(), userID, &request.CreateBookingRequest{
		ShowtimeID:    f.showtime.ID.String(),
		SeatIDs:       []string{f.seatA.ID.String()},
		PaymentMethod: "VNPAY",
		CustomerInfo:  validCustomer(),
	})
	require.NoError(t, err)

	_, err = f.service.PaymentReturn(context.Background(), booking.BookingCode, "TX-123", true)
	require.NoError(t, err)

	// Replaying the same return must not be processed again
	_, err = f.service.PaymentReturn(context.Background(), booking.BookingCode, "TX-123", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be settled")

	require.NotNil(t, f.payments.created[0].TransactionID)
	assert.Equal(t, "TX-123", *f.payments.created[0].TransactionID)
}

func TestBookingService_CreateBooking_RejectsStartedShowtime(t *testing.T) {
	f := newBookingFixture(t)

	// A showtime that started an hour ago, on today's date: the start
	// time has to count, not just the calendar day.
	started := time.Now().Add(-time.Hour)
	f.showtime.ShowDate = time.Date(started.Year(), started.Month(), started.Day(), 0, 0, 0, 0, time.Local)
	f.showtime.StartTime = started.Format("15:04")

	_, err := f.service.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		ShowtimeID:    f.showtime.ID.String(),
		SeatIDs:       []string{f.seatA.ID.String()},
		PaymentMethod: "BANK_TRANSFER",
		CustomerInfo:  validCustomer(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already passed")
}

func TestBookingService_ExpireStaleBookings(t *testing.T) {
	f := newBookingFixture(t)
	userID := uuid.New()

	booking, err := f.service.CreateBooking(context.Background(), userID, &request.CreateBookingRequest{
		ShowtimeID:    f.showtime.ID.String(),
		SeatIDs:       []string{f.seatA.ID.String()},
		PaymentMethod: "VNPAY",
		CustomerInfo:  validCustomer(),
	})
	require.NoError(t, err)

	bookingID, err := uuid.Parse(booking.ID)
	require.NoError(t, err)

	// Backdate past the pending TTL
	f.bookings.created[0].CreatedAt = time.Now().Add(-time.Hour)

	expired, err := f.service.ExpireStaleBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, expired)

	assert.Equal(t, entity.BookingStatusExpired, f.bookings.statuses[bookingID])
	assert.Contains(t, f.holds.released, bookingID)
	assert.Equal(t, entity.PaymentStatusFailed, f.payments.created[0].Status)

	// Settled bookings are left alone
	again, err := f.service.ExpireStaleBookings(context.Background())
	require.NoError(t, err)
	assert.Zero(t, again)
}
