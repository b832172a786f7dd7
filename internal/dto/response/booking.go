package response

import (
	"time"

	"movie-storefront/internal/data/entity"
)

// BreakdownResponse mirrors the pricing engine's itemized total so the
// order summary renders each line as-is. Minor currency units throughout.
type BreakdownResponse struct {
	SeatsSubtotal   int64  `json:"seats_subtotal"`
	ShowtimeFee     int64  `json:"showtime_fee"`
	Surcharge       int64  `json:"surcharge"`
	SurchargeReason string `json:"surcharge_reason,omitempty"`
	Total           int64  `json:"total"`
}

type DraftResponse struct {
	ID         string             `json:"id"`
	ShowtimeID string             `json:"showtime_id"`
	SeatIDs    []string           `json:"seat_ids"`
	Breakdown  *BreakdownResponse `json:"breakdown,omitempty"`
	TotalPrice int64              `json:"total_price"`
	CreatedAt  time.Time          `json:"created_at"`
	ExpiresAt  time.Time          `json:"expires_at"`
}

type PaymentResponse struct {
	ID            string               `json:"id"`
	Method        entity.PaymentMethod `json:"method"`
	Amount        int64                `json:"amount"`
	Status        entity.PaymentStatus `json:"status"`
	TransactionID *string              `json:"transaction_id,omitempty"`
	ProofImageURL *string              `json:"proof_image_url,omitempty"`

	// Gateway redirect URL, only set for VNPAY while payment is pending.
	PaymentURL string `json:"payment_url,omitempty"`
}

type BookingResponse struct {
	ID          string               `json:"id"`
	BookingCode string               `json:"booking_code"`
	ShowtimeID  string               `json:"showtime_id"`
	MovieTitle  string               `json:"movie_title,omitempty"`
	TheaterName string               `json:"theater_name,omitempty"`
	ShowDate    string               `json:"show_date,omitempty"`
	StartTime   string               `json:"start_time,omitempty"`
	SeatLabels  []string             `json:"seat_labels"`
	TotalSeats  int                  `json:"total_seats"`
	Breakdown   *BreakdownResponse   `json:"breakdown,omitempty"`
	TotalPrice  int64                `json:"total_price"`
	Status      entity.BookingStatus `json:"status"`
	Payment     *PaymentResponse     `json:"payment,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// Helper converters
func DraftToResponse(draft *entity.BookingDraft, breakdown *BreakdownResponse, ttl time.Duration) DraftResponse {
	seatIDs := make([]string, len(draft.SeatIDs))
	for i, id := range draft.SeatIDs {
		seatIDs[i] = id.String()
	}

	return DraftResponse{
		ID:         draft.ID.String(),
		ShowtimeID: draft.ShowtimeID.String(),
		SeatIDs:    seatIDs,
		Breakdown:  breakdown,
		TotalPrice: draft.TotalPrice,
		CreatedAt:  draft.CreatedAt,
		ExpiresAt:  draft.CreatedAt.Add(ttl),
	}
}

func PaymentToResponse(payment *entity.Payment, paymentURL string) *PaymentResponse {
	if payment == nil {
		return nil
	}

	return &PaymentResponse{
		ID:            payment.ID.String(),
		Method:        payment.Method,
		Amount:        payment.Amount,
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
		ProofImageURL: payment.ProofImageURL,
		PaymentURL:    paymentURL,
	}
}

func BookingToResponse(booking *entity.Booking, seatLabels []string, breakdown *BreakdownResponse, payment *PaymentResponse) BookingResponse {
	if seatLabels == nil {
		seatLabels = []string{}
	}

	return BookingResponse{
		ID:          booking.ID.String(),
		BookingCode: booking.BookingCode,
		ShowtimeID:  booking.ShowtimeID.String(),
		SeatLabels:  seatLabels,
		TotalSeats:  booking.TotalSeats,
		Breakdown:   breakdown,
		TotalPrice:  booking.TotalPrice,
		Status:      booking.Status,
		Payment:     payment,
		CreatedAt:   booking.CreatedAt,
	}
}
