package request

// QuoteRequest asks for a price breakdown without creating anything.
type QuoteRequest struct {
	ShowtimeID string   `json:"showtime_id" validate:"required,uuid4"`
	SeatIDs    []string `json:"seat_ids" validate:"required,dive,uuid4"`
}

// CreateDraftRequest opens a server-side booking draft for the seats the
// customer picked. The draft holds the selection until checkout or expiry.
type CreateDraftRequest struct {
	ShowtimeID string   `json:"showtime_id" validate:"required,uuid4"`
	SeatIDs    []string `json:"seat_ids" validate:"required,min=1,dive,uuid4"`
}

type CustomerInfo struct {
	FullName string `json:"full_name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=10,max=15"`
}

// CreateBookingRequest checks out either an existing draft (draft_id) or an
// inline selection (showtime_id + seat_ids). Exactly one of the two forms
// must be present; the service validates that.
type CreateBookingRequest struct {
	DraftID       string       `json:"draft_id,omitempty" validate:"omitempty,uuid4"`
	ShowtimeID    string       `json:"showtime_id,omitempty" validate:"omitempty,uuid4"`
	SeatIDs       []string     `json:"seat_ids,omitempty" validate:"omitempty,dive,uuid4"`
	PaymentMethod string       `json:"payment_method" validate:"required,oneof=BANK_TRANSFER VNPAY"`
	CustomerInfo  CustomerInfo `json:"customer_info" validate:"required"`
	ProofImageURL *string      `json:"proof_image_url,omitempty" validate:"omitempty,url"`
}
