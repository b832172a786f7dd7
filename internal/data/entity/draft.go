package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingDraft carries in-progress booking state between seat selection and
// checkout. Stored server-side in Redis under its ID with a TTL, replacing
// client-held session state.
type BookingDraft struct {
	ID         uuid.UUID   `json:"id"`
	UserID     uuid.UUID   `json:"user_id"`
	ShowtimeID uuid.UUID   `json:"showtime_id"`
	SeatIDs    []uuid.UUID `json:"seat_ids"`
	TotalPrice int64       `json:"total_price"`
	CreatedAt  time.Time   `json:"created_at"`
}
