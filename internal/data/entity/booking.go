package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusExpired   BookingStatus = "expired"
)

type Booking struct {
	Base
	BookingCode string        `db:"booking_code"`
	UserID      uuid.UUID     `db:"user_id"`
	ShowtimeID  uuid.UUID     `db:"showtime_id"`
	TotalSeats  int           `db:"total_seats"`
	TotalPrice  int64         `db:"total_price"` // minor currency units
	Status      BookingStatus `db:"status"`
}
