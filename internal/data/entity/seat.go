package entity

import (
	"strconv"

	"github.com/google/uuid"
)

type SeatTier string

const (
	SeatTierStandard SeatTier = "STANDARD"
	SeatTierPremium  SeatTier = "PREMIUM"
	SeatTierVIP      SeatTier = "VIP"
)

type Seat struct {
	Base
	TheaterID  uuid.UUID `db:"theater_id"`
	SeatRow    string    `db:"seat_row"`    // A, B, C, etc.
	SeatNumber int       `db:"seat_number"` // 1, 2, 3, etc.
	Tier       SeatTier  `db:"tier"`
	Price      int64     `db:"price"` // minor currency units
}

// Label returns the display name, e.g. A1, B12.
func (s *Seat) Label() string {
	if s == nil {
		return ""
	}
	return s.SeatRow + strconv.Itoa(s.SeatNumber)
}
