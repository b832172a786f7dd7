package entity

import (
	"time"

	"github.com/google/uuid"
)

type Showtime struct {
	Base
	MovieID   uuid.UUID `db:"movie_id"`
	TheaterID uuid.UUID `db:"theater_id"`
	ShowDate  time.Time `db:"show_date"`
	StartTime string    `db:"start_time"` // zero-padded HH:MM, lexically ordered
	Price     int64     `db:"price"`      // showtime fee, minor currency units
}
