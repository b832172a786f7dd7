package response

import (
	"movie-storefront/internal/data/entity"
)

type TheaterResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	SeatRows int    `json:"seat_rows"`
	SeatCols int    `json:"seat_cols"`
}

type SeatResponse struct {
	ID         string          `json:"id"`
	Label      string          `json:"label"`
	SeatRow    string          `json:"seat_row"`
	SeatNumber int             `json:"seat_number"`
	Tier       entity.SeatTier `json:"tier"`
	Price      int64           `json:"price"`
	IsBooked   bool            `json:"is_booked"`

	// Booking codes currently holding the seat, empty when available.
	HeldBy []string `json:"held_by,omitempty"`
}

// SeatMapResponse is the per-showtime seat picker payload. Seats are keyed
// by their row letter so the client can render row by row.
type SeatMapResponse struct {
	Theater    TheaterResponse           `json:"theater"`
	ShowtimeID string                    `json:"showtime_id"`
	Rows       map[string][]SeatResponse `json:"rows"`
}

// Helper converters
func TheaterToResponse(theater *entity.Theater) TheaterResponse {
	return TheaterResponse{
		ID:       theater.ID.String(),
		Name:     theater.Name,
		Location: theater.Location,
		SeatRows: theater.SeatRows,
		SeatCols: theater.SeatCols,
	}
}

func SeatToResponse(seat *entity.Seat, isBooked bool, holds []entity.SeatAssignment) SeatResponse {
	resp := SeatResponse{
		ID:         seat.ID.String(),
		Label:      seat.Label(),
		SeatRow:    seat.SeatRow,
		SeatNumber: seat.SeatNumber,
		Tier:       seat.Tier,
		Price:      seat.Price,
		IsBooked:   isBooked,
	}

	for _, h := range holds {
		resp.HeldBy = append(resp.HeldBy, h.BookingCode)
	}

	return resp
}
