package usecase

import (
	"movie-storefront/internal/data/entity"

	"github.com/google/uuid"
)

// SeatAvailability pairs a seat with its booked state for one showtime.
// Holds carries the matching assignment records so callers can show which
// booking code occupies the seat.
type SeatAvailability struct {
	Seat     *entity.Seat
	IsBooked bool
	Holds    []entity.SeatAssignment
}

// ResolveAvailability marks each seat booked for the target showtime only.
// A seat's assignment history spans every showtime it was ever sold for;
// the seat counts as booked iff it has at least one BOOKED assignment whose
// booking references showtimeID. Seats held for other showtimes, seats with
// cancelled assignments and seats with no history at all are available.
//
// Pure function over the snapshot; duplicate BOOKED rows for one showtime
// are tolerated and still read as booked.
func ResolveAvailability(seats []*entity.SeatWithAssignments, showtimeID uuid.UUID) []SeatAvailability {
	result := make([]SeatAvailability, len(seats))

	for i, seat := range seats {
		var holds []entity.SeatAssignment
		for _, a := range seat.Assignments {
			if a.Status == entity.AssignmentStatusBooked && a.ShowtimeID == showtimeID {
				holds = append(holds, a)
			}
		}

		result[i] = SeatAvailability{
			Seat:     &seat.Seat,
			IsBooked: len(holds) > 0,
			Holds:    holds,
		}
	}

	return result
}
