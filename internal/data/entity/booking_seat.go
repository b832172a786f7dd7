package entity

import "github.com/google/uuid"

type AssignmentStatus string

const (
	AssignmentStatusBooked    AssignmentStatus = "BOOKED"
	AssignmentStatusCancelled AssignmentStatus = "CANCELLED"
)

// BookingSeat links one seat to one booking for the booking's showtime.
type BookingSeat struct {
	BaseSimple
	BookingID uuid.UUID        `db:"booking_id"`
	SeatID    uuid.UUID        `db:"seat_id"`
	Status    AssignmentStatus `db:"status"`
}

// SeatAssignment is a booking_seats row joined with its parent booking.
// A seat accumulates assignments across every showtime it was ever sold
// for; availability checks must filter on ShowtimeID.
type SeatAssignment struct {
	ID          uuid.UUID        `db:"id"`
	SeatID      uuid.UUID        `db:"seat_id"`
	Status      AssignmentStatus `db:"status"`
	BookingID   uuid.UUID        `db:"booking_id"`
	ShowtimeID  uuid.UUID        `db:"showtime_id"`
	BookingCode string           `db:"booking_code"`
}

// SeatWithAssignments is the read model for a theater seat map: the seat
// plus its full assignment history.
type SeatWithAssignments struct {
	Seat
	Assignments []SeatAssignment
}
