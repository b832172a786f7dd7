package usecase

import (
	"testing"

	"movie-storefront/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seatWithHistory(assignments ...entity.SeatAssignment) *entity.SeatWithAssignments {
	seat := entity.Seat{
		Base:       entity.Base{ID: uuid.New()},
		SeatRow:    "A",
		SeatNumber: 1,
		Tier:       entity.SeatTierStandard,
		Price:      100000,
	}
	for i := range assignments {
		assignments[i].SeatID = seat.ID
	}
	return &entity.SeatWithAssignments{Seat: seat, Assignments: assignments}
}

func TestResolveAvailability_BookedForTargetShowtime(t *testing.T) {
	showtimeID := uuid.New()
	seat := seatWithHistory(entity.SeatAssignment{
		ID:          uuid.New(),
		Status:      entity.AssignmentStatusBooked,
		ShowtimeID:  showtimeID,
		BookingCode: "BK-20260825-190000-0001",
	})

	result := ResolveAvailability([]*entity.SeatWithAssignments{seat}, showtimeID)
	require.Len(t, result, 1)

	assert.True(t, result[0].IsBooked)
	require.Len(t, result[0].Holds, 1)
	assert.Equal(t, "BK-20260825-190000-0001", result[0].Holds[0].BookingCode)
}

func TestResolveAvailability_OtherShowtimeDoesNotBlock(t *testing.T) {
	// Same seat, sold for a different showtime in the same theater: it has
	// to stay available for the target showtime.
	showtimeID := uuid.New()
	seat := seatWithHistory(entity.SeatAssignment{
		ID:         uuid.New(),
		Status:     entity.AssignmentStatusBooked,
		ShowtimeID: uuid.New(),
	})

	result := ResolveAvailability([]*entity.SeatWithAssignments{seat}, showtimeID)
	require.Len(t, result, 1)

	assert.False(t, result[0].IsBooked)
	assert.Empty(t, result[0].Holds)
}

func TestResolveAvailability_CancelledDoesNotBlock(t *testing.T) {
	showtimeID := uuid.New()
	seat := seatWithHistory(entity.SeatAssignment{
		ID:         uuid.New(),
		Status:     entity.AssignmentStatusCancelled,
		ShowtimeID: showtimeID,
	})

	result := ResolveAvailability([]*entity.SeatWithAssignments{seat}, showtimeID)
	require.Len(t, result, 1)

	assert.False(t, result[0].IsBooked)
}

func TestResolveAvailability_NoHistory(t *testing.T) {
	result := ResolveAvailability([]*entity.SeatWithAssignments{seatWithHistory()}, uuid.New())
	require.Len(t, result, 1)

	assert.False(t, result[0].IsBooked)
	assert.Empty(t, result[0].Holds)
}

func TestResolveAvailability_DuplicateHoldsStillBooked(t *testing.T) {
	showtimeID := uuid.New()
	seat := seatWithHistory(
		entity.SeatAssignment{ID: uuid.New(), Status: entity.AssignmentStatusBooked, ShowtimeID: showtimeID},
		entity.SeatAssignment{ID: uuid.New(), Status: entity.AssignmentStatusBooked, ShowtimeID: showtimeID},
	)

	result := ResolveAvailability([]*entity.SeatWithAssignments{seat}, showtimeID)
	require.Len(t, result, 1)

	assert.True(t, result[0].IsBooked)
	assert.Len(t, result[0].Holds, 2)
}

func TestResolveAvailability_MixedHistory(t *testing.T) {
	showtimeID := uuid.New()
	otherShowtime := uuid.New()

	booked := seatWithHistory(entity.SeatAssignment{
		ID: uuid.New(), Status: entity.AssignmentStatusBooked, ShowtimeID: showtimeID,
	})
	heldElsewhere := seatWithHistory(
		entity.SeatAssignment{ID: uuid.New(), Status: entity.AssignmentStatusBooked, ShowtimeID: otherShowtime},
		entity.SeatAssignment{ID: uuid.New(), Status: entity.AssignmentStatusCancelled, ShowtimeID: showtimeID},
	)
	fresh := seatWithHistory()

	result := ResolveAvailability([]*entity.SeatWithAssignments{booked, heldElsewhere, fresh}, showtimeID)
	require.Len(t, result, 3)

	assert.True(t, result[0].IsBooked)
	assert.False(t, result[1].IsBooked)
	assert.False(t, result[2].IsBooked)
}

func TestResolveAvailability_EmptyInput(t *testing.T) {
	result := ResolveAvailability(nil, uuid.New())
	assert.Empty(t, result)
}

func TestResolveAvailability_Idempotent(t *testing.T) {
	// Resolving the same snapshot twice yields identical output; the
	// resolver reads history, it never mutates it.
	showtimeID := uuid.New()
	snapshot := []*entity.SeatWithAssignments{
		seatWithHistory(entity.SeatAssignment{
			ID: uuid.New(), Status: entity.AssignmentStatusBooked, ShowtimeID: showtimeID, BookingCode: "BK-20260829-100000-0001",
		}),
		seatWithHistory(
			entity.SeatAssignment{ID: uuid.New(), Status: entity.AssignmentStatusBooked, ShowtimeID: uuid.New()},
			entity.SeatAssignment{ID: uuid.New(), Status: entity.AssignmentStatusCancelled, ShowtimeID: showtimeID},
		),
		seatWithHistory(),
	}

	first := ResolveAvailability(snapshot, showtimeID)
	second := ResolveAvailability(snapshot, showtimeID)

	assert.Equal(t, first, second)
}
