package usecase

import (
	"context"
	"testing"

	"movie-storefront/internal/data/entity"
	"movie-storefront/internal/data/repository"
	"movie-storefront/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateSeats_GridAndTiers(t *testing.T) {
	theater := &entity.Theater{
		Base:     entity.Base{ID: uuid.New()},
		SeatRows: 6,
		SeatCols: 4,
	}
	req := &request.TheaterRequest{
		SeatRows:      6,
		SeatCols:      4,
		StandardPrice: 50000,
		PremiumPrice:  75000,
		VIPPrice:      120000,
	}

	seats := generateSeats(theater, req)
	require.Len(t, seats, 24)

	byRow := make(map[string][]*entity.Seat)
	for _, seat := range seats {
		assert.Equal(t, theater.ID, seat.TheaterID)
		byRow[seat.SeatRow] = append(byRow[seat.SeatRow], seat)
	}
	require.Len(t, byRow, 6)

	// Front rows standard, back third premium, last row VIP
	assert.Equal(t, entity.SeatTierStandard, byRow["A"][0].Tier)
	assert.Equal(t, int64(50000), byRow["A"][0].Price)
	assert.Equal(t, entity.SeatTierPremium, byRow["E"][0].Tier)
	assert.Equal(t, int64(75000), byRow["E"][0].Price)
	assert.Equal(t, entity.SeatTierVIP, byRow["F"][0].Tier)
	assert.Equal(t, int64(120000), byRow["F"][0].Price)

	assert.Equal(t, "A1", byRow["A"][0].Label())
	assert.Equal(t, "F4", byRow["F"][3].Label())
}

func TestGenerateSeats_StandardOnly(t *testing.T) {
	theater := &entity.Theater{
		Base:     entity.Base{ID: uuid.New()},
		SeatRows: 3,
		SeatCols: 2,
	}
	req := &request.TheaterRequest{
		SeatRows:      3,
		SeatCols:      2,
		StandardPrice: 50000,
	}

	for _, seat := range generateSeats(theater, req) {
		assert.Equal(t, entity.SeatTierStandard, seat.Tier)
		assert.Equal(t, int64(50000), seat.Price)
	}
}

func TestTheaterService_GetSeatMap(t *testing.T) {
	theater := &entity.Theater{
		Base:     entity.Base{ID: uuid.New()},
		Name:     "Studio 2",
		Location: "Bandung",
		SeatRows: 1,
		SeatCols: 2,
	}
	showtime := &entity.Showtime{
		Base:      entity.Base{ID: uuid.New()},
		MovieID:   uuid.New(),
		TheaterID: theater.ID,
		StartTime: "19:00",
		Price:     20000,
	}

	seatA1 := &entity.Seat{
		Base:       entity.Base{ID: uuid.New()},
		TheaterID:  theater.ID,
		SeatRow:    "A",
		SeatNumber: 1,
		Tier:       entity.SeatTierStandard,
		Price:      50000,
	}
	seatA2 := &entity.Seat{
		Base:       entity.Base{ID: uuid.New()},
		TheaterID:  theater.ID,
		SeatRow:    "A",
		SeatNumber: 2,
		Tier:       entity.SeatTierStandard,
		Price:      50000,
	}

	holds := newStubBookingSeatRepo()
	// A1 booked for this showtime, A2 booked only for another one
	holds.assignments[seatA1.ID] = []entity.SeatAssignment{{
		ID:          uuid.New(),
		SeatID:      seatA1.ID,
		Status:      entity.AssignmentStatusBooked,
		ShowtimeID:  showtime.ID,
		BookingCode: "BK-20260829-100000-0042",
	}}
	holds.assignments[seatA2.ID] = []entity.SeatAssignment{{
		ID:         uuid.New(),
		SeatID:     seatA2.ID,
		Status:     entity.AssignmentStatusBooked,
		ShowtimeID: uuid.New(),
	}}

	repo := &repository.Repository{
		Theater:     &stubTheaterRepo{theater: theater},
		Showtime:    &stubShowtimeRepo{showtime: showtime},
		Seat:        &stubSeatRepo{seats: map[uuid.UUID]*entity.Seat{seatA1.ID: seatA1, seatA2.ID: seatA2}},
		BookingSeat: holds,
	}

	service := NewTheaterService(repo, zap.NewNop())

	seatMap, err := service.GetSeatMap(context.Background(), showtime.ID)
	require.NoError(t, err)

	assert.Equal(t, "Studio 2", seatMap.Theater.Name)
	assert.Equal(t, showtime.ID.String(), seatMap.ShowtimeID)
	require.Len(t, seatMap.Rows["A"], 2)

	for _, seat := range seatMap.Rows["A"] {
		switch seat.Label {
		case "A1":
			assert.True(t, seat.IsBooked)
			assert.Equal(t, []string{"BK-20260829-100000-0042"}, seat.HeldBy)
		case "A2":
			assert.False(t, seat.IsBooked)
			assert.Empty(t, seat.HeldBy)
		default:
			t.Fatalf("unexpected seat %s", seat.Label)
		}
	}
}
