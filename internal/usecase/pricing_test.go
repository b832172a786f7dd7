package usecase

import (
	"testing"
	"time"

	"movie-storefront/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSeat(price int64) *entity.Seat {
	return &entity.Seat{
		Base:       entity.Base{ID: uuid.New()},
		SeatRow:    "A",
		SeatNumber: 1,
		Tier:       entity.SeatTierStandard,
		Price:      price,
	}
}

func makeShowtime(date time.Time, startTime string, price int64) *entity.Showtime {
	return &entity.Showtime{
		Base:      entity.Base{ID: uuid.New()},
		MovieID:   uuid.New(),
		TheaterID: uuid.New(),
		ShowDate:  date,
		StartTime: startTime,
		Price:     price,
	}
}

// 2026-08-25 is a Tuesday, 2026-08-29 a Saturday, 2026-08-30 a Sunday.
var (
	tuesday  = time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
)

func TestComputeTotal_OffPeak(t *testing.T) {
	seats := []*entity.Seat{makeSeat(100000), makeSeat(150000)}
	showtime := makeShowtime(tuesday, "14:00", 20000)

	breakdown, err := ComputeTotal(seats, showtime)
	require.NoError(t, err)

	assert.Equal(t, int64(250000), breakdown.SeatsSubtotal)
	assert.Equal(t, int64(20000), breakdown.ShowtimeFee)
	assert.Equal(t, int64(0), breakdown.Surcharge)
	assert.Empty(t, breakdown.SurchargeReason)
	assert.Equal(t, int64(270000), breakdown.Total)
}

func TestComputeTotal_EveningSurcharge(t *testing.T) {
	seats := []*entity.Seat{makeSeat(100000), makeSeat(150000)}
	showtime := makeShowtime(tuesday, "19:00", 20000)

	breakdown, err := ComputeTotal(seats, showtime)
	require.NoError(t, err)

	assert.Equal(t, int64(250000), breakdown.SeatsSubtotal)
	assert.Equal(t, int64(20000), breakdown.ShowtimeFee)
	assert.Equal(t, PeakSurcharge, breakdown.Surcharge)
	assert.Equal(t, SurchargeReasonEvening, breakdown.SurchargeReason)
	assert.Equal(t, int64(290000), breakdown.Total)
}

func TestComputeTotal_WeekendSurcharge(t *testing.T) {
	seats := []*entity.Seat{makeSeat(100000)}
	showtime := makeShowtime(saturday, "10:00", 20000)

	breakdown, err := ComputeTotal(seats, showtime)
	require.NoError(t, err)

	assert.Equal(t, PeakSurcharge, breakdown.Surcharge)
	assert.Equal(t, SurchargeReasonWeekend, breakdown.SurchargeReason)
	assert.Equal(t, int64(140000), breakdown.Total)
}

func TestComputeTotal_WeekendWinsOverEvening(t *testing.T) {
	// Sunday evening: both conditions hold, weekend reason wins and the
	// surcharge is applied once.
	seats := []*entity.Seat{makeSeat(100000)}
	showtime := makeShowtime(sunday, "20:00", 20000)

	breakdown, err := ComputeTotal(seats, showtime)
	require.NoError(t, err)

	assert.Equal(t, PeakSurcharge, breakdown.Surcharge)
	assert.Equal(t, SurchargeReasonWeekend, breakdown.SurchargeReason)
	assert.Equal(t, int64(140000), breakdown.Total)
}

func TestComputeTotal_EveningCutoffBoundary(t *testing.T) {
	seats := []*entity.Seat{makeSeat(100000)}

	at1759, err := ComputeTotal(seats, makeShowtime(tuesday, "17:59", 20000))
	require.NoError(t, err)
	assert.Equal(t, int64(0), at1759.Surcharge)

	at1800, err := ComputeTotal(seats, makeShowtime(tuesday, "18:00", 20000))
	require.NoError(t, err)
	assert.Equal(t, PeakSurcharge, at1800.Surcharge)
	assert.Equal(t, SurchargeReasonEvening, at1800.SurchargeReason)
}

func TestComputeTotal_SeatOrderDoesNotMatter(t *testing.T) {
	a := makeSeat(100000)
	b := makeSeat(150000)
	c := makeSeat(75000)
	showtime := makeShowtime(tuesday, "19:00", 20000)

	forward, err := ComputeTotal([]*entity.Seat{a, b, c}, showtime)
	require.NoError(t, err)

	reversed, err := ComputeTotal([]*entity.Seat{c, b, a}, showtime)
	require.NoError(t, err)

	assert.Equal(t, forward.Total, reversed.Total)
	assert.Equal(t, forward.SeatsSubtotal, reversed.SeatsSubtotal)
}

func TestComputeTotal_EmptySeatsStillPriced(t *testing.T) {
	// No seats picked yet: fee (and any surcharge) still apply so the
	// summary can render before selection.
	showtime := makeShowtime(tuesday, "10:00", 20000)

	breakdown, err := ComputeTotal(nil, showtime)
	require.NoError(t, err)

	assert.Equal(t, int64(0), breakdown.SeatsSubtotal)
	assert.Equal(t, int64(20000), breakdown.Total)
}

func TestComputeTotal_MissingShowtime(t *testing.T) {
	_, err := ComputeTotal(nil, nil)
	assert.Error(t, err)
}

func TestComputeTotal_MissingFee(t *testing.T) {
	showtime := makeShowtime(tuesday, "10:00", 0)

	_, err := ComputeTotal([]*entity.Seat{makeSeat(100000)}, showtime)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no fee")
}

func TestComputeTotal_MalformedStartTime(t *testing.T) {
	for _, startTime := range []string{"", "9:00", "25:00", "18:60", "siang", "18.30"} {
		_, err := ComputeTotal(nil, makeShowtime(tuesday, startTime, 20000))
		assert.Error(t, err, "start time %q should be rejected", startTime)
	}
}

func TestComputeTotal_MissingShowDate(t *testing.T) {
	showtime := makeShowtime(time.Time{}, "10:00", 20000)

	_, err := ComputeTotal(nil, showtime)
	assert.Error(t, err)
}
