package usecase

import (
	"fmt"
	"regexp"
	"time"

	"movie-storefront/internal/data/entity"
)

// PeakSurcharge is the flat fee, in minor currency units, added to weekend
// and evening showtimes.
const PeakSurcharge int64 = 20000

// EveningCutoff marks the start of evening pricing. Start times are
// zero-padded HH:MM so plain string comparison orders them correctly.
const EveningCutoff = "18:00"

const (
	SurchargeReasonWeekend = "Weekend"
	SurchargeReasonEvening = "Evening"
)

var startTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// PriceBreakdown itemizes an order total so the order summary can render
// each line without recomputing. All amounts are minor currency units.
type PriceBreakdown struct {
	SeatsSubtotal   int64  `json:"seats_subtotal"`
	ShowtimeFee     int64  `json:"showtime_fee"`
	Surcharge       int64  `json:"surcharge"`
	SurchargeReason string `json:"surcharge_reason,omitempty"` // Weekend or Evening, empty when off-peak
	Total           int64  `json:"total"`
}

// ComputeTotal prices an order: sum of seat prices, plus the showtime fee,
// plus PeakSurcharge when the showtime falls on a Saturday/Sunday or starts
// at or after EveningCutoff. The weekend reason wins when both conditions
// hold. An empty seat list yields a valid breakdown with zero subtotal;
// rejecting empty selections is the caller's concern.
//
// A missing fee or malformed date/time is an error, never silently zeroed.
func ComputeTotal(selectedSeats []*entity.Seat, showtime *entity.Showtime) (*PriceBreakdown, error) {
	if showtime == nil {
		return nil, fmt.Errorf("showtime is required")
	}
	if showtime.Price <= 0 {
		return nil, fmt.Errorf("showtime %s has no fee", showtime.ID.String())
	}
	if showtime.ShowDate.IsZero() {
		return nil, fmt.Errorf("showtime %s has no show date", showtime.ID.String())
	}
	if !startTimePattern.MatchString(showtime.StartTime) {
		return nil, fmt.Errorf("showtime %s has malformed start time %q", showtime.ID.String(), showtime.StartTime)
	}

	var seatsSubtotal int64
	for _, seat := range selectedSeats {
		seatsSubtotal += seat.Price
	}

	breakdown := &PriceBreakdown{
		SeatsSubtotal: seatsSubtotal,
		ShowtimeFee:   showtime.Price,
	}

	weekday := showtime.ShowDate.Weekday()
	switch {
	case weekday == time.Saturday || weekday == time.Sunday:
		breakdown.Surcharge = PeakSurcharge
		breakdown.SurchargeReason = SurchargeReasonWeekend
	case showtime.StartTime >= EveningCutoff:
		breakdown.Surcharge = PeakSurcharge
		breakdown.SurchargeReason = SurchargeReasonEvening
	}

	breakdown.Total = breakdown.SeatsSubtotal + breakdown.ShowtimeFee + breakdown.Surcharge

	return breakdown, nil
}
