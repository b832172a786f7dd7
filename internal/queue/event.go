package queue

// Event payloads published to the message broker. They carry enough for
// downstream consumers (notifications, analytics) without querying the
// primary database.

type BookingCreatedEvent struct {
	BookingID   string   `json:"booking_id"`
	BookingCode string   `json:"booking_code"`
	UserID      string   `json:"user_id"`
	ShowtimeID  string   `json:"showtime_id"`
	MovieTitle  string   `json:"movie_title"`
	TheaterName string   `json:"theater_name"`
	ShowDate    string   `json:"show_date"`
	StartTime   string   `json:"start_time"`
	SeatLabels  []string `json:"seats"`
	TotalPrice  int64    `json:"total_price"`
	CreatedAt   string   `json:"created_at"`
}

type BookingCancelledEvent struct {
	BookingID   string `json:"booking_id"`
	BookingCode string `json:"booking_code"`
	ShowtimeID  string `json:"showtime_id"`
	CancelledAt string `json:"cancelled_at"`
}

type BookingExpiredEvent struct {
	BookingID   string `json:"booking_id"`
	BookingCode string `json:"booking_code"`
	ShowtimeID  string `json:"showtime_id"`
	ExpiredAt   string `json:"expired_at"`
}
