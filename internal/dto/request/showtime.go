package request

type ShowtimeRequest struct {
	MovieID   string `json:"movie_id" validate:"required,uuid4"`
	TheaterID string `json:"theater_id" validate:"required,uuid4"`
	ShowDate  string `json:"show_date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	Price     int64  `json:"price" validate:"required,min=1"`
}
