package response

import (
	"movie-storefront/internal/data/entity"
)

type ShowtimeResponse struct {
	ID        string `json:"id"`
	MovieID   string `json:"movie_id"`
	TheaterID string `json:"theater_id"`
	ShowDate  string `json:"show_date"`
	StartTime string `json:"start_time"`
	Price     int64  `json:"price"`
}

type ShowtimeDetailResponse struct {
	ShowtimeResponse
	MovieTitle  string `json:"movie_title"`
	TheaterName string `json:"theater_name"`
}

// Helper converters
func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:        showtime.ID.String(),
		MovieID:   showtime.MovieID.String(),
		TheaterID: showtime.TheaterID.String(),
		ShowDate:  showtime.ShowDate.Format("2006-01-02"),
		StartTime: showtime.StartTime,
		Price:     showtime.Price,
	}
}

func ShowtimeToDetailResponse(showtime *entity.Showtime, movieTitle, theaterName string) ShowtimeDetailResponse {
	return ShowtimeDetailResponse{
		ShowtimeResponse: ShowtimeToResponse(showtime),
		MovieTitle:       movieTitle,
		TheaterName:      theaterName,
	}
}
