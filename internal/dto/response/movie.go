package response

import (
	"time"

	"movie-storefront/internal/data/entity"
)

type MovieResponse struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	PosterURL         *string  `json:"poster_url,omitempty"`
	Rating            float64  `json:"rating"`
	ReleaseDate       string   `json:"release_date"`
	DurationInMinutes int      `json:"duration_in_minutes"`
	Genres            []string `json:"genres"`
	ReleaseStatus     string   `json:"release_status"`
}

type MovieDetailResponse struct {
	MovieResponse
	Synopsis    *string    `json:"synopsis,omitempty"`
	BackdropURL *string    `json:"backdrop_url,omitempty"`
	Director    *string    `json:"director,omitempty"`
	Actors      *string    `json:"actors,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie, genres []string) MovieResponse {
	if genres == nil {
		genres = []string{}
	}

	return MovieResponse{
		ID:                movie.ID.String(),
		Title:             movie.Title,
		PosterURL:         movie.PosterURL,
		Rating:            movie.Rating,
		ReleaseDate:       movie.ReleaseDate.Format("2006-01-02"),
		DurationInMinutes: movie.DurationInMinutes,
		Genres:            genres,
		ReleaseStatus:     string(movie.ReleaseStatus),
	}
}

func MovieToDetailResponse(movie *entity.Movie, genres []string) MovieDetailResponse {
	return MovieDetailResponse{
		MovieResponse: MovieToResponse(movie, genres),
		Synopsis:      movie.Synopsis,
		BackdropURL:   movie.BackdropURL,
		Director:      movie.Director,
		Actors:        movie.Actors,
		CreatedAt:     movie.CreatedAt,
		UpdatedAt:     &movie.UpdatedAt,
	}
}

type GenreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID.String(),
		Name: genre.Name,
	}
}
