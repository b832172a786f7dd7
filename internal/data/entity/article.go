package entity

import (
	"time"
)

type Article struct {
	Base
	Title       string    `db:"title"`
	Excerpt     *string   `db:"excerpt"`
	Content     string    `db:"content"`
	ImageURL    *string   `db:"image_url"`
	Author      string    `db:"author"`
	PublishedAt time.Time `db:"published_at"`
}
