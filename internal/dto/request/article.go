package request

type ArticleRequest struct {
	Title    string  `json:"title" validate:"required,min=1,max=200"`
	Excerpt  *string `json:"excerpt,omitempty" validate:"omitempty,max=300"`
	Content  string  `json:"content" validate:"required,min=1"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Author   string  `json:"author" validate:"required,min=1,max=100"`
}
