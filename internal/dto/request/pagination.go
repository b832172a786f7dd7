package request

type PaginatedRequest struct {
	Page    int `json:"page" validate:"omitempty,min=1"`
	PerPage int `json:"per_page" validate:"omitempty,min=1,max=100"`
}

// Normalize mengisi default pagination kalau kosong.
func (p *PaginatedRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 10
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

func (p *PaginatedRequest) Limit() int {
	return p.PerPage
}

func (p *PaginatedRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}
