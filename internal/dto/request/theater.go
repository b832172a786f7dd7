package request

type TheaterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Location string `json:"location" validate:"required,min=1,max=200"`
	SeatRows int    `json:"seat_rows" validate:"required,min=1,max=26"`
	SeatCols int    `json:"seat_cols" validate:"required,min=1,max=50"`

	// Harga per tier, minor currency units.
	StandardPrice int64 `json:"standard_price" validate:"required,min=1"`
	PremiumPrice  int64 `json:"premium_price" validate:"omitempty,min=1"`
	VIPPrice      int64 `json:"vip_price" validate:"omitempty,min=1"`
}
