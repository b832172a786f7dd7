package entity

type Theater struct {
	Base
	Name     string `db:"name"`
	Location string `db:"location"`
	SeatRows int    `db:"seat_rows"`
	SeatCols int    `db:"seat_cols"`
}
