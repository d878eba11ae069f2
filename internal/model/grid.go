package model

// NewGrid builds the full seat grid for a hall: one unassigned seat per
// (row, column, seatInBench) triple, covering the complete cross-product of
// the hall's dimensions.  Seats are produced row-major with the bench
// position varying fastest, which matches the order they are displayed and
// inserted in.
func NewGrid(hallID uint64, rows, columns, seatsPerBench uint32) []Seat {
	seats := make([]Seat, 0, int(rows)*int(columns)*int(seatsPerBench))
	for r := uint32(1); r <= rows; r++ {
		for c := uint32(1); c <= columns; c++ {
			for s := uint32(1); s <= seatsPerBench; s++ {
				seats = append(seats, Seat{
					HallID:      hallID,
					Row:         r,
					Column:      c,
					SeatInBench: s,
				})
			}
		}
	}
	return seats
}
