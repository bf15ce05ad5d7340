package board

func line(id, sx, sy, ex, ey int) Line {
	return Line{ID: SegmentID(id), Start: Point{X: sx, Y: sy}, End: Point{X: ex, Y: ey}}
}

// wire takes the left table (left, straight, right) followed by the right
// table in the same order.
func wire(id, ll, ls, lr, rl, rs, rr int) Wiring {
	return Wiring{
		ID:    SegmentID(id),
		Left:  [3]SegmentID{SegmentID(ll), SegmentID(ls), SegmentID(lr)},
		Right: [3]SegmentID{SegmentID(rl), SegmentID(rs), SegmentID(rr)},
	}
}

var defaultLines = []Line{
	// forward slashes, starting bottom left
	line(0, 1, 5, 2, 4),
	line(1, 2, 4, 3, 3),
	line(2, 3, 3, 4, 2),
	line(3, 4, 2, 5, 1),
	line(4, 5, 1, 6, 2),
	line(5, 6, 2, 5, 3),
	line(6, 5, 3, 4, 4),
	line(7, 4, 4, 3, 5),
	line(8, 3, 5, 2, 6),
	line(9, 2, 6, 1, 5),
	line(10, 1, 5, 0, 4),
	line(11, 0, 4, 1, 3),
	line(12, 1, 3, 2, 2),
	line(13, 2, 2, 3, 1),
	line(14, 3, 1, 4, 0),
	line(15, 4, 0, 5, 1),

	// backslashes, starting top left
	line(16, 1, 1, 2, 2),
	line(17, 2, 2, 3, 3),
	line(18, 3, 3, 4, 4),
	line(19, 4, 4, 5, 5),
	line(20, 5, 5, 4, 6),
	line(21, 4, 6, 3, 5),
	line(22, 3, 5, 2, 4),
	line(23, 2, 4, 1, 3),
	line(24, 1, 3, 0, 2),
	line(25, 0, 2, 1, 1),
	line(26, 1, 1, 2, 0),
	line(27, 2, 0, 3, 1),
	line(28, 3, 1, 4, 2),
	line(29, 4, 2, 5, 3),
	line(30, 5, 3, 6, 4),
	line(31, 6, 4, 5, 5),
}

var defaultWiring = []Wiring{
	wire(0, 10, 9, 9, 23, 1, 22),
	wire(1, 23, 0, 22, 17, 2, 18),
	wire(2, 17, 1, 18, 28, 3, 29),
	wire(3, 28, 2, 29, 15, 15, 4),
	wire(4, 3, 15, 15, 5, 5, 5),
	wire(5, 29, 6, 30, 4, 4, 4),
	wire(6, 18, 7, 19, 29, 5, 30),
	wire(7, 22, 8, 21, 18, 6, 19),
	wire(8, 9, 9, 9, 22, 7, 21),
	wire(9, 10, 10, 0, 8, 8, 8),
	wire(10, 11, 11, 11, 9, 9, 0),
	wire(11, 10, 10, 10, 24, 12, 23),
	wire(12, 24, 11, 23, 16, 13, 17),
	wire(13, 16, 12, 17, 27, 14, 28),
	wire(14, 27, 13, 28, 15, 15, 15),
	wire(15, 14, 14, 14, 3, 4, 4),
	wire(16, 25, 25, 26, 12, 17, 13),
	wire(17, 12, 16, 13, 1, 18, 2),
	wire(18, 1, 17, 2, 7, 19, 6),
	wire(19, 7, 18, 6, 20, 31, 31),
	wire(20, 21, 21, 21, 19, 31, 31),
	wire(21, 8, 22, 7, 20, 20, 20),
	wire(22, 0, 23, 1, 8, 21, 7),
	wire(23, 11, 24, 12, 0, 22, 1),
	wire(24, 25, 25, 25, 11, 23, 12),
	wire(25, 24, 24, 24, 26, 26, 16),
	wire(26, 25, 25, 16, 27, 27, 27),
	wire(27, 26, 26, 26, 13, 28, 14),
	wire(28, 13, 27, 14, 2, 29, 3),
	wire(29, 2, 28, 3, 6, 30, 5),
	wire(30, 6, 29, 5, 31, 31, 31),
	wire(31, 19, 20, 20, 30, 30, 30),
}
