package mino

type rotationPair struct {
	From, To int
}

// SRS wall kick offsets, tried in order. Offsets apply as (X+dx, Y+dy) with Y
// growing downward.
var kicksJLSTZ = map[rotationPair][]Point{
	{0, 1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{1, 0}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{1, 2}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{2, 1}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{2, 3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{3, 2}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{3, 0}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{0, 3}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

var kicksI = map[rotationPair][]Point{
	{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

// Lenient 180 kicks: nudge one cell in each direction, then two cells
// horizontally, before giving up.
var kicks180JLSTZ = []Point{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}, {2, 0}, {-2, 0}, {1, 1}, {-1, 1}}
var kicks180I = []Point{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}, {2, 0}, {-2, 0}}
var kicks180O = []Point{{0, 0}}

// KickOffsets returns the offsets to try for a rotation of kind k from one
// rotation state to another.
func KickOffsets(k Kind, from int, to int) []Point {
	if (to-from+RotationStates)%RotationStates == 2 {
		switch k {
		case KindI:
			return kicks180I
		case KindO:
			return kicks180O
		default:
			return kicks180JLSTZ
		}
	}

	if k == KindO {
		return kicks180O
	}

	table := kicksJLSTZ
	if k == KindI {
		table = kicksI
	}

	if offsets, ok := table[rotationPair{from, to}]; ok {
		return offsets
	}

	return []Point{{0, 0}}
}
