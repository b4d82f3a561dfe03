package mino

const RotationStates = 4

type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL

	NumKinds = 7
)

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Kinds lists every tetromino once, in bag order.
var Kinds = []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// shapes holds the cell sets of each rotation state relative to the piece
// origin, using the standard rotation system within a 4x4 (I) or 3x3 box.
var shapes = map[Kind][RotationStates]Mino{
	KindI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	KindO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	KindT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	KindJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	KindL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Shape returns the cell set of a kind at a rotation state.
func Shape(k Kind, rotation int) Mino {
	rotation %= RotationStates
	if rotation < 0 {
		rotation += RotationStates
	}

	return shapes[k][rotation]
}

// Piece is an active tetromino: a kind, a rotation state and an origin
// location in matrix coordinates.
type Piece struct {
	Kind     Kind
	Rotation int
	Point
}

func NewPiece(k Kind, at Point) *Piece {
	return &Piece{Kind: k, Point: at}
}

// Cells returns the absolute cells the piece occupies.
func (p *Piece) Cells() Mino {
	return p.CellsAt(p.Rotation, p.Point)
}

// CellsAt returns the absolute cells the piece would occupy at a hypothetical
// rotation state and origin, without moving the piece.
func (p *Piece) CellsAt(rotation int, at Point) Mino {
	return Shape(p.Kind, rotation).Translate(at)
}

func (p *Piece) Solid() Block {
	return p.Kind.Solid()
}

func (p *Piece) Ghost() Block {
	return p.Kind.Ghost()
}
