package mino

type Block int

const (
	BlockNone Block = iota
	BlockGhostCyan
	BlockGhostYellow
	BlockGhostMagenta
	BlockGhostGreen
	BlockGhostRed
	BlockGhostBlue
	BlockGhostWhite
	BlockSolidCyan
	BlockSolidYellow
	BlockSolidMagenta
	BlockSolidGreen
	BlockSolidRed
	BlockSolidBlue
	BlockSolidWhite
)

func (b Block) String() string {
	return string(b.Rune())
}

func (b Block) Rune() rune {
	switch b {
	case BlockNone:
		return ' '
	case BlockGhostCyan, BlockGhostYellow, BlockGhostMagenta, BlockGhostGreen, BlockGhostRed, BlockGhostBlue, BlockGhostWhite:
		return '▓'
	case BlockSolidCyan, BlockSolidYellow, BlockSolidMagenta, BlockSolidGreen, BlockSolidRed, BlockSolidBlue, BlockSolidWhite:
		return '█'
	default:
		return '?'
	}
}

// Ghost converts a solid block to its ghost variant.
func (b Block) Ghost() Block {
	if b >= BlockSolidCyan {
		return b - (BlockSolidCyan - BlockGhostCyan)
	}

	return b
}

func (k Kind) Solid() Block {
	switch k {
	case KindI:
		return BlockSolidCyan
	case KindO:
		return BlockSolidYellow
	case KindT:
		return BlockSolidMagenta
	case KindS:
		return BlockSolidGreen
	case KindZ:
		return BlockSolidRed
	case KindJ:
		return BlockSolidBlue
	default:
		return BlockSolidWhite
	}
}

func (k Kind) Ghost() Block {
	return k.Solid().Ghost()
}
