package game

type TSpin int

const (
	TSpinNone TSpin = iota
	TSpinMini
	TSpinFull
)

func (t TSpin) String() string {
	switch t {
	case TSpinMini:
		return "T-Spin Mini"
	case TSpinFull:
		return "T-Spin"
	default:
		return ""
	}
}

// Score tracks points, lines, level and the clear chains.
type Score struct {
	Points int
	Lines  int
	Level  int

	BackToBack bool
	Combo      int // -1 outside a chain

	LastClear string

	FinesseFaults   int
	FinesseOverused int

	startLevel int
}

func NewScore(startLevel int) *Score {
	if startLevel < 1 {
		startLevel = 1
	}

	return &Score{Level: startLevel, Combo: -1, startLevel: startLevel}
}

var clearNames = []string{"", "Single", "Double", "Triple", "Tetris"}

// ApplyClear awards points for a locked piece that cleared lines, updating
// the back-to-back and combo chains, and returns the points awarded.
func (s *Score) ApplyClear(cleared int, tspin TSpin) int {
	var (
		base  int
		b2bOK bool
		text  string
	)

	// Minis clearing more than one line are treated as regular spins.
	if tspin == TSpinMini && cleared > 1 {
		tspin = TSpinFull
	}

	switch tspin {
	case TSpinNone:
		switch cleared {
		case 1:
			base = 100
		case 2:
			base = 300
		case 3:
			base = 500
		case 4:
			base = 800
			b2bOK = true
		}
		text = clearNames[cleared]
	case TSpinMini:
		switch cleared {
		case 0:
			base = 100
			text = "T-Spin Mini"
		case 1:
			base = 200
			text = "T-Spin Mini Single"
			b2bOK = true
		}
	case TSpinFull:
		switch cleared {
		case 0:
			base = 400
			text = "T-Spin"
		case 1:
			base = 800
			text = "T-Spin Single"
			b2bOK = true
		case 2:
			base = 1200
			text = "T-Spin Double"
			b2bOK = true
		case 3:
			base = 1600
			text = "T-Spin Triple"
			b2bOK = true
		}
	}

	if cleared > 0 {
		if b2bOK {
			if s.BackToBack {
				base += base / 2
			}
			s.BackToBack = true
		} else {
			s.BackToBack = false
		}

		s.Combo++
		if s.Combo >= 1 {
			base += 50 * s.Combo
		}

		s.Lines += cleared
		if level := 1 + s.Lines/10; level > s.Level {
			s.Level = level
		}
	} else {
		s.Combo = -1
	}

	s.Points += base

	if cleared > 0 || tspin != TSpinNone {
		s.LastClear = text
	} else {
		s.LastClear = ""
	}

	return base
}

// ApplyFinesse compares the inputs spent on a piece against the minimum
// needed to reach its final placement from spawn.
func (s *Score) ApplyFinesse(inputs int, finalX int, finalRotation int) {
	rotDelta := (finalRotation - SpawnRotation + 4) % 4
	minRot := rotDelta
	if 4-rotDelta < minRot {
		minRot = 4 - rotDelta
	}
	if rotDelta == 2 {
		// A dedicated 180 key exists.
		minRot = 1
	}

	minHoriz := finalX - SpawnX
	if minHoriz < 0 {
		minHoriz = -minHoriz
	}

	minInputs := minHoriz + minRot + 1 // +1 to confirm the drop

	if inputs > minInputs {
		s.FinesseFaults += inputs - minInputs
		s.FinesseOverused++
	}
}

// Reset restores the zero state while keeping the configured start level.
func (s *Score) Reset() {
	*s = *NewScore(s.startLevel)
}
