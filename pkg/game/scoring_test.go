package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyClear(t *testing.T) {
	cases := []struct {
		name    string
		cleared int
		tspin   TSpin
		points  int
		text    string
	}{
		{"Single", 1, TSpinNone, 100, "Single"},
		{"Double", 2, TSpinNone, 300, "Double"},
		{"Triple", 3, TSpinNone, 500, "Triple"},
		{"Tetris", 4, TSpinNone, 800, "Tetris"},
		{"TSpinNoClear", 0, TSpinFull, 400, "T-Spin"},
		{"TSpinSingle", 1, TSpinFull, 800, "T-Spin Single"},
		{"TSpinDouble", 2, TSpinFull, 1200, "T-Spin Double"},
		{"TSpinTriple", 3, TSpinFull, 1600, "T-Spin Triple"},
		{"MiniNoClear", 0, TSpinMini, 100, "T-Spin Mini"},
		{"MiniSingle", 1, TSpinMini, 200, "T-Spin Mini Single"},
		{"MiniDoublePromoted", 2, TSpinMini, 1200, "T-Spin Double"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewScore(1)

			awarded := s.ApplyClear(c.cleared, c.tspin)

			assert.Equal(t, c.points, awarded)
			assert.Equal(t, c.points, s.Points)
			assert.Equal(t, c.text, s.LastClear)
			assert.Equal(t, c.cleared, s.Lines)
		})
	}
}

func TestBackToBack(t *testing.T) {
	s := NewScore(1)

	awarded := s.ApplyClear(4, TSpinNone)
	require.Equal(t, 800, awarded)
	require.True(t, s.BackToBack)

	// Chained Tetris: 800 + 400 back-to-back + 50 combo
	awarded = s.ApplyClear(4, TSpinNone)
	assert.Equal(t, 1250, awarded)
	assert.True(t, s.BackToBack)

	// A plain single breaks the chain but continues the combo
	awarded = s.ApplyClear(1, TSpinNone)
	assert.Equal(t, 200, awarded)
	assert.False(t, s.BackToBack)
}

func TestBackToBackTSpin(t *testing.T) {
	s := NewScore(1)

	require.Equal(t, 1200, s.ApplyClear(2, TSpinFull))
	require.True(t, s.BackToBack)

	// 1200 + 600 back-to-back + 50 combo
	assert.Equal(t, 1850, s.ApplyClear(2, TSpinFull))
}

func TestCombo(t *testing.T) {
	s := NewScore(1)

	assert.Equal(t, 100, s.ApplyClear(1, TSpinNone))
	assert.Equal(t, 150, s.ApplyClear(1, TSpinNone))
	assert.Equal(t, 200, s.ApplyClear(1, TSpinNone))

	// A lock without a clear resets the combo
	assert.Equal(t, 0, s.ApplyClear(0, TSpinNone))
	assert.Equal(t, -1, s.Combo)

	assert.Equal(t, 100, s.ApplyClear(1, TSpinNone))
}

func TestLevelProgression(t *testing.T) {
	s := NewScore(1)

	for i := 0; i < 10; i++ {
		s.ApplyClear(1, TSpinNone)
	}

	assert.Equal(t, 10, s.Lines)
	assert.Equal(t, 2, s.Level)
}

func TestLevelKeepsStart(t *testing.T) {
	s := NewScore(5)

	for i := 0; i < 10; i++ {
		s.ApplyClear(1, TSpinNone)
	}

	assert.Equal(t, 5, s.Level)
}

func TestApplyFinesse(t *testing.T) {
	s := NewScore(1)

	// Two columns over, one rotation, one drop: four inputs minimum
	s.ApplyFinesse(4, SpawnX+2, 1)
	assert.Equal(t, 0, s.FinesseFaults)
	assert.Equal(t, 0, s.FinesseOverused)

	s.ApplyFinesse(6, SpawnX+2, 1)
	assert.Equal(t, 2, s.FinesseFaults)
	assert.Equal(t, 1, s.FinesseOverused)

	// A 180 rotation counts as one input
	s.ApplyFinesse(2, SpawnX, 2)
	assert.Equal(t, 2, s.FinesseFaults)
}

func TestScoreReset(t *testing.T) {
	s := NewScore(3)
	s.ApplyClear(4, TSpinNone)

	s.Reset()

	assert.Equal(t, 0, s.Points)
	assert.Equal(t, 0, s.Lines)
	assert.Equal(t, 3, s.Level)
	assert.Equal(t, -1, s.Combo)
	assert.False(t, s.BackToBack)
}
