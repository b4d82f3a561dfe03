package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

func TestNewGameSeed(t *testing.T) {
	a := NewGame(42, 1, nil)
	b := NewGame(42, 1, nil)

	assert.Equal(t, a.Next, b.Next)

	c := NewGame(0, 1, nil)
	assert.NotZero(t, c.Seed)
}

func TestSpawn(t *testing.T) {
	g := NewGame(42, 1, nil)

	next := g.Next[0]
	require.True(t, g.takePiece())

	p := g.Matrix.P
	require.NotNil(t, p)
	assert.Equal(t, next, p.Kind)
	assert.Equal(t, SpawnX, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, SpawnRotation, p.Rotation)
	assert.Len(t, g.Next, NextCount)
}

func TestMoveLeftToWall(t *testing.T) {
	g := NewGame(42, 1, nil)
	require.True(t, g.spawn(mino.KindT))

	for g.movePiece(-1) {
	}

	assert.Equal(t, 0, g.Matrix.P.X)

	for g.movePiece(1) {
	}

	// T occupies columns 0-2 of its box
	assert.Equal(t, g.Matrix.W-3, g.Matrix.P.X)
}

func TestSoftDrop(t *testing.T) {
	g := NewGame(42, 1, nil)
	require.True(t, g.spawn(mino.KindT))

	g.softDrop()

	assert.Equal(t, 1, g.Matrix.P.Y)
	assert.Equal(t, 1, g.Score.Points)
}

func TestHardDrop(t *testing.T) {
	g := NewGame(42, 1, nil)
	require.True(t, g.spawn(mino.KindO))

	g.hardDrop()

	m := g.Matrix
	bottom := m.H + m.B - 1

	assert.Equal(t, mino.BlockSolidYellow, m.M[I(4, bottom, m.W)])
	assert.Equal(t, mino.BlockSolidYellow, m.M[I(5, bottom-1, m.W)])

	// Twenty rows dropped at two points per cell
	assert.Equal(t, 40, g.Score.Points)

	// The next piece spawns immediately
	require.NotNil(t, m.P)
	assert.Equal(t, 0, m.P.Y)
	assert.False(t, g.landed)
}

func TestRotate(t *testing.T) {
	g := NewGame(42, 1, nil)
	require.True(t, g.spawn(mino.KindT))
	g.Matrix.P.Y = 5

	require.True(t, g.rotatePiece(1))
	assert.Equal(t, 1, g.Matrix.P.Rotation)
	assert.True(t, g.lastRotation)

	require.True(t, g.rotatePiece(-1))
	assert.Equal(t, 0, g.Matrix.P.Rotation)

	require.True(t, g.rotatePiece(2))
	assert.Equal(t, 2, g.Matrix.P.Rotation)
}

func TestRotateWallKick(t *testing.T) {
	g := NewGame(42, 1, nil)
	require.True(t, g.spawn(mino.KindT))

	p := g.Matrix.P
	p.Rotation = 1
	p.Point = mino.Point{X: -1, Y: 5}

	// Rotating against the wall kicks the piece one column right
	require.True(t, g.rotatePiece(1))
	assert.Equal(t, 2, p.Rotation)
	assert.Equal(t, 0, p.X)
}

func TestHold(t *testing.T) {
	g := NewGame(42, 1, nil)
	require.True(t, g.takePiece())

	first := g.Matrix.P.Kind
	upcoming := g.Next[0]

	g.holdActive()

	require.True(t, g.HasHold)
	assert.Equal(t, first, g.HoldKind)
	assert.Equal(t, upcoming, g.Matrix.P.Kind)

	// Holding again before the piece locks is ignored
	g.holdActive()
	assert.Equal(t, first, g.HoldKind)
	assert.Equal(t, upcoming, g.Matrix.P.Kind)
}

func TestHoldSwapsBack(t *testing.T) {
	g := NewGame(42, 1, nil)
	require.True(t, g.takePiece())

	first := g.Matrix.P.Kind
	g.holdActive()

	g.hardDrop()

	second := g.Matrix.P.Kind
	g.holdActive()

	assert.Equal(t, first, g.Matrix.P.Kind)
	assert.Equal(t, second, g.HoldKind)
}

func TestDetectTSpin(t *testing.T) {
	g := NewGame(42, 1, nil)
	m := g.Matrix
	bottom := m.H + m.B - 1

	p := mino.NewPiece(mino.KindT, mino.Point{X: 0, Y: bottom - 2})
	p.Rotation = 2
	m.P = p
	g.lastRotation = true

	// Three filled corners with both front corners covered
	m.M[I(0, bottom, m.W)] = mino.BlockSolidCyan
	m.M[I(2, bottom, m.W)] = mino.BlockSolidCyan
	m.M[I(0, bottom-2, m.W)] = mino.BlockSolidCyan

	assert.Equal(t, TSpinFull, g.detectTSpin())

	// Without the final rotation there is no spin
	g.lastRotation = false
	assert.Equal(t, TSpinNone, g.detectTSpin())
}

func TestDetectTSpinMini(t *testing.T) {
	g := NewGame(42, 1, nil)
	m := g.Matrix
	bottom := m.H + m.B - 1

	p := mino.NewPiece(mino.KindT, mino.Point{X: 0, Y: bottom - 2})
	p.Rotation = 2
	m.P = p
	g.lastRotation = true

	// Three filled corners but only one in front
	m.M[I(0, bottom-2, m.W)] = mino.BlockSolidCyan
	m.M[I(2, bottom-2, m.W)] = mino.BlockSolidCyan
	m.M[I(0, bottom, m.W)] = mino.BlockSolidCyan

	assert.Equal(t, TSpinMini, g.detectTSpin())
}

func TestPause(t *testing.T) {
	g := NewGame(42, 1, nil)
	require.True(t, g.spawn(mino.KindT))

	g.ProcessAction(event.ActionPause)
	assert.True(t, g.Paused)

	e := <-g.Event
	pe, ok := e.(*event.PauseEvent)
	require.True(t, ok)
	assert.True(t, pe.Paused)

	// Movement is ignored while paused
	g.ProcessAction(event.ActionSoftDrop)
	assert.Equal(t, 0, g.Matrix.P.Y)

	g.ProcessAction(event.ActionPause)
	assert.False(t, g.Paused)
}

func TestTopOut(t *testing.T) {
	g := NewGame(42, 1, nil)
	m := g.Matrix

	for y := 0; y < 3; y++ {
		for x := 3; x < 7; x++ {
			m.M[I(x, y, m.W)] = mino.BlockSolidRed
		}
	}

	g.Start()

	require.True(t, g.GameOver)

	e := <-g.Event
	_, ok := e.(*event.GameOverEvent)
	require.True(t, ok)

	// Input is ignored after the game ends
	g.ProcessAction(event.ActionMoveLeft)
}

func TestLineClearScores(t *testing.T) {
	g := NewGame(42, 1, nil)
	m := g.Matrix
	bottom := m.H + m.B - 1

	// Leave columns 4 and 5 open for the O piece
	for x := 0; x < m.W; x++ {
		if x == 4 || x == 5 {
			continue
		}
		m.M[I(x, bottom, m.W)] = mino.BlockSolidCyan
		m.M[I(x, bottom-1, m.W)] = mino.BlockSolidCyan
	}

	require.True(t, g.spawn(mino.KindO))

	g.hardDrop()

	assert.Equal(t, 2, g.Score.Lines)
	// 300 for the double plus 40 points of hard drop
	assert.Equal(t, 340, g.Score.Points)
	assert.Equal(t, "Double", g.Score.LastClear)

	e := <-g.Event
	se, ok := e.(*event.ScoreEvent)
	require.True(t, ok)
	assert.Equal(t, 300, se.Score)
	assert.Equal(t, "Double", se.Message)

	for x := 0; x < m.W; x++ {
		assert.True(t, m.Empty(x, bottom), "row should be empty after clear")
	}
}

func TestFallTime(t *testing.T) {
	g := NewGame(42, 1, nil)

	assert.Equal(t, BaseFallTime, g.FallTime())

	g.Score.Level = 5
	assert.Less(t, g.FallTime(), BaseFallTime)

	g.Score.Level = 30
	assert.Equal(t, MinFallTime, g.FallTime())
}

func TestLockDelayPaused(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping lock delay test in short mode")
	}

	g := NewGame(42, 1, nil)
	require.True(t, g.spawn(mino.KindO))

	g.Lock()
	p := g.Matrix.P
	p.Y = g.Matrix.GhostY()
	g.landPiece()
	g.togglePause()
	g.Unlock()

	// A pause longer than the whole lock delay
	time.Sleep(LockDelay + 200*time.Millisecond)

	g.Lock()
	g.togglePause()
	g.Unlock()

	time.Sleep(LockDelay / 2)

	g.Lock()
	assert.Same(t, p, g.Matrix.P, "paused time counted against the lock delay")
	assert.False(t, g.landed)
	g.Unlock()

	time.Sleep(LockDelay + 200*time.Millisecond)

	g.Lock()
	defer g.Unlock()

	assert.NotSame(t, p, g.Matrix.P, "piece should lock once the delay elapses after resume")
	assert.NotEqual(t, mino.BlockNone, g.Matrix.M[I(4, g.Matrix.H+g.Matrix.B-1, g.Matrix.W)])
}

func TestLockDelayResetCap(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping lock delay test in short mode")
	}

	g := NewGame(42, 1, nil)
	require.True(t, g.spawn(mino.KindO))

	g.Lock()
	g.Matrix.P.Y = g.Matrix.GhostY()
	g.landPiece()
	g.Unlock()

	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			g.ProcessAction(event.ActionMoveRight)
		} else {
			g.ProcessAction(event.ActionMoveLeft)
		}
	}

	g.Lock()
	assert.Equal(t, MaxLockResets, g.resets, "resets should stop accumulating at the cap")
	g.Unlock()

	// With the resets exhausted the piece locks despite the movement
	time.Sleep(LockDelay + 300*time.Millisecond)

	g.Lock()
	defer g.Unlock()

	m := g.Matrix
	assert.NotEqual(t, mino.BlockNone, m.M[I(4, m.H+m.B-1, m.W)], "piece should have locked")
	require.NotNil(t, m.P)
	assert.Equal(t, 0, m.P.Y, "next piece should have spawned")
}

func TestLockDelay(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping lock delay test in short mode")
	}

	g := NewGame(42, 1, nil)
	require.True(t, g.spawn(mino.KindO))

	g.Lock()
	p := g.Matrix.P
	p.Y = g.Matrix.GhostY()
	g.landPiece()
	g.Unlock()

	time.Sleep(LockDelay + 200*time.Millisecond)

	g.Lock()
	defer g.Unlock()

	assert.NotEqual(t, p, g.Matrix.P, "piece should have locked and been replaced")
	assert.NotEqual(t, mino.BlockNone, g.Matrix.M[I(4, g.Matrix.H+g.Matrix.B-1, g.Matrix.W)])
}
