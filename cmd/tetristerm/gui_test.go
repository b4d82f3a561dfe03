package main

import (
	"testing"

	"github.com/qnkhuat/tetristerm/pkg/game"
)

func TestRenderMatrix(t *testing.T) {
	renderLock.Lock()
	defer renderLock.Unlock()

	blockSize = 1

	m := game.NewTestMatrix()
	m.AddTestBlocks()

	renderMatrix(m)

	if renderBuffer.Len() == 0 {
		t.Error("expected rendered matrix, got empty buffer")
	}
}

func BenchmarkRenderStandardMatrix(b *testing.B) {
	renderLock.Lock()
	defer renderLock.Unlock()

	blockSize = 1

	m := game.NewTestMatrix()
	m.AddTestBlocks()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		renderMatrix(m)
	}
}

func BenchmarkRenderLargeMatrix(b *testing.B) {
	renderLock.Lock()
	defer renderLock.Unlock()

	blockSize = 2

	m := game.NewTestMatrix()
	m.AddTestBlocks()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		renderMatrix(m)
	}

	blockSize = 1
}
