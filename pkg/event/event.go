package event

type DrawObject int

const (
	DrawAll DrawObject = iota
	DrawPlayerMatrix
	DrawMessages
)

type Event struct {
	Message string
}

type GameOverEvent struct {
	Event
}

type PauseEvent struct {
	Event
	Paused bool
}

// ScoreEvent carries the points awarded when a piece locks, along with a
// description of the clear ("T-Spin Double", "Tetris") when there is one.
type ScoreEvent struct {
	Event
	Score int
}
