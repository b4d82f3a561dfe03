package game

import (
	"fmt"
	"sync"
	"time"
)

// Stopwatch tracks elapsed play time at one second resolution.
type Stopwatch struct {
	Elapsed time.Duration
	Paused  bool

	stopped bool
	done    chan struct{}

	sync.Mutex
}

func NewStopwatch() *Stopwatch {
	sw := &Stopwatch{done: make(chan struct{})}
	go sw.Run()
	return sw
}

func (sw *Stopwatch) String() string {
	sw.Lock()
	defer sw.Unlock()

	return fmt.Sprintf("%d:%02d", int(sw.Elapsed.Minutes()), int(sw.Elapsed.Seconds())%60)
}

func (sw *Stopwatch) Run() {
	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	for {
		select {
		case <-sw.done:
			return
		case <-tick.C:
			sw.Lock()
			if !sw.Paused {
				sw.Elapsed += time.Second
			}
			sw.Unlock()
		}
	}
}

// Stop freezes the elapsed time and releases the ticker.
func (sw *Stopwatch) Stop() {
	sw.Lock()
	defer sw.Unlock()

	if sw.stopped {
		return
	}

	sw.stopped = true
	sw.Paused = true
	close(sw.done)
}

func (sw *Stopwatch) Pause() {
	sw.Lock()
	sw.Paused = true
	sw.Unlock()
}

func (sw *Stopwatch) Resume() {
	sw.Lock()
	sw.Paused = false
	sw.Unlock()
}

func (sw *Stopwatch) Reset() {
	sw.Lock()
	sw.Elapsed = 0
	sw.Unlock()
}
