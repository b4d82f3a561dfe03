package mino

import (
	"math/rand"
	"sync"
)

// Bag is a seven-bag randomizer. Every span of seven consecutive pieces
// contains each tetromino exactly once. Draws are deterministic for a seed.
type Bag struct {
	q []Kind
	r *rand.Rand

	*sync.Mutex
}

func NewBag(seed int64) *Bag {
	b := &Bag{r: rand.New(rand.NewSource(seed)), Mutex: new(sync.Mutex)}

	b.refill()

	return b
}

func (b *Bag) refill() {
	bag := make([]Kind, NumKinds)
	copy(bag, Kinds)

	b.r.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })

	b.q = append(b.q, bag...)
}

// Take removes and returns the next piece kind.
func (b *Bag) Take() Kind {
	b.Lock()
	defer b.Unlock()

	if len(b.q) < NumKinds {
		b.refill()
	}

	k := b.q[0]
	b.q = b.q[1:]

	return k
}

// Preview returns the upcoming n piece kinds without consuming them.
func (b *Bag) Preview(n int) []Kind {
	b.Lock()
	defer b.Unlock()

	for len(b.q) < n {
		b.refill()
	}

	preview := make([]Kind, n)
	copy(preview, b.q[:n])

	return preview
}
