package ztrix

import "math/rand"

// Bag deals shape indices in shuffled rounds: every shape appears exactly
// once per round, so droughts are bounded.
type Bag struct {
	rng   *rand.Rand
	size  int
	queue []int
}

// NewBag creates a bag over size shapes drawing from rng.
func NewBag(size int, rng *rand.Rand) *Bag {
	return &Bag{rng: rng, size: size}
}

// Next removes and returns the next shape index.
func (b *Bag) Next() int {
	b.fill(1)
	next := b.queue[0]
	b.queue = b.queue[1:]
	return next
}

// Peek returns the next n shape indices without removing them.
func (b *Bag) Peek(n int) []int {
	b.fill(n)
	return append([]int(nil), b.queue[:n]...)
}

func (b *Bag) fill(n int) {
	for len(b.queue) < n {
		b.queue = append(b.queue, b.rng.Perm(b.size)...)
	}
}
