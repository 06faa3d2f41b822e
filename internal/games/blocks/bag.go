package blocks

import "math/rand"

// Bag is the 7-bag randomizer: every run of seven draws, aligned to a
// refill, contains each kind exactly once.
// Two bags built from generators with the same seed draw the same sequence.
type Bag struct {
	rng   *rand.Rand
	kinds []Kind
}

// NewBag creates an empty bag; the first draw fills it.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Next removes and returns the last kind of the bag, refilling it with a
// fresh uniform permutation first when it is empty.
func (b *Bag) Next() Kind {
	if len(b.kinds) == 0 {
		b.refill()
	}
	k := b.kinds[len(b.kinds)-1]
	b.kinds = b.kinds[:len(b.kinds)-1]
	return k
}

// Len returns the number of kinds left before the next refill.
func (b *Bag) Len() int {
	return len(b.kinds)
}

// Remaining returns a copy of the kinds still in the bag, in draw order.
func (b *Bag) Remaining() []Kind {
	out := make([]Kind, len(b.kinds))
	for i, k := range b.kinds {
		out[len(b.kinds)-1-i] = k
	}
	return out
}

func (b *Bag) refill() {
	b.kinds = Kinds()
	b.rng.Shuffle(len(b.kinds), func(i, j int) {
		b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i]
	})
}
