package game

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the only randomness the engine uses. Intn must return an
// unbiased integer in [0, n); *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func NewTimeSource() *rand.Rand {
	return NewSource(time.Now().UnixNano())
}

// LockedSource lets one Source be shared between goroutines.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

func (l *LockedSource) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Intn(n)
}

// between draws uniformly from the closed interval [lo, hi].
func between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

func shuffle(src Source, answers []Answer) {
	for i := len(answers) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		answers[i], answers[j] = answers[j], answers[i]
	}
}
