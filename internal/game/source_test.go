package game

import "math/rand"

// scriptedSource replays fixed Intn results, then falls back to a seeded
// generator. Scripted values are clamped into [0, n).
type scriptedSource struct {
	script []int
	rest   *rand.Rand
}

func newScriptedSource(script ...int) *scriptedSource {
	return &scriptedSource{script: script, rest: rand.New(rand.NewSource(1))}
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.script) == 0 {
		return s.rest.Intn(n)
	}
	v := s.script[0]
	s.script = s.script[1:]
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// constSource always returns the same draw.
type constSource int

func (c constSource) Intn(n int) int {
	if int(c) >= n {
		return n - 1
	}
	return int(c)
}
