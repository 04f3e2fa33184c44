package services

import (
	"math/rand"
	"sync"
	"time"
)

// Picker is the source of randomness for featured/related shuffles and for
// sample checkout ids.
type Picker interface {
	Shuffle(n int, swap func(i, j int))
	Intn(n int) int
}

type randPicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomPicker() Picker {
	return &randPicker{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *randPicker) Shuffle(n int, swap func(i, j int)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rnd.Shuffle(n, swap)
}

func (p *randPicker) Intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rnd.Intn(n)
}
