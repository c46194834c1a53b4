package generator

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the randomness port of the generator. Production uses system
// entropy; tests inject a seeded source to pin outputs down.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// lockedSource serializes access to a *rand.Rand so one generator can be
// shared by concurrent request handlers.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// NewSource returns an entropy-seeded source safe for concurrent use.
func NewSource() Source {
	return &lockedSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededSource returns a deterministic source. Used by tests and by the
// per-id synthesis path so the same id always yields the same hotel.
func NewSeededSource(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}
