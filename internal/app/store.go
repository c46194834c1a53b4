package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"staybook/internal/domain"
	"staybook/internal/generator"
)

// PopulationStore owns the process-wide hotel population. The population is
// generated exactly once, lazily on first use, and is stable until restart.
// Hotels outside the population are synthesized from a source seeded with
// their id, so repeated lookups of the same id agree, and memoized.
type PopulationStore struct {
	size int
	gen  *generator.Generator

	once    sync.Once
	hotels  []domain.Hotel
	byID    map[int]domain.Hotel
	extraMu sync.RWMutex
	extra   map[int]domain.Hotel
}

func NewPopulationStore(gen *generator.Generator, size int) *PopulationStore {
	return &PopulationStore{
		size:  size,
		gen:   gen,
		extra: make(map[int]domain.Hotel),
	}
}

func (s *PopulationStore) populate() {
	hotels, err := s.gen.Hotels(s.size, "")
	if err != nil {
		// size is validated at construction call sites; an error here is a bug
		log.Error().Err(err).Int("size", s.size).Msg("population generation failed")
		hotels = nil
	}
	s.hotels = hotels
	s.byID = make(map[int]domain.Hotel, len(hotels))
	for _, h := range hotels {
		s.byID[h.ID] = h
	}
	log.Info().Int("count", len(hotels)).Msg("hotel population generated")
}

func (s *PopulationStore) All(ctx context.Context) []domain.Hotel {
	s.once.Do(s.populate)
	return s.hotels
}

func (s *PopulationStore) ByID(ctx context.Context, id int) (domain.Hotel, error) {
	if id <= 0 {
		return domain.Hotel{}, domain.ErrNotFound
	}
	s.once.Do(s.populate)
	if h, ok := s.byID[id]; ok {
		return h, nil
	}

	s.extraMu.RLock()
	h, ok := s.extra[id]
	s.extraMu.RUnlock()
	if ok {
		return h, nil
	}

	// Deterministic per-id synthesis: the same id yields the same hotel
	// across lookups and across restarts.
	h = generator.New(generator.NewSeededSource(int64(id))).Hotel(id, "")
	s.extraMu.Lock()
	if prev, ok := s.extra[id]; ok {
		h = prev
	} else {
		s.extra[id] = h
	}
	s.extraMu.Unlock()
	return h, nil
}

func (s *PopulationStore) ForLocation(ctx context.Context, location string, n int) []domain.Hotel {
	hotels, err := s.gen.Hotels(n, location)
	if err != nil {
		log.Error().Err(err).Str("location", location).Msg("location batch generation failed")
		return nil
	}
	return hotels
}
