package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is the volatile fallback used when DATABASE_URL is not
// configured. Contents are lost on restart; the admin panel warns that
// persistence is temporary. Safe for concurrent handlers.
type MemoryStore struct {
	mu         sync.Mutex
	casinos    []Casino
	billboards []Billboard
}

// NewMemoryStore returns a store pre-seeded with the default site data.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		casinos:    DefaultCasinos(),
		billboards: DefaultBillboards(),
	}
}

// NewEmptyMemoryStore returns a store with no data, mainly for tests.
func NewEmptyMemoryStore() *MemoryStore {
	return &MemoryStore{
		casinos:    make([]Casino, 0),
		billboards: make([]Billboard, 0),
	}
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) ListCasinos(context.Context) ([]Casino, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Casino, len(s.casinos))
	copy(out, s.casinos)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out, nil
}

func (s *MemoryStore) ReplaceCasinos(_ context.Context, items []Casino) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.casinos = make([]Casino, len(items))
	copy(s.casinos, items)
	return nil
}

func (s *MemoryStore) InsertCasino(_ context.Context, c Casino) (Casino, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.casinos = append(s.casinos, c)
	return c, nil
}

func (s *MemoryStore) UpdateCasino(_ context.Context, c Casino) (Casino, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.casinos {
		if s.casinos[i].ID == c.ID {
			s.casinos[i] = c
			return c, nil
		}
	}
	return Casino{}, ErrNotFound
}

func (s *MemoryStore) DeleteCasino(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.casinos {
		if s.casinos[i].ID == id {
			s.casinos = append(s.casinos[:i], s.casinos[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) ListBillboards(context.Context) ([]Billboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Billboard, len(s.billboards))
	copy(out, s.billboards)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *MemoryStore) ReplaceBillboards(_ context.Context, items []Billboard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.billboards = make([]Billboard, len(items))
	copy(s.billboards, items)
	return nil
}

func (s *MemoryStore) InsertBillboard(_ context.Context, b Billboard) (Billboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.billboards = append(s.billboards, b)
	return b, nil
}

func (s *MemoryStore) UpdateBillboard(_ context.Context, b Billboard) (Billboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.billboards {
		if s.billboards[i].ID == b.ID {
			s.billboards[i] = b
			return b, nil
		}
	}
	return Billboard{}, ErrNotFound
}

func (s *MemoryStore) DeleteBillboard(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.billboards {
		if s.billboards[i].ID == id {
			s.billboards = append(s.billboards[:i], s.billboards[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
