package lobby

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
)

type memRepo struct {
	mu      sync.Mutex
	pools   map[string]map[int64]struct{} // pool key -> set of player ids
	players map[int64]string              // player id -> pool key
}

// NewMemoryRepo backs the lobby with process memory, for tests and
// single-node runs.
func NewMemoryRepo() Repo {
	return &memRepo{
		pools:   make(map[string]map[int64]struct{}),
		players: make(map[int64]string),
	}
}

func memKey(stakes string, tableSize int) string {
	return fmt.Sprintf("lobby:pool:%s:%d", stakes, tableSize)
}

func (m *memRepo) Enqueue(_ context.Context, stakes string, tableSize int, playerID int64, _ int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := memKey(stakes, tableSize)
	if _, ok := m.pools[key]; !ok {
		m.pools[key] = make(map[int64]struct{})
	}
	m.pools[key][playerID] = struct{}{}
	m.players[playerID] = key
	return nil
}

func (m *memRepo) PopN(_ context.Context, stakes string, tableSize int, n int) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := memKey(stakes, tableSize)
	s, ok := m.pools[key]
	if !ok || len(s) < n {
		return []int64{}, nil
	}

	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	chosen := ids[:n]
	for _, id := range chosen {
		delete(s, id)
		delete(m.players, id)
	}
	if len(s) == 0 {
		delete(m.pools, key)
	}
	return chosen, nil
}

func (m *memRepo) Remove(_ context.Context, playerID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.players[playerID]
	if !ok {
		return nil
	}
	if s, ok := m.pools[key]; ok {
		delete(s, playerID)
	}
	delete(m.players, playerID)
	return nil
}

func (m *memRepo) Count(_ context.Context, stakes string, tableSize int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.pools[memKey(stakes, tableSize)])), nil
}
