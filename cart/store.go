package cart

import "sync"

// AnonymousKey is the storage slot used before login.
const AnonymousKey = "cart"

// UserKey returns the storage slot for a user ID, falling back to the
// anonymous slot when empty.
func UserKey(userID string) string {
	if userID == "" {
		return AnonymousKey
	}
	return "cart_" + userID
}

// Store persists the full line list for a user key. Implementations
// must treat Save as a replace of the previous state.
type Store interface {
	Load(userKey string) ([]Line, error)
	Save(userKey string, lines []Line) error
}

// MemoryStore is a mutex-guarded in-memory Store.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string][]Line
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]Line)}
}

func (s *MemoryStore) Load(userKey string) ([]Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]Line, len(s.slots[userKey]))
	copy(lines, s.slots[userKey])
	return lines, nil
}

func (s *MemoryStore) Save(userKey string, lines []Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]Line, len(lines))
	copy(stored, lines)
	s.slots[userKey] = stored
	return nil
}
