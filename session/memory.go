package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps sessions in process memory. It serializes sessions the
// same way the redis store does, so a session observed through either store
// behaves identically. The mutex guards the map against concurrent requests
// hitting the store at once.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	raw, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &sess, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", id, err)
	}
	s.mu.Lock()
	s.sessions[id] = raw
	s.mu.Unlock()
	return nil
}
