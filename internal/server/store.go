// internal/server/store.go
package server

import (
	"crypto/rand"
	"fmt"
	"sync"

	"github.com/AquaKing123/quartets-server/internal/game"
)

// roomAlphabet drops the characters players misread over a shoulder
// (I, O, 0, 1).
const roomAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const roomCodeLength = 4

// Store is the in-memory room registry. Its lock only guards the map;
// session state is guarded by each session's own mutex.
type Store struct {
	mu    sync.Mutex
	rooms map[string]*game.Game
}

func NewStore() *Store {
	return &Store{rooms: make(map[string]*game.Game)}
}

// CreateRoom allocates a lobby-phase session under a fresh room code.
// configure, when non-nil, runs on the new session before it is published
// in the registry, so callers can stamp rules and callbacks without racing
// a concurrent Get on the same code.
func (s *Store) CreateRoom(configure func(*game.Game)) (*game.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for attempt := 0; attempt < 100; attempt++ {
		code, err := generateRoomCode(roomCodeLength)
		if err != nil {
			return nil, fmt.Errorf("generate room code: %w", err)
		}
		if _, taken := s.rooms[code]; taken {
			continue
		}
		g := game.NewGame(code)
		if configure != nil {
			configure(g)
		}
		s.rooms[code] = g
		return g, nil
	}
	return nil, fmt.Errorf("could not allocate a free room code")
}

// Get looks up a session by room code.
func (s *Store) Get(code string) (*game.Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.rooms[code]
	return g, ok
}

// Remove drops a session from the registry.
func (s *Store) Remove(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
}

// Count reports the number of live rooms.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}

// generateRoomCode draws n characters from roomAlphabet. The alphabet size
// divides 256, so a plain modulo stays uniform.
func generateRoomCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = roomAlphabet[int(b)%len(roomAlphabet)]
	}
	return string(out), nil
}
