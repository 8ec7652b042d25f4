// Package store keeps oracle transcripts in process memory. A transcript
// lives exactly as long as its session: nothing is persisted and a restart
// discards every conversation.
package store

import (
	"sync"
	"zentravel/internal/domains/oracle/model"

	"github.com/google/uuid"
)

type Store interface {
	Create(seed model.Message) string
	Get(sessionID string) ([]model.Message, bool)
	Append(sessionID string, messages ...model.Message) bool
}

type storeImpl struct {
	mu       sync.Mutex
	sessions map[string][]model.Message
}

func New() Store {
	return &storeImpl{
		sessions: map[string][]model.Message{},
	}
}

func (s *storeImpl) Create(seed model.Message) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID := uuid.NewString()
	s.sessions[sessionID] = []model.Message{seed}

	return sessionID
}

func (s *storeImpl) Get(sessionID string) ([]model.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}

	// Copy so callers never observe a concurrent append.
	out := make([]model.Message, len(messages))
	copy(out, messages)

	return out, true
}

func (s *storeImpl) Append(sessionID string, messages ...model.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return false
	}

	s.sessions[sessionID] = append(s.sessions[sessionID], messages...)

	return true
}
