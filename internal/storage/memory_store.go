package storage

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/grachmannico95/receivables-be/internal/domain"
)

type datasetEntry struct {
	dataset *domain.Dataset
	refs    int
}

// MemoryStore keeps sessions and the datasets they point at. A dataset is
// shared by every session that uploaded the same bytes on the same reference
// date and is dropped once no session refers to it.
type MemoryStore struct {
	sessions   map[string]*domain.Session
	bindings   map[string]string // session id -> dataset cache key
	datasets   map[string]*datasetEntry
	sessionTTL time.Duration
	now        func() time.Time
	mu         sync.Mutex
}

// NewMemoryStore creates a store whose idle sessions expire after ttl. A zero
// ttl keeps sessions until they are deleted.
func NewMemoryStore(sessionTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions:   make(map[string]*domain.Session),
		bindings:   make(map[string]string),
		datasets:   make(map[string]*datasetEntry),
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

func (s *MemoryStore) GetDataset(ctx context.Context, key string) (*domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.datasets[key]
	if !exists {
		return nil, domain.ErrDatasetNotFound
	}

	return entry.dataset, nil
}

func (s *MemoryStore) BindSession(ctx context.Context, sessionID string, dataset *domain.Dataset) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	key := dataset.CacheKey()

	session, exists := s.sessions[sessionID]
	if exists && s.expired(session, now) {
		s.removeSession(session)
		exists = false
	}

	if exists {
		if s.bindings[session.ID] == key {
			session.LastAccess = now
			copied := *session
			return &copied, nil
		}
		s.release(s.bindings[session.ID])
	} else {
		session = &domain.Session{ID: sessionID, CreatedAt: now}
		s.sessions[sessionID] = session
	}

	entry, cached := s.datasets[key]
	if !cached {
		entry = &datasetEntry{dataset: dataset}
		s.datasets[key] = entry
	}
	entry.refs++

	session.DatasetHash = entry.dataset.Hash
	session.LastAccess = now
	s.bindings[sessionID] = key

	copied := *session
	return &copied, nil
}

func (s *MemoryStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, *domain.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	session, exists := s.sessions[sessionID]
	if !exists {
		return nil, nil, domain.ErrSessionNotFound
	}
	if s.expired(session, now) {
		s.removeSession(session)
		return nil, nil, domain.ErrSessionNotFound
	}

	entry, exists := s.datasets[s.bindings[session.ID]]
	if !exists {
		return nil, nil, domain.ErrDatasetNotFound
	}

	session.LastAccess = now

	copiedSession := *session
	copiedDataset := *entry.dataset
	copiedDataset.Invoices = slices.Clone(entry.dataset.Invoices)

	return &copiedSession, &copiedDataset, nil
}

func (s *MemoryStore) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[sessionID]
	if !exists {
		return domain.ErrSessionNotFound
	}

	s.removeSession(session)

	return nil
}

// PurgeExpired removes idle sessions and returns how many were removed.
func (s *MemoryStore) PurgeExpired(ctx context.Context, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for _, session := range s.sessions {
		if s.expired(session, now) {
			s.removeSession(session)
			removed++
		}
	}

	return removed
}

func (s *MemoryStore) Stats(ctx context.Context) domain.StoreStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.StoreStats{
		Sessions: len(s.sessions),
		Datasets: len(s.datasets),
	}
}

func (s *MemoryStore) expired(session *domain.Session, now time.Time) bool {
	return s.sessionTTL > 0 && now.Sub(session.LastAccess) > s.sessionTTL
}

// removeSession must be called with mu held.
func (s *MemoryStore) removeSession(session *domain.Session) {
	s.release(s.bindings[session.ID])
	delete(s.sessions, session.ID)
	delete(s.bindings, session.ID)
}

func (s *MemoryStore) release(key string) {
	entry, exists := s.datasets[key]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(s.datasets, key)
	}
}
