package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/models"
)

// SessionStore keeps the last successful upload per session until it expires.
type SessionStore interface {
	Start(ctx context.Context)
	Stop()
	Save(session *models.Session) *models.Session
	Get(id uuid.UUID) (*models.Session, bool)
	Delete(id uuid.UUID)
	Len() int
}

type sessionStore struct {
	mu            sync.RWMutex
	sessions      map[uuid.UUID]*models.Session
	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time
	logger        *zap.Logger

	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewSessionStore(ttl, sweepInterval time.Duration, logger *zap.Logger) SessionStore {
	return newSessionStore(ttl, sweepInterval, logger, time.Now)
}

func newSessionStore(ttl, sweepInterval time.Duration, logger *zap.Logger, now func() time.Time) *sessionStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}
	return &sessionStore{
		sessions:      make(map[uuid.UUID]*models.Session),
		ttl:           ttl,
		sweepInterval: sweepInterval,
		now:           now,
		logger:        logger,
		stopChan:      make(chan struct{}),
	}
}

// Start implements SessionStore.
func (s *sessionStore) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.sweepExpired(ctx)
	s.logger.Info("session janitor started",
		zap.Duration("ttl", s.ttl),
		zap.Duration("sweep_interval", s.sweepInterval),
	)
}

// Stop implements SessionStore.
func (s *sessionStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	s.wg.Wait()
}

// Save implements SessionStore. A zero ID is replaced with a fresh one and the
// timestamps are reset.
func (s *sessionStore) Save(session *models.Session) *models.Session {
	now := s.now()
	stored := *session
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.CreatedAt = now
	stored.ExpiresAt = now.Add(s.ttl)

	s.mu.Lock()
	s.sessions[stored.ID] = &stored
	s.mu.Unlock()

	out := stored
	return &out
}

// Get implements SessionStore.
func (s *sessionStore) Get(id uuid.UUID) (*models.Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || !s.now().Before(session.ExpiresAt) {
		return nil, false
	}
	out := *session
	return &out, true
}

// Delete implements SessionStore.
func (s *sessionStore) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len implements SessionStore.
func (s *sessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *sessionStore) sweepExpired(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.logger.Info("session janitor stopped")
			return
		case <-ctx.Done():
			s.logger.Info("session janitor stopped", zap.Error(ctx.Err()))
			return
		case <-ticker.C:
			if removed := s.sweep(); removed > 0 {
				s.logger.Debug("expired sessions removed", zap.Int("count", removed))
			}
		}
	}
}

func (s *sessionStore) sweep() int {
	now := s.now()
	removed := 0

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		if !now.Before(session.ExpiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
