package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultCleanupInterval = time.Minute

// record tracks one hosted session and its idle deadline.
type record struct {
	session   *Session
	expiresAt time.Time
}

// Manager is an in-memory registry of sessions for bindings that
// multiplex many fields over one process (the HTTP API). Sessions expire
// after being idle for the TTL; a janitor goroutine sweeps them out.
type Manager struct {
	mu      sync.RWMutex
	records map[string]*record
	ttl     time.Duration

	interval time.Duration
	stop     chan struct{}
	wg       sync.WaitGroup
	stopped  bool
}

// NewManager creates a session manager with the given idle TTL. A zero
// cleanup interval picks the default.
func NewManager(ttl, cleanupInterval time.Duration) *Manager {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}
	return &Manager{
		records:  make(map[string]*record),
		ttl:      ttl,
		interval: cleanupInterval,
		stop:     make(chan struct{}),
	}
}

// Start launches the janitor goroutine.
func (m *Manager) Start() {
	m.wg.Add(1)
	go m.janitor()
}

// Stop stops the janitor and waits for it to exit.
func (m *Manager) Stop() {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	m.stopped = true
	close(m.stop)
	m.mu.Unlock()

	m.wg.Wait()
}

// Put registers a session and returns its generated ID.
func (m *Manager) Put(s *Session) string {
	id := "ses_" + uuid.New().String()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[id] = &record{session: s, expiresAt: time.Now().Add(m.ttl)}
	return id
}

// Get looks up a session and refreshes its idle deadline.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(rec.expiresAt) {
		delete(m.records, id)
		return nil, false
	}
	rec.expiresAt = time.Now().Add(m.ttl)
	return rec.session, true
}

// Delete ends a session.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
}

// Cleanup removes expired sessions.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, rec := range m.records {
		if now.After(rec.expiresAt) {
			delete(m.records, id)
		}
	}
}

// Size returns the number of live sessions (for testing).
func (m *Manager) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

func (m *Manager) janitor() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Cleanup()
		case <-m.stop:
			return
		}
	}
}
