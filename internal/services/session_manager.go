package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrSessionIDRequired = errors.New("session id is required")

type sessionEntry struct {
	orchestrator QueryOrchestratorInterface
	lastSeen     time.Time
	once         sync.Once
	initErr      error
}

// SessionManager keeps one query orchestrator per session ID. A new
// session starts with the dashboard's default filters; sessions unused for
// longer than the idle timeout are closed by Run.
type SessionManager struct {
	mu            sync.Mutex
	sessions      map[string]*sessionEntry
	dashboard     DashboardServiceInterface
	metrics       MetricsRecorderInterface
	logger        QueryLoggerInterface
	idleTimeout   time.Duration
	sweepInterval time.Duration
	now           func() time.Time
}

func NewSessionManager(
	dashboard DashboardServiceInterface,
	idleTimeout, sweepInterval time.Duration,
	metrics MetricsRecorderInterface,
	logger QueryLoggerInterface,
) SessionManagerInterface {
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	if logger == nil {
		logger = NewQueryLogger(nil)
	}
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}
	return &SessionManager{
		sessions:      make(map[string]*sessionEntry),
		dashboard:     dashboard,
		metrics:       metrics,
		logger:        logger,
		idleTimeout:   idleTimeout,
		sweepInterval: sweepInterval,
		now:           time.Now,
	}
}

// Get returns the orchestrator of sessionID, creating and loading it on
// first use. Concurrent first calls share one load; a failed load is not
// kept, so the next call retries.
func (m *SessionManager) Get(ctx context.Context, sessionID string) (QueryOrchestratorInterface, error) {
	if sessionID == "" {
		return nil, ErrSessionIDRequired
	}

	m.mu.Lock()
	entry, ok := m.sessions[sessionID]
	if !ok {
		entry = &sessionEntry{orchestrator: m.dashboard.NewOrchestrator()}
		m.sessions[sessionID] = entry
	}
	entry.lastSeen = m.now()
	m.mu.Unlock()

	entry.once.Do(func() {
		entry.initErr = entry.orchestrator.SetFilters(ctx, m.dashboard.DefaultFilters())
		if entry.initErr != nil {
			return
		}
		m.metrics.IncrementCounter(MetricSessionEvent, map[string]string{"event": "created"})
		m.logger.LogSessionCreated(ctx, sessionID)
		m.recordActive()
	})

	if entry.initErr != nil {
		m.mu.Lock()
		if m.sessions[sessionID] == entry {
			delete(m.sessions, sessionID)
		}
		m.mu.Unlock()
		entry.orchestrator.Close()
		return nil, fmt.Errorf("failed to open query session: %w", entry.initErr)
	}

	return entry.orchestrator, nil
}

// Remove closes and forgets sessionID, reporting whether it existed.
func (m *SessionManager) Remove(ctx context.Context, sessionID string) bool {
	m.mu.Lock()
	entry, ok := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	m.mu.Unlock()

	if !ok {
		return false
	}

	entry.orchestrator.Close()
	m.metrics.IncrementCounter(MetricSessionEvent, map[string]string{"event": "closed"})
	m.logger.LogSessionClosed(ctx, sessionID, "removed")
	m.recordActive()
	return true
}

// EvictIdle closes every session last used before now minus the idle
// timeout and returns how many were closed.
func (m *SessionManager) EvictIdle(now time.Time) int {
	if m.idleTimeout <= 0 {
		return 0
	}
	cutoff := now.Add(-m.idleTimeout)

	m.mu.Lock()
	var evicted []string
	var closing []QueryOrchestratorInterface
	for id, entry := range m.sessions {
		if entry.lastSeen.Before(cutoff) {
			evicted = append(evicted, id)
			closing = append(closing, entry.orchestrator)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	ctx := context.Background()
	for i, o := range closing {
		o.Close()
		m.metrics.IncrementCounter(MetricSessionEvent, map[string]string{"event": "evicted"})
		m.logger.LogSessionClosed(ctx, evicted[i], "idle")
	}
	if len(evicted) > 0 {
		m.recordActive()
	}
	return len(evicted)
}

// Run evicts idle sessions every sweep interval until ctx is done, then
// closes all remaining sessions.
func (m *SessionManager) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.closeAll()
			return nil
		case <-ticker.C:
			m.EvictIdle(m.now())
		}
	}
}

func (m *SessionManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *SessionManager) closeAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*sessionEntry)
	m.mu.Unlock()

	ctx := context.Background()
	for id, entry := range sessions {
		entry.orchestrator.Close()
		m.logger.LogSessionClosed(ctx, id, "shutdown")
	}
	m.recordActive()
}

func (m *SessionManager) recordActive() {
	m.metrics.RecordGauge(MetricSessionsActive, float64(m.Count()), nil)
}
