package utils

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// PingFunc checks one external dependency.
type PingFunc func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	OK        bool            `json:"ok"`
	Services  map[string]bool `json:"services"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// HealthMonitor periodically pings dependencies and keeps the latest snapshot in memory.
type HealthMonitor struct {
	checks  map[string]PingFunc
	timeout time.Duration
	logger  *zap.Logger

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(logger *zap.Logger, timeout time.Duration) *HealthMonitor {
	return &HealthMonitor{
		checks:  make(map[string]PingFunc),
		timeout: timeout,
		logger:  logger,
	}
}

// Register adds a named dependency check. Call before Start.
func (m *HealthMonitor) Register(name string, ping PingFunc) {
	m.checks[name] = ping
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check pings every dependency once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	names := make([]string, 0, len(m.checks))
	for name := range m.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := HealthStatus{OK: true, Services: make(map[string]bool, len(names))}
	for _, name := range names {
		pingCtx, cancel := context.WithTimeout(ctx, m.timeout)
		err := m.checks[name](pingCtx)
		cancel()
		if err != nil {
			m.logger.Warn("Dependency health check failed", zap.String("service", name), zap.Error(err))
			status.OK = false
		}
		status.Services[name] = err == nil
	}
	status.CheckedAt = time.Now()

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start performs one check immediately and then one per interval until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
