package srv

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Janitor periodically removes saved results older than a retention age.
type Janitor struct {
	server *Server
	done   chan struct{}
	once   sync.Once
}

// StartCleanup starts a background goroutine that deletes results older than
// maxAge every interval. It returns nil when maxAge is zero.
func (s *Server) StartCleanup(interval, maxAge time.Duration) *Janitor {
	if maxAge <= 0 {
		return nil
	}
	j := &Janitor{server: s, done: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-j.done:
				return
			case <-ticker.C:
				j.cleanupOldResults(context.Background(), maxAge)
			}
		}
	}()
	return j
}

// StopCleanup stops the background cleanup goroutine.
func (j *Janitor) StopCleanup() {
	if j == nil {
		return
	}
	j.once.Do(func() { close(j.done) })
}

// cleanupOldResults removes results created more than maxAge ago.
func (j *Janitor) cleanupOldResults(ctx context.Context, maxAge time.Duration) int64 {
	n, err := j.server.Results.DeleteBefore(ctx, time.Now().Add(-maxAge))
	if err != nil {
		slog.Error("result cleanup", "error", err)
		return 0
	}
	if n > 0 {
		slog.Info("results cleaned up (retention)", "deleted", n)
	}
	return n
}
