package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-coreapi/internal/logger"
)

// DefaultTokenKeeperInterval is used by TokenKeeperJob.Start for a
// non-positive interval.
const DefaultTokenKeeperInterval = 5 * time.Minute

type tokenKeeperJob struct {
	tokens TokenService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewTokenKeeperJob creates a job that calls tokens.EnsureValidToken on a
// ticker. The job is idle until Start is called.
func NewTokenKeeperJob(tokens TokenService, logger *logger.Logger) TokenKeeperJob {
	return &tokenKeeperJob{tokens: tokens, logger: logger}
}

// Start implements TokenKeeperJob. The token is checked once right away and
// then every interval. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *tokenKeeperJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTokenKeeperInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.check(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx)
			}
		}
	}()
}

// Stop implements TokenKeeperJob. Safe to call when the job is not running.
func (j *tokenKeeperJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *tokenKeeperJob) check(ctx context.Context) {
	if _, err := j.tokens.EnsureValidToken(ctx); err != nil && ctx.Err() == nil {
		j.logger.Error().Err(err).Msg("token keeper check failed")
	}
}
