package worker

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hermes/pkg/service/slack"
	"github.com/secmon-lab/hermes/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// DirectoryRefreshWorker rebuilds the cached Slack user directory in the
// background so that agent sessions rarely wait on users.list
type DirectoryRefreshWorker struct {
	slackService slack.Service
	interval     time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	group  *errgroup.Group
}

// NewDirectoryRefreshWorker creates a new worker for refreshing the user directory
func NewDirectoryRefreshWorker(slackSvc slack.Service, interval time.Duration) *DirectoryRefreshWorker {
	return &DirectoryRefreshWorker{
		slackService: slackSvc,
		interval:     interval,
	}
}

// Start begins the background refresh loop. The first refresh runs right
// away in the background and does not block the caller.
func (w *DirectoryRefreshWorker) Start(ctx context.Context) error {
	if w.interval <= 0 {
		return goerr.New("refresh interval must be positive", goerr.V("interval", w.interval.String()))
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.group != nil {
		return goerr.New("directory refresh worker already started")
	}

	logging.From(ctx).Info("directory refresh worker starting",
		"interval", w.interval.String())

	ctx, w.cancel = context.WithCancel(ctx)
	w.group, ctx = errgroup.WithContext(ctx)
	w.group.Go(func() error {
		w.run(ctx)
		return nil
	})

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *DirectoryRefreshWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.group == nil {
		return
	}

	w.cancel()
	_ = w.group.Wait()
	w.group = nil
	logging.Default().Info("directory refresh worker stopped")
}

func (w *DirectoryRefreshWorker) run(ctx context.Context) {
	logger := logging.From(ctx)

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.refresh(ctx)

		case <-ctx.Done():
			logger.Debug("directory refresh worker context cancelled")
			return
		}
	}
}

// refresh performs a single refresh cycle. A failure keeps the worker running;
// the service keeps serving the previous directory until it expires.
func (w *DirectoryRefreshWorker) refresh(ctx context.Context) {
	logger := logging.From(ctx)
	startTime := time.Now()

	if err := w.slackService.RefreshDirectory(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.Warn("user directory refresh failed, will retry next interval",
			"error", err.Error())
		return
	}

	logger.Debug("user directory refreshed",
		"duration", time.Since(startTime).String())
}
