package notification

import (
	"context"
	"fmt"
	"time"

	"findit-backend/internal/notification/repository"
	"findit-backend/pkg/metrics"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// TokenPruner periodically deletes FCM tokens that have not been refreshed
// within maxAge.
type TokenPruner struct {
	tokenRepo repository.TokenRepository
	cron      *cron.Cron
	schedule  string
	maxAge    time.Duration
	timeout   time.Duration
	now       func() time.Time
	log       logrus.FieldLogger
}

func NewTokenPruner(tokenRepo repository.TokenRepository, schedule string, maxAge time.Duration, log logrus.FieldLogger) *TokenPruner {
	log = log.WithField("component", "token-pruner")
	return &TokenPruner{
		tokenRepo: tokenRepo,
		cron:      cron.New(cron.WithChain(cron.Recover(cron.PrintfLogger(log)))),
		schedule:  schedule,
		maxAge:    maxAge,
		timeout:   time.Minute,
		now:       time.Now,
		log:       log,
	}
}

// Start registers the prune job and starts the cron runner.
func (p *TokenPruner) Start() error {
	if _, err := p.cron.AddFunc(p.schedule, p.run); err != nil {
		return fmt.Errorf("invalid prune schedule %q: %w", p.schedule, err)
	}
	p.cron.Start()
	p.log.WithFields(logrus.Fields{"schedule": p.schedule, "max_age": p.maxAge}).Info("token pruner started")
	return nil
}

// Stop waits for a running prune to finish.
func (p *TokenPruner) Stop() {
	<-p.cron.Stop().Done()
	p.log.Info("token pruner stopped")
}

func (p *TokenPruner) run() {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if _, err := p.Prune(ctx); err != nil {
		p.log.WithError(err).Error("token prune failed")
	}
}

// Prune deletes tokens last refreshed before now - maxAge.
func (p *TokenPruner) Prune(ctx context.Context) (int64, error) {
	cutoff := p.now().Add(-p.maxAge)
	n, err := p.tokenRepo.DeleteStale(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete stale tokens: %w", err)
	}
	metrics.RecordTokensDeleted("stale", n)
	p.log.WithFields(logrus.Fields{"deleted": n, "cutoff": cutoff}).Info("stale fcm tokens pruned")
	return n, nil
}
