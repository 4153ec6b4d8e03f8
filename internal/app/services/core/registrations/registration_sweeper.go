package registrations

import (
	"context"
	"registration-service/internal/app/config"
	"registration-service/internal/app/contracts"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const sweeperLeaderLockKey = "registration:sweeper:leader"

// Sweeper periodically removes registration tickets whose link expired
// without a submission.
type Sweeper struct {
	Repository contracts.RegistrationRepository
	Locker     contracts.RedisRepository
	CronSpec   string
	Retention  time.Duration
	Log        *zap.Logger
	cron       *cron.Cron
	runCtx     context.Context
	cancel     context.CancelFunc
	now        func() time.Time
}

// NewSweeper builds a sweeper. locker may be nil, in which case every
// instance sweeps on its own schedule.
func NewSweeper(
	repo contracts.RegistrationRepository,
	locker contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *Sweeper {
	return &Sweeper{
		Repository: repo,
		Locker:     locker,
		CronSpec:   internalConfig.Registration.SweeperCronSpec,
		Retention:  time.Duration(internalConfig.Registration.SweeperRetentionInHours) * time.Hour,
		Log:        logger,
		now:        time.Now,
	}
}

// Start schedules RunOnce. An empty cron spec leaves the sweeper disabled.
func (s *Sweeper) Start(ctx context.Context) {
	if s.CronSpec == "" {
		s.Log.Info("registrationSweeper disabled")
		return
	}
	s.runCtx, s.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(s.CronSpec, func() { s.RunOnce(s.runCtx) })
	if err != nil {
		s.Log.Warn("registrationSweeper: invalid cron spec, falling back to @hourly",
			zap.String("cron_spec", s.CronSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@hourly", func() { s.RunOnce(s.runCtx) })
	}
	c.Start()
	s.cron = c
	s.Log.Info("registrationSweeper started", zap.String("cron_spec", s.CronSpec))
}

// Stop cancels in-flight sweeps and waits for the running job to return.
func (s *Sweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// RunOnce deletes unused tickets whose link expired more than Retention ago.
func (s *Sweeper) RunOnce(ctx context.Context) (int64, error) {
	if s.Locker != nil {
		acquired, err := s.Locker.SetNX(ctx, sweeperLeaderLockKey, s.now().UTC().Format(time.RFC3339), 5*time.Minute)
		if err != nil {
			s.Log.Warn("registrationSweeper: leader lock attempt failed", zap.Error(err))
			return 0, err
		}
		if !acquired {
			s.Log.Info("registrationSweeper: leader lock held by another instance")
			return 0, nil
		}
		defer func() {
			if err := s.Locker.Delete(context.WithoutCancel(ctx), sweeperLeaderLockKey); err != nil {
				s.Log.Warn("registrationSweeper: failed to release leader lock", zap.Error(err))
			}
		}()
	}

	cutoff := s.now().Add(-s.Retention)
	deleted, err := s.Repository.DeleteUnusedExpiredBefore(ctx, cutoff)
	if err != nil {
		s.Log.Error("registrationSweeper: sweep failed", zap.Error(err))
		return 0, err
	}

	s.Log.Info("registrationSweeper: sweep finished",
		zap.Time("cutoff", cutoff),
		zap.Int64("deleted", deleted),
	)
	return deleted, nil
}
