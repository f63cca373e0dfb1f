package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"task-list-api/internal/domain/usecase/notification"
	"task-list-api/pkg/log"
	"task-list-api/pkg/msg"
	"task-list-api/pkg/redis"
)

const digestLockNamespace = "task_list_schedules"

// DigestSchedulerConfig holds configuration for the completion digest
type DigestSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// DigestScheduler posts the daily completion digest. When a Redis client is
// given, each run takes a per-day lock so only one instance posts it.
type DigestScheduler struct {
	cron        *cron.Cron
	useCase     notification.UseCase
	redisClient *redis.Client
	config      DigestSchedulerConfig
	now         func() time.Time
}

func NewDigestScheduler(useCase notification.UseCase, redisClient *redis.Client, config DigestSchedulerConfig) *DigestScheduler {
	if config.LockTTL <= 0 {
		config.LockTTL = 10 * time.Minute
	}
	if config.RefreshInterval <= 0 {
		config.RefreshInterval = time.Minute
	}

	return &DigestScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
		now:         time.Now,
	}
}

// Start registers the digest job and starts the cron runner. The runner
// stops when ctx is cancelled.
func (s *DigestScheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.config.CronExpression, func() {
		s.ExecuteScheduledTask(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info(msg.GetMessage("digest.scheduled", s.config.CronExpression))

	go func() {
		<-ctx.Done()
		s.Stop()
		log.Info(msg.GetMessage("digest.stopped"))
	}()
	return nil
}

// ExecuteScheduledTask runs one digest, guarded by the distributed lock when
// Redis is configured.
func (s *DigestScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("digest.start"), zap.String("request_id", requestID))

	if s.redisClient == nil {
		s.run(ctx, requestID)
		return
	}

	lock := redis.NewLock(s.redisClient, "completion_digest:"+s.now().UTC().Format(time.DateOnly), &redis.LockOptions{
		TTL:             s.config.LockTTL,
		RefreshInterval: s.config.RefreshInterval,
		Namespace:       digestLockNamespace,
	})
	if err := lock.TryLock(ctx); err != nil {
		if errors.Is(err, redis.ErrLockNotAcquired) {
			log.Info(msg.GetMessage("digest.skipped"), zap.String("request_id", requestID))
			return
		}
		log.Error(msg.GetMessage("digest.lock-failed", err), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	refreshErrs := lock.AutoRefresh(runCtx)
	go func() {
		select {
		case err := <-refreshErrs:
			log.Error(msg.GetMessage("digest.lock-failed", err), zap.String("request_id", requestID), zap.Error(err))
			cancel()
		case <-runCtx.Done():
		}
	}()

	// A posted digest keeps the lock until its TTL runs out so that slower
	// instances firing the same schedule skip it; a failed one releases it.
	if !s.run(runCtx, requestID) {
		if err := lock.Unlock(context.WithoutCancel(ctx)); err != nil {
			log.Error(msg.GetMessage("digest.lock-failed", err), zap.String("request_id", requestID), zap.Error(err))
		}
	}
}

func (s *DigestScheduler) run(ctx context.Context, requestID string) bool {
	count, err := s.useCase.SendDailyDigest(ctx)
	if err != nil {
		log.Error(msg.GetMessage("digest.failed", err), zap.String("request_id", requestID), zap.Error(err))
		return false
	}
	log.Info(msg.GetMessage("digest.end", count), zap.String("request_id", requestID))
	return true
}

// Stop gracefully stops the scheduler
func (s *DigestScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
