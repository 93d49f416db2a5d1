package schedule

import (
	"context"
	"time"

	"do-it-now/internal/domain/usecase/auth"
	"do-it-now/pkg/log"
	"do-it-now/pkg/msg"
	"do-it-now/pkg/redis"
	"do-it-now/pkg/resource"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// TokenScheduler removes expired access tokens on a cron schedule. When a
// redis client is available, a distributed lock keeps the sweep on a single
// instance.
type TokenScheduler struct {
	cron        *cron.Cron
	useCase     auth.UseCase
	redisClient *redis.Client
}

func NewTokenScheduler(useCase auth.UseCase, redisClient *redis.Client) *TokenScheduler {
	return &TokenScheduler{cron: cron.New(), useCase: useCase, redisClient: redisClient}
}

// InitTokenScheduleTasks initializes the expired-token sweep task.
func (scheduler *TokenScheduler) InitTokenScheduleTasks(ctx context.Context) {
	go func() {
		if scheduler.redisClient != nil {
			lock := redis.NewScheduledTaskLock(
				scheduler.redisClient,
				"token_sweep_scheduler",
				time.Duration(resource.GetInt("app.token-sweep.lock-ttl-seconds"))*time.Second,
				time.Duration(resource.GetInt("app.token-sweep.lock-refresh-seconds"))*time.Second,
				"schedules",
			)

			if err := lock.Lock(ctx); err != nil {
				log.Errorf("Failed to acquire distributed lock, token sweep will not run on this instance: %v", err)
				return
			}

			refreshErrChan := lock.AutoRefresh(ctx)
			scheduler.start()

			// Stop sweeping if we lose the lock
			if err := <-refreshErrChan; err != nil {
				log.Errorf("Token sweep scheduler stopped due to lock refresh failure: %v", err)
			}
			scheduler.Stop()
			return
		}

		scheduler.start()
		<-ctx.Done()
		scheduler.Stop()
	}()
}

func (scheduler *TokenScheduler) start() {
	_, err := scheduler.cron.AddFunc(resource.GetString("app.token-sweep.cron"), scheduler.SweepExpiredTokens)
	if err != nil {
		log.Errorf("Failed to initialize token sweep scheduler, cron will not be started: %v", err)
		return
	}
	scheduler.cron.Start()
}

// SweepExpiredTokens deletes every token whose expiry has passed.
func (scheduler *TokenScheduler) SweepExpiredTokens() {
	requestID := uuid.New().String()

	log.Info(msg.GetMessage("token-sweep.start", requestID))

	removed, err := scheduler.useCase.SweepExpiredTokens()
	if err != nil {
		log.Error(msg.GetMessage("token-sweep.error", requestID, err))
		return
	}

	log.Info(msg.GetMessage("token-sweep.end", removed, requestID))
}

// Stop gracefully stops the scheduler.
func (scheduler *TokenScheduler) Stop() {
	if scheduler.cron != nil {
		cronCtx := scheduler.cron.Stop()
		<-cronCtx.Done()
	}
}
