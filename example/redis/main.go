package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"task-list-api/pkg/log"
	"task-list-api/pkg/redis"
)

// Two schedulers fire the same digest job every 2 seconds; the per-day lock
// lets only one of them run it until the TTL expires.
func main() {
	client, err := redis.NewClient(redis.NewRedisConfig().WithHost("localhost").WithPort(6379))
	if err != nil {
		log.Fatalf("Failed to create Redis client: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	health := client.Health(ctx)
	log.Infow("Redis health", "status", health.Status, "details", health.Details)
	if health.Status != redis.StatusUp {
		return
	}

	var schedulers []gocron.Scheduler
	for instance := 1; instance <= 2; instance++ {
		scheduler, err := newInstance(instance, client)
		if err != nil {
			log.Fatalf("Failed to schedule instance %d: %v", instance, err)
		}
		scheduler.Start()
		schedulers = append(schedulers, scheduler)
	}

	<-ctx.Done()
	for _, scheduler := range schedulers {
		if err := scheduler.Shutdown(); err != nil {
			log.Errorf("Scheduler shutdown error: %v", err)
		}
	}
}

func newInstance(instance int, client *redis.Client) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = scheduler.NewJob(
		gocron.CronJob("*/2 * * * * *", true),
		gocron.NewTask(func(ctx context.Context) {
			runDigest(ctx, instance, client)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule digest job: %w", err)
	}
	return scheduler, nil
}

func runDigest(ctx context.Context, instance int, client *redis.Client) {
	key := "completion_digest:" + time.Now().UTC().Format(time.DateOnly)
	lock := redis.NewLock(client, key, &redis.LockOptions{
		TTL:             5 * time.Second,
		RefreshInterval: time.Second,
		Namespace:       "task_list_examples",
	})

	if err := lock.TryLock(ctx); err != nil {
		if errors.Is(err, redis.ErrLockNotAcquired) {
			log.Infof("Instance %d skipped, %s is held", instance, lock.Key())
			return
		}
		log.Errorf("Instance %d lock error: %v", instance, err)
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	refreshErrs := lock.AutoRefresh(runCtx)
	if held, err := lock.IsLocked(ctx); err == nil && held {
		log.Infof("Instance %d posting digest under %s", instance, lock.Key())
	}

	select {
	case err := <-refreshErrs:
		log.Errorf("Instance %d lost the lock: %v", instance, err)
	case <-time.After(500 * time.Millisecond):
	}
	// The lock is kept so the other instance skips until the TTL runs out.
}
