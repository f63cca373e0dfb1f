package main

import (
	"context"
	"errors"
	"sync"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"task-list-api/internal/application/controller"
	"task-list-api/internal/application/middleware"
	"task-list-api/internal/application/processor"
	"task-list-api/internal/application/schedule"
	"task-list-api/internal/domain/gateway/api"
	"task-list-api/internal/domain/gateway/cache"
	"task-list-api/internal/domain/gateway/db"
	"task-list-api/internal/domain/gateway/queue"
	"task-list-api/internal/domain/model"
	"task-list-api/internal/domain/usecase/goal"
	"task-list-api/internal/domain/usecase/health"
	"task-list-api/internal/domain/usecase/notification"
	"task-list-api/internal/domain/usecase/task"
	"task-list-api/internal/infra/aws"
	gormdb "task-list-api/internal/infra/database/gorm"
	"task-list-api/internal/infra/database/sqlc"
	infraredis "task-list-api/internal/infra/redis"
	"task-list-api/pkg/log"
	"task-list-api/pkg/msg"
	"task-list-api/pkg/redis"
	"task-list-api/pkg/resource"
	"task-list-api/pkg/sqs"
)

const (
	gatewayGorm = "gorm"
	gatewaySQL  = "sql"
)

// gateways groups the persistence implementations selected by app.db.gateway.
type gateways struct {
	task   db.TaskGateway
	goal   db.GoalGateway
	health db.HealthDBGateway
	closer func() error
}

type application struct {
	echo        *echo.Echo
	worker      *sqs.Worker
	scheduler   *schedule.DigestScheduler
	redisClient *redis.Client
	closers     []func() error
	background  sync.WaitGroup
}

func newApplication(ctx context.Context) (*application, error) {
	app := &application{}

	store, err := openGateways(ctx)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, store.closer)

	mode := model.NotificationMode(resource.GetString("app.notification.mode"))
	if !mode.Valid() {
		app.Close()
		return nil, errors.New(msg.GetMessage("app.error.invalid-notification-mode", mode))
	}

	slackGateway := api.NewSlackNotificationGateway(api.SlackConfig{
		BaseURL: resource.GetString("app.notification.slack.base-url"),
		Token:   resource.GetString("app.notification.slack.token"),
		Channel: resource.GetString("app.notification.slack.channel"),
		Timeout: resource.GetDuration("app.notification.slack.timeout"),
	})

	var sender queue.Sender
	var queueHealth queue.HealthGateway
	queueName := resource.GetString("app.notification.queue.name")
	var sqsClient sqs.WorkerClient
	if mode == model.NotificationQueue {
		awsConfig, err := aws.LoadConfig(ctx)
		if err != nil {
			app.Close()
			return nil, err
		}
		client := aws.NewSqsClient(awsConfig)
		sqsClient = client
		sender = aws.NewSQSSenderAdapter(client)
	}

	notificationUseCase := notification.NewNotificationUseCase(notification.Config{
		Mode:      mode,
		QueueName: queueName,
	}, slackGateway, sender, store.task)

	if sqsClient != nil {
		worker, err := sqs.NewWorker(ctx, sqsClient, queueName,
			processor.NewNotificationProcessor(notificationUseCase),
			&sqs.WorkerConfig{PoolSize: resource.GetInt("app.notification.queue.pool-size")})
		if err != nil {
			app.Close()
			return nil, errors.New(msg.GetMessage("notification.worker-failed", err))
		}
		app.worker = worker
		queueGateway := queue.NewQueueHealthGateway()
		queueGateway.RegisterWorker(queueName, worker)
		queueHealth = queueGateway
	}

	var cacheHealth cache.HealthGateway
	if resource.GetBool("app.redis.enabled") {
		client, err := infraredis.NewClient()
		if err != nil {
			app.Close()
			return nil, err
		}
		app.redisClient = client
		app.closers = append(app.closers, client.Close)
		cacheHealth = cache.NewRedisHealthGateway(client)
	}

	if resource.GetBool("app.digest.enabled") {
		app.scheduler = schedule.NewDigestScheduler(notificationUseCase, app.redisClient, schedule.DigestSchedulerConfig{
			CronExpression:  resource.GetString("app.digest.cron"),
			LockTTL:         resource.GetDuration("app.digest.lock-ttl"),
			RefreshInterval: resource.GetDuration("app.digest.refresh-interval"),
		})
	}

	taskUseCase := task.NewTaskUseCase(store.task, notificationUseCase)
	goalUseCase := goal.NewGoalUseCase(store.goal, store.task)
	healthUseCase := health.NewHealthUseCase(store.health, cacheHealth, queueHealth)

	app.echo = newEcho(taskUseCase, goalUseCase, healthUseCase)
	return app, nil
}

// newEcho builds the HTTP server with every route mounted under
// app.server.context-path.
func newEcho(taskUseCase task.UseCase, goalUseCase goal.UseCase, healthUseCase health.UseCase) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)

	routes := e.Group(resource.GetString("app.server.context-path"))
	routes.GET("/swagger/*", echoSwagger.WrapHandler)

	controller.NewHealthController(routes, healthUseCase).InitHealthRoutes()
	controller.NewTaskController(routes, taskUseCase).InitTaskRoutes()
	controller.NewGoalController(routes, goalUseCase).InitGoalRoutes()
	return e
}

func openGateways(ctx context.Context) (*gateways, error) {
	switch gateway := resource.GetString("app.db.gateway"); gateway {
	case gatewayGorm:
		gormDB, err := gormdb.Open()
		if err != nil {
			return nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, err
		}
		if resource.GetBool("app.db.auto-migrate") {
			log.Info(msg.GetMessage("app.migrate-start"))
			if err := gormdb.Migrate(gormDB); err != nil {
				_ = sqlDB.Close()
				return nil, err
			}
			log.Info(msg.GetMessage("app.migrate-end"))
		}
		return &gateways{
			task:   db.NewGormTaskGateway(gormDB),
			goal:   db.NewGormGoalGateway(gormDB),
			health: db.NewGormHealthDBGateway(gormDB),
			closer: sqlDB.Close,
		}, nil
	case gatewaySQL:
		if driver := resource.GetString("app.db.driver"); driver != gormdb.DriverPostgres {
			return nil, errors.New(msg.GetMessage("app.error.invalid-driver", driver))
		}
		sqlDB, err := sqlc.Open(ctx)
		if err != nil {
			return nil, err
		}
		return &gateways{
			task:   db.NewSQLTaskGateway(sqlDB),
			goal:   db.NewSQLGoalGateway(sqlDB),
			health: db.NewSQLHealthDBGateway(sqlDB),
			closer: sqlDB.Close,
		}, nil
	default:
		return nil, errors.New(msg.GetMessage("app.error.invalid-gateway", gateway))
	}
}

// StartBackground runs the notification worker and the digest scheduler until
// ctx is cancelled.
func (app *application) StartBackground(ctx context.Context) {
	if app.worker != nil {
		app.background.Add(1)
		go func() {
			defer app.background.Done()
			log.Info(msg.GetMessage("notification.worker-start", resource.GetString("app.notification.queue.name")))
			app.worker.Start(ctx)
		}()
	}

	if app.scheduler != nil {
		if err := app.scheduler.Start(ctx); err != nil {
			log.Error(msg.GetMessage("digest.failed", err), zap.Error(err))
		}
	}
}

// Wait blocks until the background workers have stopped.
func (app *application) Wait() {
	app.background.Wait()
	if app.scheduler != nil {
		app.scheduler.Stop()
	}
}

func (app *application) Close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](); err != nil {
			log.Error(msg.GetMessage("app.error.internal"), zap.Error(err))
		}
	}
}
