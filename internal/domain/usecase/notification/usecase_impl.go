package notification

import (
	"context"
	"time"

	"go.uber.org/zap"

	"task-list-api/internal/domain/entity"
	"task-list-api/internal/domain/gateway/api"
	"task-list-api/internal/domain/gateway/db"
	"task-list-api/internal/domain/gateway/queue"
	"task-list-api/internal/domain/model"
	"task-list-api/pkg/log"
	"task-list-api/pkg/msg"
)

type Config struct {
	Mode      model.NotificationMode
	QueueName string
}

type notificationUseCase struct {
	config      Config
	gateway     api.NotificationGateway
	sender      queue.Sender
	taskGateway db.TaskGateway
	now         func() time.Time
}

// NewNotificationUseCase wires the dispatcher. sender may be nil unless the
// mode is queue.
func NewNotificationUseCase(config Config, gateway api.NotificationGateway, sender queue.Sender, taskGateway db.TaskGateway) UseCase {
	return newNotificationUseCase(config, gateway, sender, taskGateway, time.Now)
}

func newNotificationUseCase(config Config, gateway api.NotificationGateway, sender queue.Sender, taskGateway db.TaskGateway, now func() time.Time) *notificationUseCase {
	return &notificationUseCase{
		config:      config,
		gateway:     gateway,
		sender:      sender,
		taskGateway: taskGateway,
		now:         now,
	}
}

func (uc *notificationUseCase) NotifyTaskCompleted(ctx context.Context, task entity.Task) {
	event := model.NewTaskCompletedEvent(task)

	switch uc.config.Mode {
	case model.NotificationDisabled:
		log.Debug(msg.GetMessage("notification.disabled", task.ID))
	case model.NotificationQueue:
		if err := uc.sender.SendMessage(ctx, uc.config.QueueName, event); err != nil {
			log.Error(msg.GetMessage("notification.failed", task.ID, err), zap.Error(err))
			return
		}
		log.Info(msg.GetMessage("notification.queued", task.ID))
	default:
		if err := uc.Deliver(ctx, event); err != nil {
			log.Error(msg.GetMessage("notification.failed", task.ID, err), zap.Error(err))
		}
	}
}

func (uc *notificationUseCase) Deliver(ctx context.Context, event model.TaskCompletedEvent) error {
	if err := uc.gateway.PostMessage(ctx, msg.GetMessage("notification.text", event.Title)); err != nil {
		return err
	}
	log.Info(msg.GetMessage("notification.sent", event.TaskID))
	return nil
}

func (uc *notificationUseCase) SendDailyDigest(ctx context.Context) (int64, error) {
	year, month, day := uc.now().UTC().Date()
	from := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	count, err := uc.taskGateway.CountCompletedBetween(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}
	if count == 0 {
		log.Info(msg.GetMessage("digest.empty"))
		return 0, nil
	}

	if err := uc.gateway.PostMessage(ctx, msg.GetMessage("notification.digest-text", count)); err != nil {
		return 0, err
	}
	return count, nil
}
