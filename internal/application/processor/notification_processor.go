package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"task-list-api/internal/domain/model"
	"task-list-api/internal/domain/usecase/notification"
	"task-list-api/pkg/log"
)

// NotificationProcessor consumes TaskCompletedEvent messages and posts them
// to the team channel.
type NotificationProcessor struct {
	notificationUseCase notification.UseCase
}

func NewNotificationProcessor(notificationUseCase notification.UseCase) *NotificationProcessor {
	return &NotificationProcessor{
		notificationUseCase: notificationUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface. A returned error leaves
// the message on the queue for redelivery.
func (p *NotificationProcessor) HandleMessage(ctx context.Context, msg types.Message) error {
	if msg.Body == nil {
		return fmt.Errorf("received message without body")
	}

	var event model.TaskCompletedEvent
	if err := json.Unmarshal([]byte(*msg.Body), &event); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	log.Debugf("Processing completion notification for task %d", event.TaskID)
	if err := p.notificationUseCase.Deliver(ctx, event); err != nil {
		return fmt.Errorf("failed to deliver notification for task %d: %w", event.TaskID, err)
	}
	return nil
}
