package notification

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"task-list-api/internal/domain/entity"
	"task-list-api/internal/domain/model"
	"task-list-api/pkg/msg"
)

func TestMain(m *testing.M) {
	if err := msg.Init("../../../../configs/messages.yml"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var errMockPost = errors.New("slack unavailable")

type MockNotificationGateway struct {
	PostMessageFunc func(ctx context.Context, text string) error
	Texts           []string
}

func (m *MockNotificationGateway) PostMessage(ctx context.Context, text string) error {
	m.Texts = append(m.Texts, text)
	if m.PostMessageFunc != nil {
		return m.PostMessageFunc(ctx, text)
	}
	return nil
}

type sentMessage struct {
	queue string
	body  any
}

type MockSender struct {
	SendMessageFunc func(ctx context.Context, queueName string, body any) error
	Sent            []sentMessage
}

func (m *MockSender) SendMessage(ctx context.Context, queueName string, body any) error {
	m.Sent = append(m.Sent, sentMessage{queue: queueName, body: body})
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, queueName, body)
	}
	return nil
}

// MockTaskGateway only implements the digest query; the embedded nil
// interface panics if anything else is called.
type MockTaskGateway struct {
	taskGatewayStub
	CountFunc func(ctx context.Context, from, to time.Time) (int64, error)
}

func (m *MockTaskGateway) CountCompletedBetween(ctx context.Context, from time.Time, to time.Time) (int64, error) {
	return m.CountFunc(ctx, from, to)
}

func completedTask() entity.Task {
	completedAt := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	return entity.Task{ID: 7, Title: "Wash car", CompletedAt: &completedAt}
}

func TestNotifyTaskCompletedDirect(t *testing.T) {
	gateway := &MockNotificationGateway{}
	sender := &MockSender{}
	uc := NewNotificationUseCase(Config{Mode: model.NotificationDirect}, gateway, sender, nil)

	uc.NotifyTaskCompleted(context.Background(), completedTask())

	if len(gateway.Texts) != 1 || gateway.Texts[0] != "Someone Just completed the task Wash car" {
		t.Errorf("posted texts = %v", gateway.Texts)
	}
	if len(sender.Sent) != 0 {
		t.Error("direct mode must not use the queue")
	}
}

func TestNotifyTaskCompletedSwallowsErrors(t *testing.T) {
	gateway := &MockNotificationGateway{PostMessageFunc: func(context.Context, string) error { return errMockPost }}
	uc := NewNotificationUseCase(Config{Mode: model.NotificationDirect}, gateway, nil, nil)

	// Must not panic or propagate the failure.
	uc.NotifyTaskCompleted(context.Background(), completedTask())

	if len(gateway.Texts) != 1 {
		t.Errorf("expected one delivery attempt, got %d", len(gateway.Texts))
	}
}

func TestNotifyTaskCompletedQueue(t *testing.T) {
	gateway := &MockNotificationGateway{}
	sender := &MockSender{}
	uc := NewNotificationUseCase(Config{Mode: model.NotificationQueue, QueueName: "task-completed"}, gateway, sender, nil)

	uc.NotifyTaskCompleted(context.Background(), completedTask())

	if len(sender.Sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.Sent))
	}
	if sender.Sent[0].queue != "task-completed" {
		t.Errorf("queue = %s", sender.Sent[0].queue)
	}
	event, ok := sender.Sent[0].body.(model.TaskCompletedEvent)
	if !ok || event.TaskID != 7 || event.Title != "Wash car" || event.CompletedAt != "2024-06-16" {
		t.Errorf("body = %#v", sender.Sent[0].body)
	}
	if len(gateway.Texts) != 0 {
		t.Error("queue mode must not post directly")
	}
}

func TestNotifyTaskCompletedDisabled(t *testing.T) {
	gateway := &MockNotificationGateway{}
	sender := &MockSender{}
	uc := NewNotificationUseCase(Config{Mode: model.NotificationDisabled}, gateway, sender, nil)

	uc.NotifyTaskCompleted(context.Background(), completedTask())

	if len(gateway.Texts) != 0 || len(sender.Sent) != 0 {
		t.Error("disabled mode must not send anything")
	}
}

func TestSendDailyDigest(t *testing.T) {
	now := time.Date(2024, 6, 16, 18, 0, 0, 0, time.UTC)

	var gotFrom, gotTo time.Time
	tasks := &MockTaskGateway{CountFunc: func(ctx context.Context, from, to time.Time) (int64, error) {
		gotFrom, gotTo = from, to
		return 3, nil
	}}
	gateway := &MockNotificationGateway{}
	uc := newNotificationUseCase(Config{Mode: model.NotificationDirect}, gateway, nil, tasks, func() time.Time { return now })

	count, err := uc.SendDailyDigest(context.Background())
	if err != nil {
		t.Fatalf("SendDailyDigest() error = %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if !gotFrom.Equal(time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)) || !gotTo.Equal(gotFrom.AddDate(0, 0, 1)) {
		t.Errorf("window = [%v, %v)", gotFrom, gotTo)
	}
	if len(gateway.Texts) != 1 || gateway.Texts[0] != "3 task(s) completed today" {
		t.Errorf("posted texts = %v", gateway.Texts)
	}
}

func TestSendDailyDigestSkipsEmptyDay(t *testing.T) {
	tasks := &MockTaskGateway{CountFunc: func(context.Context, time.Time, time.Time) (int64, error) { return 0, nil }}
	gateway := &MockNotificationGateway{}
	uc := NewNotificationUseCase(Config{Mode: model.NotificationDirect}, gateway, nil, tasks)

	count, err := uc.SendDailyDigest(context.Background())
	if err != nil || count != 0 {
		t.Fatalf("SendDailyDigest() = (%d, %v), want (0, nil)", count, err)
	}
	if len(gateway.Texts) != 0 {
		t.Error("empty digest must not be posted")
	}
}

func TestDeliverReturnsGatewayError(t *testing.T) {
	gateway := &MockNotificationGateway{PostMessageFunc: func(context.Context, string) error { return errMockPost }}
	uc := NewNotificationUseCase(Config{Mode: model.NotificationQueue}, gateway, nil, nil)

	err := uc.Deliver(context.Background(), model.TaskCompletedEvent{TaskID: 1, Title: "x"})
	if !errors.Is(err, errMockPost) {
		t.Errorf("Deliver() error = %v, want %v", err, errMockPost)
	}
}
