package sqs

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

var errMockQueue = errors.New("queue unavailable")

// MockSQSClient serves queued messages once and records sends and deletes.
type MockSQSClient struct {
	mu sync.Mutex

	GetQueueUrlErr        error
	GetQueueAttributesErr error
	SendMessageErr        error

	Pending  []types.Message
	Sent     []string
	Deleted  []string
	URLCalls int
}

func (m *MockSQSClient) GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.URLCalls++
	if m.GetQueueUrlErr != nil {
		return nil, m.GetQueueUrlErr
	}
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("http://localhost:4566/000000000000/" + *params.QueueName)}, nil
}

func (m *MockSQSClient) GetQueueAttributes(ctx context.Context, params *sqs.GetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error) {
	if m.GetQueueAttributesErr != nil {
		return nil, m.GetQueueAttributesErr
	}
	return &sqs.GetQueueAttributesOutput{}, nil
}

func (m *MockSQSClient) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if m.SendMessageErr != nil {
		return nil, m.SendMessageErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, *params.MessageBody)
	return &sqs.SendMessageOutput{MessageId: aws.String("sent")}, nil
}

func (m *MockSQSClient) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	m.mu.Lock()
	if len(m.Pending) > 0 {
		messages := m.Pending
		m.Pending = nil
		m.mu.Unlock()
		return &sqs.ReceiveMessageOutput{Messages: messages}, nil
	}
	m.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(10 * time.Millisecond):
		return &sqs.ReceiveMessageOutput{}, nil
	}
}

func (m *MockSQSClient) DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, *params.ReceiptHandle)
	return &sqs.DeleteMessageOutput{}, nil
}

func (m *MockSQSClient) deleted() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Deleted...)
}

func message(id string, body string) types.Message {
	return types.Message{
		MessageId:     aws.String(id),
		ReceiptHandle: aws.String("receipt-" + id),
		Body:          aws.String(body),
	}
}
