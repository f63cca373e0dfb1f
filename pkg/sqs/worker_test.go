package sqs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

func TestNewWorkerValidatesConfig(t *testing.T) {
	handler := HandlerFunc(func(context.Context, types.Message) error { return nil })

	tests := []struct {
		name    string
		config  *WorkerConfig
		client  *MockSQSClient
		wantErr bool
	}{
		{"defaults", nil, &MockSQSClient{}, false},
		{"too many messages", &WorkerConfig{MaxNumberOfMessages: 11}, &MockSQSClient{}, true},
		{"wait too long", &WorkerConfig{WaitTimeSeconds: 21}, &MockSQSClient{}, true},
		{"negative pool", &WorkerConfig{PoolSize: -1}, &MockSQSClient{}, true},
		{"unknown queue", nil, &MockSQSClient{GetQueueUrlErr: errMockQueue}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worker, err := NewWorker(context.Background(), tt.client, "q", handler, tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewWorker() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && (worker.maxNumberOfMessages != 10 || worker.waitTimeSeconds != 20 || worker.poolSize != 1) {
				t.Errorf("defaults = %d/%d/%d", worker.maxNumberOfMessages, worker.waitTimeSeconds, worker.poolSize)
			}
		})
	}
}

func TestWorkerProcessesAndDeletes(t *testing.T) {
	client := &MockSQSClient{Pending: []types.Message{message("1", "ok"), message("2", "fail")}}

	var handled atomic.Int32
	handler := HandlerFunc(func(ctx context.Context, msg types.Message) error {
		handled.Add(1)
		if *msg.Body == "fail" {
			return errors.New("boom")
		}
		return nil
	})

	worker, err := NewWorker(context.Background(), client, "q", handler, &WorkerConfig{WaitTimeSeconds: 1})
	if err != nil {
		t.Fatalf("NewWorker() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for handled.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	health := worker.HealthCheck(context.Background())
	if health.Status != StatusUp {
		t.Errorf("running worker status = %s", health.Status)
	}

	cancel()
	<-done

	if deleted := client.deleted(); len(deleted) != 1 || deleted[0] != "receipt-1" {
		t.Errorf("deleted = %v, want only receipt-1", deleted)
	}

	health = worker.HealthCheck(context.Background())
	if health.Status != StatusDown {
		t.Errorf("stopped worker status = %s", health.Status)
	}
	if health.Details["processed"] != "1" || health.Details["failed"] != "1" || health.Details["last_error"] != "boom" {
		t.Errorf("details = %v", health.Details)
	}
}

func TestWorkerHealthQueueUnreachable(t *testing.T) {
	client := &MockSQSClient{GetQueueAttributesErr: errMockQueue}
	worker, err := NewWorker(context.Background(), client, "q", HandlerFunc(func(context.Context, types.Message) error { return nil }), nil)
	if err != nil {
		t.Fatalf("NewWorker() error = %v", err)
	}
	worker.running.Store(true)

	health := worker.HealthCheck(context.Background())
	if health.Status != StatusDown || health.Details["error"] != errMockQueue.Error() {
		t.Errorf("health = %+v", health)
	}
}
