package main

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"task-list-api/internal/domain/model"
	"task-list-api/pkg/log"
	sqslib "task-list-api/pkg/sqs"
)

// Sends one completion event to a LocalStack queue and consumes it.
//
//	awslocal sqs create-queue --queue-name task-completed
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "")),
	)
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	sqsClient := sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		o.BaseEndpoint = aws.String("http://localhost:4566")
	})

	queueName := "task-completed"

	sender := sqslib.NewSender(sqsClient)
	event := model.TaskCompletedEvent{TaskID: 1, Title: "Wash car", CompletedAt: time.Now().UTC().Format(time.DateOnly)}
	if err := sender.SendMessage(ctx, queueName, event); err != nil {
		log.Fatalf("Failed to send message: %v", err)
	}

	handler := sqslib.HandlerFunc(func(ctx context.Context, msg types.Message) error {
		log.Infof("Received message %s: %s", aws.ToString(msg.MessageId), aws.ToString(msg.Body))
		cancel()
		return nil
	})

	worker, err := sqslib.NewWorker(ctx, sqsClient, queueName, handler, &sqslib.WorkerConfig{WaitTimeSeconds: 5})
	if err != nil {
		log.Fatalf("Failed to create worker: %v", err)
	}
	worker.Start(ctx)
}
