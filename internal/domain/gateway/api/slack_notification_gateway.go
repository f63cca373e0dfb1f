package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"task-list-api/pkg/http"
)

const slackPostMessagePath = "/api/chat.postMessage"

// SlackResponse is the envelope Slack returns for every Web API call; HTTP 200
// with ok=false still means the message was rejected.
type SlackResponse struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// SlackConfig is built by the caller from configuration, the token is never
// read from the environment here.
type SlackConfig struct {
	BaseURL string
	Token   string
	Channel string
	Timeout time.Duration
}

type slackNotificationGateway struct {
	httpClient *http.Client
	token      string
	channel    string
}

// NewSlackNotificationGateway creates a NotificationGateway backed by Slack chat.postMessage
func NewSlackNotificationGateway(config SlackConfig) NotificationGateway {
	httpClient := http.NewHttpClient(config.BaseURL, http.ClientOptions{
		ReadTimeout: config.Timeout,
		Logger:      http.ZapLogger{},
	})

	return &slackNotificationGateway{
		httpClient: httpClient,
		token:      config.Token,
		channel:    config.Channel,
	}
}

func (s *slackNotificationGateway) PostMessage(ctx context.Context, text string) error {
	successResp, errResp, _, err := s.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.POST).
		WithPath(slackPostMessagePath).
		WithQueryParams(map[string]string{
			"channel": s.channel,
			"text":    text,
		}).
		WithHeaders(map[string]string{
			"Authorization": "Bearer " + s.token,
		}).
		WithSuccessResp(&SlackResponse{}).
		WithErrorResp(&SlackResponse{}).
		Execute()

	if err != nil {
		if errResp != nil {
			if slackErr := errResp.(*SlackResponse); slackErr.Error != "" {
				return fmt.Errorf("slack rejected message: %s: %w", slackErr.Error, err)
			}
		}
		return err
	}

	response := successResp.(*SlackResponse)
	if !response.Ok {
		if response.Error == "" {
			return errors.New("slack rejected message")
		}
		return fmt.Errorf("slack rejected message: %s", response.Error)
	}
	return nil
}
