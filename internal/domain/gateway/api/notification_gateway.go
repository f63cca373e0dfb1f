package api

import "context"

// NotificationGateway posts a plain text message to the team chat channel.
type NotificationGateway interface {
	PostMessage(ctx context.Context, text string) error
}
