package notification

import "task-list-api/internal/domain/gateway/db"

type taskGatewayStub struct {
	db.TaskGateway
}
