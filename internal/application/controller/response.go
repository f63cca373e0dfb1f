package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"task-list-api/internal/domain/exception"
	"task-list-api/internal/domain/model"
	"task-list-api/pkg/log"
	"task-list-api/pkg/msg"
)

// writeError renders err as the JSON body of its exception kind. Errors that
// are not exceptions become a 500 with a generic message.
func writeError(c echo.Context, err error) error {
	var appErr *exception.Exception
	if errors.As(err, &appErr) {
		if appErr.Kind == exception.KindInvalidPayload {
			return c.JSON(appErr.StatusCode, model.DetailsResponse{Details: appErr.Details})
		}
		return c.JSON(appErr.StatusCode, model.MessageResponse{Message: appErr.Message})
	}

	log.Error(msg.GetMessage("app.error.internal"),
		zap.String("method", c.Request().Method),
		zap.String("uri", c.Request().RequestURI),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err))
	return c.JSON(http.StatusInternalServerError, model.MessageResponse{Message: msg.GetMessage("app.error.internal")})
}
