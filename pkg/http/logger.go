package http

import (
	"time"

	"go.uber.org/zap"

	"task-list-api/pkg/log"
)

// HTTPLogger receives a callback around every outbound request.
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string, body string)

	// LogResponseSuccess is called after a 2xx response
	LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency time.Duration)

	// LogResponseError is called after a transport failure or a non-2xx response
	LogResponseError(method, url string, httpStatus int, responseBody string, latency time.Duration, err error)
}

type NopLogger struct{}

func (NopLogger) LogRequest(string, string, string)                                  {}
func (NopLogger) LogResponseSuccess(string, string, int, string, time.Duration)      {}
func (NopLogger) LogResponseError(string, string, int, string, time.Duration, error) {}

// ZapLogger writes outbound calls to the application log. Bodies are only
// logged at debug level since they may carry user content.
type ZapLogger struct{}

func (ZapLogger) LogRequest(method, url string, body string) {
	log.Debug("outbound request",
		zap.String("method", method),
		zap.String("url", url),
		zap.String("body", body),
	)
}

func (ZapLogger) LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency time.Duration) {
	log.Info("outbound request finished",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
	)
	log.Debug("outbound response body", zap.String("body", responseBody))
}

func (ZapLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency time.Duration, err error) {
	log.Error("outbound request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
		zap.String("body", responseBody),
		zap.Error(err),
	)
}
