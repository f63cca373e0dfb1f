package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"task-list-api/internal/domain/model"
)

type MockHealthUseCase struct {
	Response model.HealthResponse
}

func (m MockHealthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	return m.Response
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name       string
		status     model.HealthStatus
		wantStatus int
	}{
		{"up", model.StatusUp, http.StatusOK},
		{"down", model.StatusDown, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			NewHealthController(e.Group(""), MockHealthUseCase{Response: model.HealthResponse{
				Status:   tt.status,
				Database: model.ComponentHealthStatus{Status: tt.status},
				Cache:    model.DisabledComponent(),
				Queue:    model.DisabledComponent(),
			}}).InitHealthRoutes()

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body model.HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != tt.status || body.Cache.Status != model.StatusUnknown {
				t.Errorf("body = %+v", body)
			}
		})
	}
}
