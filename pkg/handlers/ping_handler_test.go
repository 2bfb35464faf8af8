package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPingHandler(t *testing.T) {
	tests := []struct {
		name   string
		check  HealthCheck
		status int
		body   string
	}{
		{name: "no check", check: nil, status: http.StatusOK, body: "pong"},
		{name: "healthy", check: func(context.Context) error { return nil }, status: http.StatusOK, body: "pong"},
		{
			name:   "storage down",
			check:  func(context.Context) error { return errors.New("redis down") },
			status: http.StatusServiceUnavailable,
			body:   "Service Unavailable\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			PingHandler(tt.check)(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}
