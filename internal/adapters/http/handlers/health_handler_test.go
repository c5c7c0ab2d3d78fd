package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/dto"
	"github.com/jsamuelsen11/kanban-pipeline/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/kanban-pipeline/mocks"
)

// --- Liveness ---

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.Liveness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.LivenessResponse](t, rec)
	if resp.Status != dto.HealthOK {
		t.Errorf("status = %q, want %q", resp.Status, dto.HealthOK)
	}
}

// --- Readiness ---

func TestReadiness_AllHealthy(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"identity-api": nil,
	})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.ReadinessResponse](t, rec)
	if resp.Status != dto.HealthReady {
		t.Errorf("status = %q, want %q", resp.Status, dto.HealthReady)
	}
	if resp.Checks["identity-api"] != dto.HealthOK {
		t.Errorf("identity-api check = %v, want %q", resp.Checks["identity-api"], dto.HealthOK)
	}
	if len(resp.Failed) != 0 {
		t.Errorf("failed = %v, want none", resp.Failed)
	}
}

func TestReadiness_Unhealthy(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{
		"identity-api": errors.New("connection refused"),
		"sqlite":       nil,
	})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)

	resp := decodeJSON[dto.ReadinessResponse](t, rec)
	if resp.Status != dto.HealthNotReady {
		t.Errorf("status = %q, want %q", resp.Status, dto.HealthNotReady)
	}
	if resp.Checks["identity-api"] != "connection refused" {
		t.Errorf("identity-api check = %v, want %q", resp.Checks["identity-api"], "connection refused")
	}
	if resp.Checks["sqlite"] != dto.HealthOK {
		t.Errorf("sqlite check = %v, want %q", resp.Checks["sqlite"], dto.HealthOK)
	}
	if len(resp.Failed) != 1 || resp.Failed[0] != "identity-api" {
		t.Errorf("failed = %v, want [identity-api]", resp.Failed)
	}
}

func TestReadiness_NoCheckers(t *testing.T) {
	t.Parallel()

	registry := mocks.NewMockHealthRegistry(t)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	h := handlers.NewHealthHandler(registry)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	h.Readiness(rec, req)

	requireStatus(t, rec, http.StatusOK)
}
