package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/trimsy-app/trimsy_backend/internal/api/http/middleware"
	"github.com/trimsy-app/trimsy_backend/internal/service/availability"
)

type stubAvailability struct {
	grid availability.TimeGrid
	err  error
}

func (s stubAvailability) GetAvailability(context.Context, uuid.UUID, availability.Request) (availability.TimeGrid, error) {
	return s.grid, s.err
}

func newAvailabilityApp(svc availability.Service) *fiber.App {
	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		c.Locals(middleware.LocalsBusinessID, uuid.NewString())
		return c.Next()
	})
	app.Get("/availability", NewAvailabilityHandler(svc).Get)
	return app
}

func TestAvailabilityGet(t *testing.T) {
	employee := uuid.New()
	service := uuid.New()

	tests := []struct {
		name       string
		target     string
		svc        availability.Service
		wantStatus int
	}{
		{
			"open slots",
			"/availability?date=2026-09-01&service_id=" + service.String(),
			stubAvailability{grid: availability.TimeGrid{{Minutes: 540, EmployeeIDs: []uuid.UUID{employee}}}},
			fiber.StatusOK,
		},
		{
			"missing date",
			"/availability?service_id=" + service.String(),
			stubAvailability{},
			fiber.StatusBadRequest,
		},
		{
			"missing service_id",
			"/availability?date=2026-09-01",
			stubAvailability{},
			fiber.StatusBadRequest,
		},
		{
			"malformed date",
			"/availability?date=01-09-2026&service_id=" + service.String(),
			stubAvailability{},
			fiber.StatusBadRequest,
		},
		{
			"malformed service_id",
			"/availability?date=2026-09-01&service_id=nope",
			stubAvailability{},
			fiber.StatusBadRequest,
		},
		{
			"malformed employee_id",
			"/availability?date=2026-09-01&service_id=" + service.String() + "&employee_id=nope",
			stubAvailability{},
			fiber.StatusBadRequest,
		},
		{
			"unknown service",
			"/availability?date=2026-09-01&service_id=" + service.String(),
			stubAvailability{err: availability.ErrServiceNotFound},
			fiber.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newAvailabilityApp(tt.svc)
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("read body: %v", err)
			}
			var envelope struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}
			if err := json.Unmarshal(body, &envelope); err != nil {
				t.Fatalf("unmarshal %q: %v", body, err)
			}
			if wantSuccess := tt.wantStatus == fiber.StatusOK; envelope.Success != wantSuccess {
				t.Errorf("success = %v, want %v (body %s)", envelope.Success, wantSuccess, body)
			}
			if tt.wantStatus != fiber.StatusOK && envelope.Error == "" {
				t.Errorf("error message missing in %s", body)
			}
		})
	}
}
