package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments"
	"github.com/m04kA/SMC-BarberService/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) GetByID(_ context.Context, _ domain.Actor, id uuid.UUID) (*models.AppointmentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: id, Status: "pending", StartTime: "10:00"}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
	}{
		{"found", uuid.NewString(), nil, http.StatusOK},
		{"bad id", "abc", nil, http.StatusBadRequest},
		{"other tenant", uuid.NewString(), appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{"other customer", uuid.NewString(), appointments.ErrAccessDenied, http.StatusForbidden},
		{"internal", uuid.NewString(), appointments.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.NewNop())

			r := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/"+tt.id, nil)
			r = mux.SetURLVars(r, map[string]string{"id": tt.id})
			customerID := uuid.New()
			actor := domain.NewActor(uuid.New(), uuid.New(), domain.RoleCustomer, &customerID, nil)
			r = r.WithContext(middleware.WithActor(r.Context(), actor))

			w := httptest.NewRecorder()
			h.Handle(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
