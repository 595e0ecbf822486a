package update_working_hours

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeService struct {
	req *models.UpsertWorkingHoursRequest
	err error
}

func (f *fakeService) UpsertWorkingHours(_ context.Context, _ domain.Actor, req *models.UpsertWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.WorkingHoursResponse{DayOfWeek: req.DayOfWeek, IsOpen: req.IsOpen, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func put(svc *fakeService, day, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())

	r := httptest.NewRequest(http.MethodPut, "/api/v1/working-hours/"+day, strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"dayOfWeek": day})
	actor := domain.NewActor(uuid.New(), uuid.New(), domain.RoleAdmin, nil, nil)
	r = r.WithContext(middleware.WithActor(r.Context(), actor))

	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{}

	w := put(svc, "1", `{"isOpen":true,"startTime":"09:00","endTime":"19:00"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.req.DayOfWeek)
	assert.True(t, svc.req.IsOpen)
	assert.Equal(t, "19:00", svc.req.EndTime)
}

func TestHandle_InvalidDay(t *testing.T) {
	for _, day := range []string{"7", "-1", "monday"} {
		t.Run(day, func(t *testing.T) {
			svc := &fakeService{}
			w := put(svc, day, `{"isOpen":false}`)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, svc.req)
		})
	}
}

func TestHandle_ServiceErrors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{schedule.ErrAccessDenied, http.StatusForbidden},
		{schedule.ErrTenantNotFound, http.StatusBadRequest},
		{fmt.Errorf("%w: startTime must be before endTime", schedule.ErrInvalidInput), http.StatusBadRequest},
		{schedule.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := put(&fakeService{err: tt.err}, "3", `{"isOpen":true,"startTime":"18:00","endTime":"09:00"}`)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
