package create_blocked_time

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeService struct {
	req *models.CreateBlockedTimeRequest
	err error
}

func (f *fakeService) CreateBlockedTime(_ context.Context, _ domain.Actor, req *models.CreateBlockedTimeRequest) (*models.BlockedTimeResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BlockedTimeResponse{ID: uuid.New(), BarberID: req.BarberID, Date: req.Date, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func post(svc *fakeService, body string, withActor bool) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/blocked-times", strings.NewReader(body))
	if withActor {
		barberID := uuid.New()
		actor := domain.NewActor(uuid.New(), uuid.New(), domain.RoleBarber, nil, &barberID)
		r = r.WithContext(middleware.WithActor(r.Context(), actor))
	}

	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{}
	barberID := uuid.New()
	body := `{"barberId":"` + barberID.String() + `","date":"2024-03-15","startTime":"12:00","endTime":"13:00","reason":"almoço"}`

	w := post(svc, body, true)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, barberID, svc.req.BarberID)
	require.NotNil(t, svc.req.Reason)
	assert.Equal(t, "almoço", *svc.req.Reason)
}

func TestHandle_Errors(t *testing.T) {
	body := `{"barberId":"` + uuid.New().String() + `","date":"2024-03-15","startTime":"12:00","endTime":"13:00"}`

	tests := []struct {
		name       string
		body       string
		withActor  bool
		err        error
		wantStatus int
	}{
		{"no actor", body, false, nil, http.StatusUnauthorized},
		{"empty body", "", true, nil, http.StatusBadRequest},
		{"foreign barber", body, true, schedule.ErrAccessDenied, http.StatusForbidden},
		{"unknown barber", body, true, schedule.ErrBarberNotFound, http.StatusNotFound},
		{"bad range", body, true, schedule.ErrInvalidInput, http.StatusBadRequest},
		{"internal", body, true, schedule.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(&fakeService{err: tt.err}, tt.body, tt.withActor)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
