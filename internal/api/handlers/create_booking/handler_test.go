package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	createBooking "github.com/m04kA/SMC-BarberService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

type fakeUseCase struct {
	req *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &createBooking.Response{
		Appointment: &domain.Appointment{
			ID:              uuid.New(),
			BarberID:        req.BarberID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			Status:          domain.StatusPending,
			ServiceDuration: 30,
		},
		Notified: 2,
	}, nil
}

func post(t *testing.T, uc *fakeUseCase, body string, withActor bool) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, logger.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if withActor {
		actor := domain.NewActor(uuid.New(), uuid.New(), domain.RoleCustomer, nil, nil)
		r = r.WithContext(middleware.WithActor(r.Context(), actor))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func validBody(barberID, serviceID uuid.UUID) string {
	return `{"barberId":"` + barberID.String() + `","serviceId":"` + serviceID.String() +
		`","appointmentDate":"2024-03-15","appointmentTime":"10:00"}`
}

func TestHandle_Created(t *testing.T) {
	barberID, serviceID := uuid.New(), uuid.New()
	uc := &fakeUseCase{}

	w := post(t, uc, validBody(barberID, serviceID), true)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), uc.req.Date)
	assert.Equal(t, types.TimeString("10:00"), uc.req.StartTime)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, float64(2), body["notifiedStaff"])
	assert.Equal(t, barberID.String(), body["barberId"])
}

func TestHandle_Errors(t *testing.T) {
	barberID, serviceID := uuid.New(), uuid.New()

	tests := []struct {
		name       string
		body       string
		noActor    bool
		ucErr      error
		wantStatus int
	}{
		{name: "no actor", body: validBody(barberID, serviceID), noActor: true, wantStatus: http.StatusUnauthorized},
		{name: "bad json", body: "{", wantStatus: http.StatusBadRequest},
		{name: "bad date", body: `{"appointmentDate":"15.03.2024","appointmentTime":"10:00"}`, wantStatus: http.StatusBadRequest},
		{name: "bad time", body: `{"appointmentDate":"2024-03-15","appointmentTime":"10h"}`, wantStatus: http.StatusBadRequest},
		{name: "slot taken", body: validBody(barberID, serviceID), ucErr: createBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "no tenant", body: validBody(barberID, serviceID), ucErr: createBooking.ErrTenantNotFound, wantStatus: http.StatusBadRequest},
		{name: "barber not found", body: validBody(barberID, serviceID), ucErr: createBooking.ErrBarberNotFound, wantStatus: http.StatusNotFound},
		{name: "past", body: validBody(barberID, serviceID), ucErr: createBooking.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "forbidden", body: validBody(barberID, serviceID), ucErr: createBooking.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "internal", body: validBody(barberID, serviceID), ucErr: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, &fakeUseCase{err: tt.ucErr}, tt.body, !tt.noActor)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
