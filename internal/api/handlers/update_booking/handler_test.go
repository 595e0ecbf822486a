package update_booking

import (
	"context"
	"encoding/json"
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
	updateBooking "github.com/m04kA/SMC-BarberService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

type fakeUseCase struct {
	req *updateBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateBooking.Request) (*updateBooking.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &updateBooking.Response{
		Appointment: &domain.Appointment{ID: req.AppointmentID, Status: domain.StatusCompleted, StartTime: "10:00"},
		Credited:    true,
	}, nil
}

func patch(t *testing.T, uc *fakeUseCase, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, logger.NewNop())

	r := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/"+id, strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"id": id})
	actor := domain.NewActor(uuid.New(), uuid.New(), domain.RoleBarber, nil, nil)
	r = r.WithContext(middleware.WithActor(r.Context(), actor))

	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Success(t *testing.T) {
	id := uuid.New()
	uc := &fakeUseCase{}

	w := patch(t, uc, id.String(), `{"status":"completed","appointmentTime":"14:30"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, uc.req.AppointmentID)
	require.NotNil(t, uc.req.Status)
	assert.Equal(t, "completed", *uc.req.Status)
	require.NotNil(t, uc.req.StartTime)
	assert.Equal(t, types.TimeString("14:30"), *uc.req.StartTime)
	assert.Nil(t, uc.req.Date)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["loyaltyCredited"])
	assert.Equal(t, "completed", body["status"])
}

func TestHandle_Errors(t *testing.T) {
	id := uuid.New().String()

	tests := []struct {
		name       string
		id         string
		body       string
		ucErr      error
		wantStatus int
	}{
		{"bad id", "42", `{"status":"cancelled"}`, nil, http.StatusBadRequest},
		{"bad body", id, `[`, nil, http.StatusBadRequest},
		{"bad date", id, `{"appointmentDate":"tomorrow"}`, nil, http.StatusBadRequest},
		{"not found", id, `{"status":"cancelled"}`, updateBooking.ErrAppointmentNotFound, http.StatusNotFound},
		{"forbidden", id, `{"status":"confirmed"}`, updateBooking.ErrAccessDenied, http.StatusForbidden},
		{"conflict", id, `{"appointmentTime":"11:00"}`, updateBooking.ErrSlotNotAvailable, http.StatusConflict},
		{"invalid", id, `{}`, updateBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal", id, `{"status":"completed"}`, updateBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := patch(t, &fakeUseCase{err: tt.ucErr}, tt.id, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
