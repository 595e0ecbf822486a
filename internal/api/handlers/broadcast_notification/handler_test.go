package broadcast_notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/notifications"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeService struct {
	msg notifications.Message
	err error
}

func (f *fakeService) Broadcast(_ context.Context, _ domain.Actor, msg notifications.Message) (*notifications.FanOutResult, error) {
	f.msg = msg
	if f.err != nil {
		return nil, f.err
	}
	return &notifications.FanOutResult{Recipients: 3, Sent: 2, Skipped: 1}, nil
}

func post(svc *fakeService, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/broadcast", strings.NewReader(body))
	actor := domain.NewActor(uuid.New(), uuid.New(), domain.RoleAdmin, nil, nil)
	r = r.WithContext(middleware.WithActor(r.Context(), actor))

	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_DefaultsToMarketing(t *testing.T) {
	svc := &fakeService{}

	w := post(svc, `{"title":"Promoção","message":"Corte com 20% de desconto"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.NotificationMarketing, svc.msg.Type)
	assert.Nil(t, svc.msg.RelatedID)

	var resp BroadcastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, BroadcastResponse{Recipients: 3, Sent: 2, Skipped: 1}, resp)
}

func TestHandle_KeepsExplicitType(t *testing.T) {
	svc := &fakeService{}

	w := post(svc, `{"title":"Aviso","message":"Fechado no feriado","type":"system"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.NotificationSystem, svc.msg.Type)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{notifications.ErrAccessDenied, http.StatusForbidden},
		{notifications.ErrTenantNotFound, http.StatusBadRequest},
		{notifications.ErrInvalidInput, http.StatusBadRequest},
		{notifications.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := post(&fakeService{err: tt.err}, `{"title":"t","message":"m"}`)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
