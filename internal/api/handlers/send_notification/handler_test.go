package send_notification

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
	userID  uuid.UUID
	msg     notifications.Message
	outcome notifications.Outcome
	err     error
}

func (f *fakeService) SendAsActor(_ context.Context, _ domain.Actor, userID uuid.UUID, msg notifications.Message) (notifications.Outcome, error) {
	f.userID, f.msg = userID, msg
	if f.err != nil {
		return notifications.OutcomeFailed, f.err
	}
	return f.outcome, nil
}

func send(svc *fakeService, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/functions/v1/send-notification", strings.NewReader(body))
	actor := domain.NewActor(uuid.New(), uuid.New(), domain.RoleAdmin, nil, nil)
	r = r.WithContext(middleware.WithActor(r.Context(), actor))

	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_PassesMessageThrough(t *testing.T) {
	svc := &fakeService{outcome: notifications.OutcomeSent}
	userID, relatedID := uuid.New(), uuid.New()

	w := send(svc, `{"user_id":"`+userID.String()+`","title":"Confirmado","message":"Seu horário foi confirmado","type":"confirmation","related_id":"`+relatedID.String()+`"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, svc.userID)
	assert.Equal(t, domain.NotificationConfirmation, svc.msg.Type)
	require.NotNil(t, svc.msg.RelatedID)
	assert.Equal(t, relatedID, *svc.msg.RelatedID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["sent"])
}

func TestHandle_SkippedIsStillSuccess(t *testing.T) {
	svc := &fakeService{outcome: notifications.OutcomeSkipped}

	w := send(svc, `{"user_id":"`+uuid.NewString()+`","title":"Promo","message":"Desconto","type":"marketing"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, false, body["sent"])
	assert.Equal(t, "skipped", body["outcome"])
}

func TestHandle_Errors(t *testing.T) {
	valid := `{"user_id":"` + uuid.NewString() + `","title":"t","message":"m","type":"system"}`

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"missing user", `{"title":"t","message":"m","type":"system"}`, nil, http.StatusBadRequest},
		{"invalid type", valid, notifications.ErrInvalidInput, http.StatusBadRequest},
		{"customer to other user", valid, notifications.ErrAccessDenied, http.StatusForbidden},
		{"internal", valid, notifications.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := send(&fakeService{err: tt.err}, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}
