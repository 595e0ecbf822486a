package redeem_coupon

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
	"github.com/m04kA/SMC-BarberService/internal/service/loyalty"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeService struct {
	code          string
	appointmentID *uuid.UUID
	err           error
}

func (f *fakeService) RedeemCoupon(_ context.Context, _ domain.Actor, code string, appointmentID *uuid.UUID) (*loyalty.RedeemedCoupon, error) {
	f.code, f.appointmentID = code, appointmentID
	if f.err != nil {
		return nil, f.err
	}
	return &loyalty.RedeemedCoupon{
		Code:          code,
		CustomerID:    uuid.New(),
		AppointmentID: appointmentID,
		RedeemedAt:    time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}, nil
}

func redeem(svc *fakeService, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/functions/v1/redeem-coupon", strings.NewReader(body))
	customerID := uuid.New()
	actor := domain.NewActor(uuid.New(), uuid.New(), domain.RoleCustomer, &customerID, nil)
	r = r.WithContext(middleware.WithActor(r.Context(), actor))

	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{}
	appointmentID := uuid.New()

	w := redeem(svc, `{"code":"CUPOM-AB12CD34","appointment_id":"`+appointmentID.String()+`"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CUPOM-AB12CD34", svc.code)
	require.NotNil(t, svc.appointmentID)
	assert.Equal(t, appointmentID, *svc.appointmentID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, appointmentID.String(), body["appointment_id"])
}

func TestHandle_Rejections(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{loyalty.ErrInvalidInput, http.StatusBadRequest, msgInvalidCode},
		{loyalty.ErrCouponNotFound, http.StatusNotFound, msgCouponNotFound},
		{loyalty.ErrCouponNotOwned, http.StatusForbidden, msgCouponNotOwned},
		{loyalty.ErrCouponAlreadyRedeemed, http.StatusBadRequest, msgAlreadyRedeemed},
		{loyalty.ErrCouponExpired, http.StatusBadRequest, msgExpired},
		{loyalty.ErrAppointmentNotFound, http.StatusNotFound, msgAppointmentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := redeem(&fakeService{err: tt.err}, `{"code":"CUPOM-AB12CD34"}`)
			require.Equal(t, tt.wantStatus, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	w := redeem(&fakeService{err: loyalty.ErrInternal}, `{"code":"CUPOM-AB12CD34"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
