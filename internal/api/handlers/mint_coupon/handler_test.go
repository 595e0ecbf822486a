package mint_coupon

import (
	"context"
	"encoding/json"
	"fmt"
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
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

type fakeService struct {
	customerID *uuid.UUID
	err        error
}

func (f *fakeService) MintCoupon(_ context.Context, actor domain.Actor, customerID *uuid.UUID) (*loyalty.MintedCoupon, error) {
	f.customerID = customerID
	if f.err != nil {
		return nil, f.err
	}
	return &loyalty.MintedCoupon{
		Coupon: &domain.Coupon{
			CustomerID: *actor.CustomerID,
			Code:       "CUPOM-AB12CD34",
			ExpiresAt:  ptr.Ptr(time.Date(2024, 6, 13, 12, 0, 0, 0, time.UTC)),
		},
		RemainingPoints: 2,
	}, nil
}

func mint(svc *fakeService, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/functions/v1/mint-coupon", strings.NewReader(body))
	customerID := uuid.New()
	actor := domain.NewActor(uuid.New(), uuid.New(), domain.RoleCustomer, &customerID, nil)
	r = r.WithContext(middleware.WithActor(r.Context(), actor))

	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_EmptyBodyMintsForCaller(t *testing.T) {
	svc := &fakeService{}

	w := mint(svc, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.customerID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "CUPOM-AB12CD34", body["code"])
	assert.Equal(t, float64(2), body["remaining_points"])
}

func TestHandle_InsufficientPoints(t *testing.T) {
	w := mint(&fakeService{err: fmt.Errorf("%w: have 7, need 10", loyalty.ErrInsufficientPoints)}, "{}")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, msgInsufficientPoints, body["error"])
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"malformed body", `{"customer_id":"nope"}`, nil, http.StatusBadRequest},
		{"foreign customer", `{}`, loyalty.ErrAccessDenied, http.StatusForbidden},
		{"unknown customer", `{}`, loyalty.ErrCustomerNotFound, http.StatusNotFound},
		{"internal", `{}`, loyalty.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := mint(&fakeService{err: tt.err}, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}
