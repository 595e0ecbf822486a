package adjust_loyalty_points

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
	"github.com/m04kA/SMC-BarberService/internal/service/loyalty"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeService struct {
	req loyalty.AdjustRequest
	err error
}

func (f *fakeService) Adjust(_ context.Context, _ domain.Actor, req loyalty.AdjustRequest) (*loyalty.LedgerEntry, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &loyalty.LedgerEntry{CustomerID: req.CustomerID, Action: req.Action, PointsChange: -3, PointsBalance: 0}, nil
}

func call(svc *fakeService, customerID, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/customers/"+customerID+"/loyalty-points", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"customerId": customerID})
	actor := domain.NewActor(uuid.New(), uuid.New(), domain.RoleBarber, nil, nil)
	r = r.WithContext(middleware.WithActor(r.Context(), actor))

	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{}
	customerID := uuid.New()

	w := call(svc, customerID.String(), `{"action":"remove","points":5,"description":"ajuste"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, customerID, svc.req.CustomerID)
	assert.Equal(t, domain.LoyaltyRemove, svc.req.Action)
	assert.Equal(t, 5, svc.req.Points)

	var resp AdjustPointsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.PointsBalance)
	assert.Equal(t, -3, resp.PointsChange)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
		body       string
		err        error
		wantStatus int
	}{
		{"bad customer id", "x", `{"action":"add","points":1}`, nil, http.StatusBadRequest},
		{"bad body", uuid.NewString(), `{"points":"one"}`, nil, http.StatusBadRequest},
		{"customer cannot adjust", uuid.NewString(), `{"action":"add","points":1}`, loyalty.ErrAccessDenied, http.StatusForbidden},
		{"unknown customer", uuid.NewString(), `{"action":"add","points":1}`, loyalty.ErrCustomerNotFound, http.StatusNotFound},
		{"unknown action", uuid.NewString(), `{"action":"double","points":1}`, loyalty.ErrInvalidInput, http.StatusBadRequest},
		{"internal", uuid.NewString(), `{"action":"set","points":1}`, loyalty.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(&fakeService{err: tt.err}, tt.customerID, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
