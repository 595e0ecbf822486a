package create_transaction

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/internal/service/cashregister"
	"github.com/m04kA/SMC-BarberService/internal/service/cashregister/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeService struct {
	req *models.CreateTransactionRequest
	err error
}

func (f *fakeService) Create(_ context.Context, actor domain.Actor, req *models.CreateTransactionRequest) (*models.TransactionResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.TransactionResponse{ID: uuid.New(), Type: req.Type, Amount: req.Amount, Date: req.Date, CreatedBy: actor.UserID}, nil
}

func post(svc *fakeService, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	actor := domain.NewActor(uuid.New(), uuid.New(), domain.RoleAdmin, nil, nil)
	r = r.WithContext(middleware.WithActor(r.Context(), actor))

	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_DecodesDecimalAmount(t *testing.T) {
	svc := &fakeService{}

	w := post(svc, `{"type":"income","amount":"45.90","category":"corte","transactionDate":"2024-03-15"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decimal.RequireFromString("45.90").Equal(svc.req.Amount))
	assert.Equal(t, "corte", svc.req.Category)
	assert.Contains(t, w.Body.String(), `"amount":"45.9"`)
}

func TestHandle_Errors(t *testing.T) {
	body := `{"type":"expense","amount":10,"category":"aluguel","transactionDate":"2024-03-15"}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"customer", cashregister.ErrAccessDenied, http.StatusForbidden},
		{"no tenant", cashregister.ErrTenantNotFound, http.StatusBadRequest},
		{"foreign appointment", cashregister.ErrAppointmentNotFound, http.StatusNotFound},
		{"negative amount", cashregister.ErrInvalidInput, http.StatusBadRequest},
		{"internal", cashregister.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(&fakeService{err: tt.err}, body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
