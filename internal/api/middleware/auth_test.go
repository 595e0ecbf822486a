package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

const testSecret = "test-secret"

type fakeResolver struct {
	err error
}

func (f fakeResolver) Resolve(_ context.Context, userID uuid.UUID) (domain.Actor, error) {
	if f.err != nil {
		return domain.Actor{}, f.err
	}
	return domain.NewActor(userID, uuid.New(), domain.RoleCustomer, nil, nil), nil
}

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(sub string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   sub,
		Issuer:    "barber",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

func TestAuth(t *testing.T) {
	userID := uuid.New()

	expired := validClaims(userID.String())
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := validClaims(userID.String())
	noExpiry.ExpiresAt = nil

	otherIssuer := validClaims(userID.String())
	otherIssuer.Issuer = "someone-else"

	tests := []struct {
		name       string
		header     string
		resolver   fakeResolver
		wantStatus int
	}{
		{
			name:       "valid token",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(userID.String())),
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not bearer",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims(userID.String())),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong algorithm",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(userID.String())),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no expiry",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "other issuer",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), otherIssuer),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "subject is not uuid",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("42")),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "resolver failure",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(userID.String())),
			resolver:   fakeResolver{err: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := NewAuth(testSecret, "barber", tt.resolver, logger.NewNop())

			var got domain.Actor
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				actor, ok := GetActor(r.Context())
				require.True(t, ok)
				got = actor
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			auth.Middleware(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID, got.UserID)
			}
		})
	}
}

func TestGetUserID_Missing(t *testing.T) {
	_, ok := GetUserID(context.Background())
	assert.False(t, ok)

	id := uuid.New()
	ctx := WithActor(context.Background(), domain.NewActor(id, uuid.Nil, domain.RoleCustomer, nil, nil))
	got, ok := GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
