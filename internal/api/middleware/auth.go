package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/domain"
)

const (
	bearerPrefix = "Bearer "

	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "недействительный токен"
	msgTokenExpired = "срок действия токена истёк"
)

var ErrInvalidSubject = errors.New("token subject is not a user id")

// ActorResolver определяет роль и барбершоп пользователя
type ActorResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (domain.Actor, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет HS256 токен (sub = ID аккаунта) и кладёт Actor в контекст
type Auth struct {
	secret   []byte
	issuer   string
	resolver ActorResolver
	logger   Logger
}

func NewAuth(secret, issuer string, resolver ActorResolver, logger Logger) *Auth {
	return &Auth{
		secret:   []byte(secret),
		issuer:   issuer,
		resolver: resolver,
		logger:   logger,
	}
}

// Middleware для mux.Router.Use
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) || strings.TrimSpace(header[len(bearerPrefix):]) == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		userID, err := a.parse(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			a.logger.Warn("Auth - Invalid token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				handlers.RespondUnauthorized(w, msgTokenExpired)
				return
			}
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		actor, err := a.resolver.Resolve(r.Context(), userID)
		if err != nil {
			a.logger.Error("Auth - Failed to resolve actor: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

func (a *Auth) parse(tokenString string) (uuid.UUID, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidSubject
	}
	return userID, nil
}
