package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/RentalBookingService/internal/api/handlers"
)

const (
	msgMissingToken = "требуется токен администратора"
	msgInvalidToken = "недействительный токен"
	msgForbidden    = "доступ запрещен"
	msgInvalidUser  = "некорректный X-User-ID"

	// UserIDHeader необязательный идентификатор пользователя витрины
	UserIDHeader = "X-User-ID"
)

type contextKey string

const (
	actorKey  contextKey = "actor"
	userIDKey contextKey = "user_id"
)

var (
	// ErrInvalidToken токен не прошел проверку подписи или срока действия
	ErrInvalidToken = errors.New("middleware: invalid token")

	// ErrNotAdmin в токене нет роли администратора
	ErrNotAdmin = errors.New("middleware: admin role required")
)

// AdminClaims claims токена администратора
type AdminClaims struct {
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// AdminAuth проверяет Bearer JWT (HS256) и роль администратора.
// Идентификатор администратора (sub или email) попадает в контекст как actor для журнала действий.
type AdminAuth struct {
	secret []byte
	role   string
	issuer string
	logger Logger
}

// NewAdminAuth создает middleware проверки администратора
func NewAdminAuth(secret, role, issuer string, logger Logger) *AdminAuth {
	return &AdminAuth{
		secret: []byte(secret),
		role:   role,
		issuer: issuer,
		logger: logger,
	}
}

// Middleware оборачивает защищенные маршруты
func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		claims, err := a.parse(raw)
		switch {
		case errors.Is(err, ErrNotAdmin):
			a.logger.Warn("AdminAuth: %s %s - subject=%s has no admin role", r.Method, r.URL.Path, claims.Subject)
			handlers.RespondForbidden(w, msgForbidden)
			return
		case err != nil:
			a.logger.Warn("AdminAuth: %s %s - %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), actorKey, actorFromClaims(claims))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *AdminAuth) parse(raw string) (*AdminClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		options = append(options, jwt.WithIssuer(a.issuer))
	}

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, options...)
	if err != nil || !token.Valid {
		return claims, errors.Join(ErrInvalidToken, err)
	}

	if claims.Role != a.role {
		return claims, ErrNotAdmin
	}
	return claims, nil
}

func actorFromClaims(claims *AdminClaims) string {
	if claims.Email != "" {
		return claims.Email
	}
	if claims.Subject != "" {
		return claims.Subject
	}
	return claims.Role
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// GetActor возвращает идентификатор администратора из контекста
func GetActor(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorKey).(string)
	return actor, ok && actor != ""
}

// OptionalUser читает X-User-ID, если заголовок передан.
// Бронирование на витрине возможно и без аккаунта.
func OptionalUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondBadRequest(w, msgInvalidUser)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя витрины из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
