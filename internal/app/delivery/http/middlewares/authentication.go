package middlewares

import (
	"context"
	"net/http"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/exceptions"
	"registration-service/internal/pkg/utils"
	"strings"
)

// Authenticate resolves the bearer token to a staff account and stores its
// id and role on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		claims, err := m.AuthUsecase.Authenticate(r.Context(), token)
		if err != nil {
			utils.LogSecurityEvent(m.Log, "authentication_failed", utils.GetRequestID(r.Context()), "low")
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_ACCOUNT_ID_KEY, claims.AccountID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_ACCOUNT_ROLE_KEY, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
