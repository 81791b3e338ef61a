package middlewares

import (
	"context"
	"fmt"
	"medifind-service/internal/pkg/constvars"
	"medifind-service/internal/pkg/exceptions"
	"medifind-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate requires a valid bearer token and puts the resolved session
// into the request context under CONTEXT_SESSION_DATA_KEY.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("no %s header", constvars.HeaderAuthorization)))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionData, err := m.AuthUsecase.FindSessionByToken(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
