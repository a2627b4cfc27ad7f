package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClaimsProbe(gotUserID, gotRole *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotUserID = UserIDFromContext(r.Context())
		*gotRole, _ = r.Context().Value(RoleKey).(string)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := NewJWTService("secret")
	token, err := jwtService.GenerateJWT("user-1", "user", time.Now().Add(time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		status     int
		wantUserID string
	}{
		{
			name:       "Valid bearer token",
			authHeader: "Bearer " + token,
			status:     http.StatusOK,
			wantUserID: "user-1",
		},
		{
			name:       "Missing header",
			authHeader: "",
			status:     http.StatusUnauthorized,
		},
		{
			name:       "No bearer prefix",
			authHeader: token,
			status:     http.StatusUnauthorized,
		},
		{
			name:       "Invalid token",
			authHeader: "Bearer garbage",
			status:     http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID, gotRole string
			handler := AuthMiddleware(jwtService)(newClaimsProbe(&gotUserID, &gotRole))

			req := httptest.NewRequest("GET", "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	jwtService := NewJWTService("secret")
	token, err := jwtService.GenerateJWT("user-1", "user", time.Now().Add(time.Hour))
	require.NoError(t, err)

	t.Run("Guest passes through without claims", func(t *testing.T) {
		var gotUserID, gotRole string
		handler := OptionalAuthMiddleware(jwtService)(newClaimsProbe(&gotUserID, &gotRole))

		req := httptest.NewRequest("POST", "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, gotUserID)
	})

	t.Run("Token attaches claims", func(t *testing.T) {
		var gotUserID, gotRole string
		handler := OptionalAuthMiddleware(jwtService)(newClaimsProbe(&gotUserID, &gotRole))

		req := httptest.NewRequest("POST", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", gotUserID)
		assert.Equal(t, "user", gotRole)
	})
}

func TestRequireRole(t *testing.T) {
	jwtService := NewJWTService("secret")
	adminToken, err := jwtService.GenerateJWT("admin-1", "admin", time.Now().Add(time.Hour))
	require.NoError(t, err)
	userToken, err := jwtService.GenerateJWT("user-1", "user", time.Now().Add(time.Hour))
	require.NoError(t, err)

	var gotUserID, gotRole string
	handler := AuthMiddleware(jwtService)(RequireRole("admin")(newClaimsProbe(&gotUserID, &gotRole)))

	t.Run("Admin allowed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Non-admin forbidden", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+userToken)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
