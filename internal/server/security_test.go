package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danmachooo/Safety-Sense---Real-time-incident-detection-system-using-YOLOv8-sub000/internal/auth"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func newTestIssuer(t *testing.T) *auth.Issuer {
	t.Helper()
	issuer, err := auth.NewIssuer(testSecret, time.Hour)
	require.NoError(t, err)
	return issuer
}

func issue(t *testing.T, issuer *auth.Issuer, userID int64, role string) string {
	t.Helper()
	token, err := issuer.Issue(userID, role)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	issuer := newTestIssuer(t)
	other, err := auth.NewIssuer("another-secret-that-is-long-enough", time.Hour)
	require.NoError(t, err)

	valid := issue(t, issuer, 3, auth.RoleStaff)
	forged := issue(t, other, 3, auth.RoleAdmin)

	tests := []struct {
		name           string
		header         string
		path           string
		expectedStatus int
	}{
		{name: "Valid token", header: "Bearer " + valid, path: "/api/v1/items", expectedStatus: http.StatusOK},
		{name: "Token signed with another secret", header: "Bearer " + forged, path: "/api/v1/items", expectedStatus: http.StatusUnauthorized},
		{name: "Missing bearer prefix", header: valid, path: "/api/v1/items", expectedStatus: http.StatusUnauthorized},
		{name: "Missing header", path: "/api/v1/items", expectedStatus: http.StatusUnauthorized},
		{name: "Public path healthz", path: "/healthz", expectedStatus: http.StatusOK},
		{name: "Public path metrics", path: "/metrics", expectedStatus: http.StatusOK},
		{name: "Public path swagger", path: "/swagger/index.html", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector()
			var seen *auth.Claims
			handler := AuthMiddleware(issuer, nil, detector)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = auth.ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				detector.mu.Lock()
				assert.Equal(t, 1, detector.failedAuthByIP["192.0.2.1"])
				detector.mu.Unlock()
			}
			if tt.name == "Valid token" {
				require.NotNil(t, seen)
				assert.Equal(t, int64(3), seen.UserID)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole(auth.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		claims *auth.Claims
		want   int
	}{
		{"admin", &auth.Claims{UserID: 1, Role: auth.RoleAdmin}, http.StatusOK},
		{"staff", &auth.Claims{UserID: 2, Role: auth.RoleStaff}, http.StatusForbidden},
		{"anonymous", nil, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/batches", nil)
			if tt.claims != nil {
				req = req.WithContext(auth.WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(16, map[string]int64{ImportPath: 64})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	body := strings.Repeat("x", 32)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/items", strings.NewReader(body)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", ImportPath, strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
