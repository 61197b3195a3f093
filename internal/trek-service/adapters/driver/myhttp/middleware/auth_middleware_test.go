package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("cannot sign token: %v", err)
	}
	return s
}

func TestAuthMiddleware(t *testing.T) {
	am := NewAuthMiddleware(testSecret)

	var gotUserId, gotUsername string
	wrapped := am.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserId = r.Header.Get("X-UserId")
		gotUsername = r.Header.Get("X-Username")
		w.WriteHeader(http.StatusOK)
	}))

	valid := signedToken(t, testSecret, jwt.MapClaims{
		"user_id":  "u-1",
		"username": "trekker",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{
			name:     "wrong secret",
			header:   "Bearer " + signedToken(t, "other-secret", jwt.MapClaims{"user_id": "u-1", "username": "trekker"}),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "missing username claim",
			header:   "Bearer " + signedToken(t, testSecret, jwt.MapClaims{"user_id": "u-1"}),
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			wrapped.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}

	if gotUserId != "u-1" || gotUsername != "trekker" {
		t.Errorf("forwarded identity = (%s, %s), want (u-1, trekker)", gotUserId, gotUsername)
	}
}
