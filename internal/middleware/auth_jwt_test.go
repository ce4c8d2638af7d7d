package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func issueToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func freshClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":   "user-1",
		"email": "asha@example.com",
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
}

func TestVerifyTokenRoundTrip(t *testing.T) {
	token := issueToken(t, testSecret, freshClaims())

	userID, email, err := VerifyToken(testSecret, token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != "user-1" || email != "asha@example.com" {
		t.Fatalf("claims = %q / %q", userID, email)
	}
}

func TestVerifyTokenRejects(t *testing.T) {
	expired := freshClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	noSub := freshClaims()
	delete(noSub, "sub")

	cases := []struct {
		name   string
		secret string
		claims jwt.MapClaims
	}{
		{"wrong secret", "other-secret", freshClaims()},
		{"expired", testSecret, expired},
		{"missing subject", testSecret, noSub},
	}
	for _, tc := range cases {
		token := issueToken(t, tc.secret, tc.claims)
		if _, _, err := VerifyToken(testSecret, token); err == nil {
			t.Errorf("%s: verification should fail", tc.name)
		}
	}
}

func TestAuthJWTInjectsIdentity(t *testing.T) {
	var gotID, gotEmail string
	handler := AuthJWT(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = UserIDFromContext(r.Context())
		gotEmail = UserEmailFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, testSecret, freshClaims()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotID != "user-1" || gotEmail != "asha@example.com" {
		t.Fatalf("context identity = %q / %q", gotID, gotEmail)
	}
}

func TestAuthJWTRejectsBadHeaders(t *testing.T) {
	handler := AuthJWT(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run")
	}))

	cases := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not.a.token"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", tc.name, rec.Code)
		}
	}
}
