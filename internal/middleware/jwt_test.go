package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/examhall/seatwise/internal/utils"
)

const testSecret = "test-secret"

func runProtected(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/halls", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec, c
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42, "ADMIN", 5)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec, c := runProtected(t, JWTAuth(testSecret), "Bearer "+tok.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if uid, ok := c.Get("user_id").(uint64); !ok || uid != 42 {
		t.Fatalf("expected user_id 42 in context, got %#v", c.Get("user_id"))
	}
	if role, ok := c.Get("role").(string); !ok || role != "ADMIN" {
		t.Fatalf("expected role ADMIN in context, got %#v", c.Get("role"))
	}
}

func TestJWTAuthRejects(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		rec, _ := runProtected(t, JWTAuth(testSecret), tc.header)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, rec.Code)
		}
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 1, "VIEWER", 5)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	rec, _ := runProtected(t, JWTAuth(testSecret), "Bearer "+tok.Token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong secret, got %d", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	allow := RequireRole("ADMIN")

	run := func(role interface{}) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/halls", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set("role", role)
		}
		h := allow(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		if err := h(c); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		return rec.Code
	}

	if code := run("ADMIN"); code != http.StatusOK {
		t.Fatalf("ADMIN should pass, got %d", code)
	}
	if code := run("VIEWER"); code != http.StatusForbidden {
		t.Fatalf("VIEWER should be blocked, got %d", code)
	}
	if code := run(nil); code != http.StatusForbidden {
		t.Fatalf("missing role should be blocked, got %d", code)
	}
}

func TestRequestIDGenerated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestID()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a generated X-Request-ID header")
	}
}

func TestRequestIDPreserved(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestID()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected incoming request id to be preserved, got %q", got)
	}
}
