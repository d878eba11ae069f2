package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newJSONContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBindAndValidate(t *testing.T) {
	type req struct {
		Name string `json:"name" validate:"required"`
	}

	c, _ := newJSONContext(t, `{"name":"Hall A"}`)
	var r req
	if !bindAndValidate(c, &r) {
		t.Fatal("valid body should pass")
	}
	if r.Name != "Hall A" {
		t.Fatalf("expected bound name, got %q", r.Name)
	}

	c, rec := newJSONContext(t, `{"name":""}`)
	var r2 req
	if bindAndValidate(c, &r2) {
		t.Fatal("missing required field should fail validation")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 response, got %d", rec.Code)
	}

	c, rec = newJSONContext(t, `{not json`)
	var r3 req
	if bindAndValidate(c, &r3) {
		t.Fatal("malformed JSON should fail binding")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 response, got %d", rec.Code)
	}
}

func TestPathID(t *testing.T) {
	e := echo.New()
	cases := []struct {
		raw  string
		want uint64
		ok   bool
	}{
		{"17", 17, true},
		{"0", 0, false},
		{"abc", 0, false},
		{"-3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(tc.raw)
		got, ok := pathID(c, "id")
		if ok != tc.ok || got != tc.want {
			t.Fatalf("pathID(%q) = (%d, %v), want (%d, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestGetUserID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if _, err := getUserID(c); err == nil {
		t.Fatal("missing user_id should error")
	}

	c.Set("user_id", uint64(9))
	uid, err := getUserID(c)
	if err != nil || uid != 9 {
		t.Fatalf("expected 9, got %d err=%v", uid, err)
	}

	c.Set("user_id", "12")
	uid, err = getUserID(c)
	if err != nil || uid != 12 {
		t.Fatalf("expected 12 from string, got %d err=%v", uid, err)
	}
}
