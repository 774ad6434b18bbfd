package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLoginIssuesToken(t *testing.T) {
	app, cfg, _ := newTestApp(t)

	req := jsonRequest(http.MethodPost, "/api/auth/login", LoginRequest{
		Username: cfg.DemoUsername,
		Password: cfg.DemoPassword,
	})
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}

	var body LoginResponse
	decodeBody(t, resp, &body)
	if body.Token == "" {
		t.Fatal("expected a token")
	}
	if body.Username != cfg.DemoUsername {
		t.Fatalf("expected username %q got %q", cfg.DemoUsername, body.Username)
	}

	wantExpiry := time.Now().UTC().Add(time.Duration(cfg.JWTExpiryMinutes) * time.Minute)
	if diff := body.ExpiresAt.Sub(wantExpiry); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("expiry %v not near %v", body.ExpiresAt, wantExpiry)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, cfg, _ := newTestApp(t)

	cases := []LoginRequest{
		{Username: cfg.DemoUsername, Password: "wrong"},
		{Username: "nobody", Password: cfg.DemoPassword},
		{},
	}
	for _, payload := range cases {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/login", payload), -1)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("payload %+v: expected 401 got %d", payload, resp.StatusCode)
		}
		resp.Body.Close()
	}
}

func TestMutationsRequireToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	// No Authorization header
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/notifications/", map[string]interface{}{
		"tenant_id": 1, "title": "t", "message": "m",
	}), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Malformed header
	req := jsonRequest(http.MethodPost, "/api/notifications/", map[string]interface{}{
		"tenant_id": 1, "title": "t", "message": "m",
	})
	req.Header.Set("Authorization", "Token abc")
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Garbage token
	req = httptest.NewRequest(http.MethodDelete, "/api/notifications/1", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestReadsAreAnonymous(t *testing.T) {
	app, _, db := newTestApp(t)
	seedTestTenant(t, db, "acme")

	paths := []string{
		"/api/tenants/",
		"/api/tenants/code/acme",
		"/api/notifications/tenant/1",
		"/api/notifications/tenant/1/active",
	}
	for _, path := range paths {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("get %s: expected 200 got %d", path, resp.StatusCode)
		}
		resp.Body.Close()
	}
}
