package handler

import (
	"testing"
	"time"

	"github.com/arjunsharma6622/galaxygrow-server/config"
	"github.com/arjunsharma6622/galaxygrow-server/core/global"
)

func TestSessionCookieReadableFromScript(t *testing.T) {
	global.ServerConfig = &config.Configuration{JwtExpireHours: 2}

	cookie := sessionCookie("some-token")

	if cookie.Name != "token" {
		t.Errorf("unexpected cookie name %q", cookie.Name)
	}
	if cookie.Value != "some-token" {
		t.Errorf("unexpected cookie value %q", cookie.Value)
	}
	// The frontend reads its own session from this cookie.
	if cookie.HTTPOnly {
		t.Error("session cookie must not be http-only")
	}
	if cookie.SameSite != "Lax" {
		t.Errorf("unexpected SameSite %q", cookie.SameSite)
	}

	wantExpiry := time.Now().Add(2 * time.Hour)
	if cookie.Expires.Before(wantExpiry.Add(-time.Minute)) || cookie.Expires.After(wantExpiry.Add(time.Minute)) {
		t.Errorf("expiry %v not near %v", cookie.Expires, wantExpiry)
	}
}
