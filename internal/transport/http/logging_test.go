package http

import (
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestSummarizeBodyRedactsSecrets(t *testing.T) {
	got := summarizeBody([]byte(`{"email":"a@b.com","password":"Abcdef1!","nested":{"access_token":"x"}}`), echo.MIMEApplicationJSON)
	fields, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("expected structured summary, got %T", got)
	}
	if fields["password"] != redacted || fields["email"] != "a@b.com" {
		t.Fatalf("unexpected summary %v", fields)
	}
	if fields["nested"].(map[string]any)["access_token"] != redacted {
		t.Fatalf("expected nested token to be redacted, got %v", fields["nested"])
	}

	form := summarizeBody([]byte("username=a%40b.com&password=secret"), echo.MIMEApplicationForm).(map[string]any)
	if form["password"] != redacted || form["username"] != "a@b.com" {
		t.Fatalf("unexpected form summary %v", form)
	}

	if summarizeBody([]byte("password=hunter2"), echo.MIMETextPlain) != redacted {
		t.Fatalf("expected plain text mentioning a password to be redacted")
	}
	if summarizeBody(nil, echo.MIMEApplicationJSON) != nil {
		t.Fatalf("expected nil for an empty body")
	}
}

func TestSummarizeBodyClampsAndMarksBinary(t *testing.T) {
	long := summarizeBody([]byte(strings.Repeat("a", maxLoggedBody+500)), echo.MIMETextPlain).(string)
	if !strings.HasSuffix(long, "...(truncated)") || len(long) != maxLoggedBody+len("...(truncated)") {
		t.Fatalf("unexpected clamped length %d", len(long))
	}

	if summarizeBody([]byte{0x89, 'P', 'N', 'G', 0x00, 0xff}, "image/png") != binary {
		t.Fatalf("expected binary marker")
	}
}
