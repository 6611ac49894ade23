package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const (
	requestBodyLogKey  = "http.request.body.summary"
	responseBodyLogKey = "http.response.body.summary"
	maxLoggedBody      = 2048

	redacted = "redacted"
	binary   = "binary"
)

// registerAccessLog emits one zerolog event per request with sanitised bodies.
func registerAccessLog(e *echo.Echo) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		LogRemoteIP: true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger := zerolog.Ctx(c.Request().Context())

			event := logger.Info()
			switch {
			case v.Status >= 500:
				event = logger.Error()
			case v.Status >= 400:
				event = logger.Warn()
			}

			event = event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Int64("latency_ms", v.Latency.Milliseconds()).
				Str("remote_ip", v.RemoteIP)
			if user, ok := CurrentUser(c); ok {
				event = event.Int64("user_id", user.ID)
			}
			if summary := c.Get(requestBodyLogKey); summary != nil {
				event = event.Interface("request_body", summary)
			}
			if summary := c.Get(responseBodyLogKey); summary != nil {
				event = event.Interface("response_body", summary)
			}
			if v.Error != nil {
				event = event.Err(v.Error)
			}
			event.Msg("http request")
			return nil
		},
	}))

	e.Use(middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/swagger")
		},
		Handler: func(c echo.Context, reqBody, resBody []byte) {
			if summary := summarizeBody(reqBody, c.Request().Header.Get(echo.HeaderContentType)); summary != nil {
				c.Set(requestBodyLogKey, summary)
			}
			if summary := summarizeBody(resBody, c.Response().Header().Get(echo.HeaderContentType)); summary != nil {
				c.Set(responseBodyLogKey, summary)
			}
		},
	}))
}

// summarizeBody turns a raw body into something safe to log: password fields redacted,
// binary payloads replaced, and everything clamped to maxLoggedBody bytes.
func summarizeBody(body []byte, contentType string) any {
	if len(body) == 0 {
		return nil
	}

	mediaType, params, _ := mime.ParseMediaType(strings.TrimSpace(contentType))
	mediaType = strings.ToLower(mediaType)

	switch {
	case strings.HasPrefix(mediaType, "multipart/"):
		return summarizeMultipart(body, params["boundary"])
	case mediaType == echo.MIMEApplicationForm:
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return binary
		}
		fields := make(map[string]any, len(values))
		for key, vals := range values {
			for _, v := range vals {
				addField(fields, key, redactValue(key, v))
			}
		}
		return clampJSON(fields)
	case mediaType == echo.MIMEApplicationJSON || json.Valid(body):
		var data any
		if err := json.Unmarshal(body, &data); err == nil {
			return clampJSON(redactJSON(data, ""))
		}
	}

	if isBinary(body) {
		return binary
	}
	text := string(body)
	if strings.Contains(strings.ToLower(text), "password") {
		return redacted
	}
	return clampString(text)
}

func redactJSON(value any, key string) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = redactJSON(item, k)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = redactJSON(item, key)
		}
		return out
	case string:
		return redactValue(key, v)
	default:
		if isSecretKey(key) {
			return redacted
		}
		return v
	}
}

func redactValue(key, value string) string {
	if isSecretKey(key) {
		return redacted
	}
	if isBinary([]byte(value)) {
		return binary
	}
	return clampString(value)
}

func isSecretKey(key string) bool {
	key = strings.ToLower(key)
	return strings.Contains(key, "password") || key == "access_token" || key == "token"
}

func summarizeMultipart(body []byte, boundary string) any {
	if boundary == "" {
		return binary
	}
	reader := multipart.NewReader(bytes.NewReader(body), boundary)
	fields := make(map[string]any)
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return binary
		}
		name := part.FormName()
		switch {
		case name == "":
		case part.FileName() != "":
			addField(fields, name, binary)
		default:
			data, err := io.ReadAll(io.LimitReader(part, maxLoggedBody+1))
			if err != nil {
				addField(fields, name, binary)
			} else {
				addField(fields, name, redactValue(name, string(data)))
			}
		}
		_ = part.Close()
	}
	if len(fields) == 0 {
		return binary
	}
	return clampJSON(fields)
}

// clampJSON keeps structured values that fit and falls back to a truncated string.
func clampJSON(value any) any {
	buf, err := json.Marshal(value)
	if err != nil || len(buf) <= maxLoggedBody {
		return value
	}
	return clampString(string(buf))
}

func clampString(value string) string {
	if len(value) <= maxLoggedBody {
		return value
	}
	truncated := value[:maxLoggedBody]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}
	return truncated + "...(truncated)"
}

func isBinary(data []byte) bool {
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return true
		}
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return true
		}
		data = data[size:]
	}
	return false
}

func addField(fields map[string]any, key string, value any) {
	existing, ok := fields[key]
	if !ok {
		fields[key] = value
		return
	}
	if items, ok := existing.([]any); ok {
		fields[key] = append(items, value)
		return
	}
	fields[key] = []any{existing, value}
}
