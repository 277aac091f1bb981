package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/ports"
	"github.com/bintangns/WMS-Prototype/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "wms.claims"

// maskedBodyFields are scrubbed from audit records before persistence.
var maskedBodyFields = []string{"password", "pass", "pwd"}

// AuthMiddleware verifies the Bearer token on every request and stores its
// claims on the echo context. Requests without a valid token are rejected
// with 401. Paths listed in skipPaths (login, health) pass through
// unauthenticated.
func AuthMiddleware(issuer *token.Issuer, skipPaths ...string) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if _, ok := skip[ctx.Request().URL.Path]; ok {
				return next(ctx)
			}

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				return ctx.JSON(http.StatusUnauthorized, map[string]string{
					"error": "missing bearer token",
				})
			}

			claims, err := issuer.Verify(tokenString)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, map[string]string{
					"error": "token is invalid or expired",
				})
			}

			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

// ClaimsFrom returns the verified token claims stored by AuthMiddleware.
func ClaimsFrom(ctx echo.Context) (token.Claims, bool) {
	claims, ok := ctx.Get(claimsContextKey).(token.Claims)
	return claims, ok
}

// ActivityMiddleware records an audit entry for every request. The request
// body is captured for mutating methods with credential fields masked.
// Recording happens after the response is written and never fails the
// request.
func ActivityMiddleware(recorder ports.ActivityRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			req := ctx.Request()

			var body map[string]any
			switch req.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				body = captureBody(ctx)
			}

			err := next(ctx)

			status := ctx.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			entry := ports.ActivityEntry{
				Action:      req.Method + " " + req.URL.Path,
				Method:      req.Method,
				Path:        req.URL.Path,
				StatusCode:  status,
				IPAddress:   ctx.RealIP(),
				UserAgent:   req.UserAgent(),
				RequestBody: body,
				DurationMs:  float64(time.Since(start)) / float64(time.Millisecond),
				At:          start.UTC(),
			}
			if claims, ok := ClaimsFrom(ctx); ok {
				entry.Actor = claims.Username
				entry.WorkstationCode = claims.Workstation
			}

			recorder.Record(req.Context(), entry)
			return err
		}
	}
}

// captureBody reads and restores the request body, returning it as a masked
// map. Unreadable or non object bodies are dropped from the audit record.
func captureBody(ctx echo.Context) map[string]any {
	req := ctx.Request()
	if req.Body == nil {
		return nil
	}

	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return nil
	}
	req.Body = io.NopCloser(bytes.NewReader(raw))

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil
	}

	for _, field := range maskedBodyFields {
		if _, present := body[field]; present {
			body[field] = "***"
		}
	}
	return body
}
