package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxAuditBodyBytes caps how much of a request body is captured for the trail
const maxAuditBodyBytes = 64 << 10

// AuditEvent describes one successful authenticated mutating request
type AuditEvent struct {
	ActorID   uuid.UUID
	CompanyID *uuid.UUID
	Action    string
	TargetID  string
	Method    string
	Path      string
	Details   any
}

// AuditSink receives audit events after the response has been written.
// Implementations must not block the request for long.
type AuditSink func(ctx context.Context, event AuditEvent)

// AuditTrail records every authenticated mutating request that completed
// without an error status. The request body is captured up to 64KB and
// secret fields are redacted before the event reaches the sink.
func AuditTrail(sink AuditSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			c.Next()
			return
		}

		var body []byte
		if c.Request.Body != nil {
			data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxAuditBodyBytes+1))
			if err == nil {
				body = data
				c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(data), c.Request.Body))
			}
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userIDStr, ok := GetJWTUserID(c)
		if !ok {
			return
		}
		actorID, err := uuid.Parse(userIDStr)
		if err != nil {
			return
		}

		event := AuditEvent{
			ActorID:  actorID,
			Action:   c.Request.Method + " " + c.FullPath(),
			TargetID: c.Param("id"),
			Method:   c.Request.Method,
			Path:     c.Request.URL.Path,
		}
		if companyIDStr, ok := GetJWTCompanyID(c); ok {
			if companyID, parseErr := uuid.Parse(companyIDStr); parseErr == nil {
				event.CompanyID = &companyID
			}
		}
		if len(body) > 0 && len(body) <= maxAuditBodyBytes {
			event.Details = redactSecrets(body)
		}

		sink(c.Request.Context(), event)
	}
}

// redactSecrets parses a JSON body and masks values under secret-bearing
// keys. Non-JSON bodies are dropped from the trail entirely.
func redactSecrets(body []byte) any {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}
	return redactValue(payload)
}

func redactValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, inner := range v {
			if isSecretKey(key) {
				v[key] = "[REDACTED]"
				continue
			}
			v[key] = redactValue(inner)
		}
		return v
	case []any:
		for i := range v {
			v[i] = redactValue(v[i])
		}
		return v
	default:
		return v
	}
}

func isSecretKey(key string) bool {
	key = strings.ToLower(key)
	for _, needle := range []string{"password", "token", "secret", "otp"} {
		if strings.Contains(key, needle) {
			return true
		}
	}
	return false
}
