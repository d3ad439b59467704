package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"turnusplan/backend/pkg/response"
)

// MustGetUserID extracts user_id from the context, writing a 401 when the
// auth middleware did not inject it. Callers return immediately on ok=false.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetTokenInfo extracts the JTI and expiry injected by the auth middleware.
func MustGetTokenInfo(c *gin.Context) (string, time.Time, bool) {
	jti, exists := c.Get("jti")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	expiresAt, exists := c.Get("token_expires_at")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	j, ok1 := jti.(string)
	e, ok2 := expiresAt.(time.Time)
	if !ok1 || !ok2 || j == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	return j, e, true
}
