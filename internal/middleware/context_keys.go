package middleware

import "github.com/gin-gonic/gin"

// sessionIDKey is the key used to store the authenticated session ID in the
// request context. The JWT subject doubles as the session identifier for
// active-store selection.
const sessionIDKey = contextKey("sessionID")

// GetSessionIDFromContext retrieves the session ID from the Gin context.
// It returns the session ID and a boolean indicating if it was found.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	sessionVal := c.Request.Context().Value(sessionIDKey)
	if sessionVal == nil {
		return "", false
	}
	sessionID, ok := sessionVal.(string)
	if !ok || sessionID == "" {
		return "", false
	}
	return sessionID, true
}
