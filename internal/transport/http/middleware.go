package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuth gates admin routes with HTTP Basic credentials. Comparison is
// constant-time; both failures and missing headers answer 401 with a
// WWW-Authenticate challenge.
func AdminAuth(user, pass string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, p, ok := c.Request.BasicAuth()
		if !ok || !credentialsMatch(u, p, user, pass) {
			if ok {
				log.Warn("admin auth rejected", zap.String("user", u))
			}
			c.Header("WWW-Authenticate", `Basic realm="Admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, newError("Unauthorized"))
			return
		}
		c.Next()
	}
}

func credentialsMatch(gotUser, gotPass, wantUser, wantPass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(gotUser), []byte(wantUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(gotPass), []byte(wantPass)) == 1
	return userOK && passOK
}

// BodyLimit caps request body size; the checkout payload has no business
// being larger than this.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
