package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowHeaders = "Content-Type, Authorization, " + HeaderRequestID
	corsAllowMethods = "GET, POST, PUT, PATCH, OPTIONS"
	corsMaxAge       = "600"
)

// CORSMiddleware libera as origens de allowed; lista vazia reflete
// qualquer origem (desenvolvimento).
func CORSMiddleware(allowed []string) gin.HandlerFunc {
	origins := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins[o] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		h := c.Writer.Header()

		if origin != "" {
			h.Add("Vary", "Origin")
		}

		permitted := origin != "" && (len(origins) == 0 || origins[origin])
		if permitted {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Expose-Headers", HeaderRequestID)
		}

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		// pre-flight
		if origin != "" && !permitted {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		h.Set("Access-Control-Max-Age", corsMaxAge)
		c.AbortWithStatus(http.StatusNoContent)
	}
}
