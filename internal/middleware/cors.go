// internal/middleware/cors.go
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configures cross-origin access for the dashboard frontend. An empty
// or "*" origin list allows all origins, matching the permissive default the
// service has always shipped with.
func CORS(allowOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Location"},
		MaxAge:        12 * time.Hour,
	}

	if len(allowOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		allowAll := false
		for _, origin := range allowOrigins {
			if origin == "*" {
				allowAll = true
			}
		}
		if allowAll {
			cfg.AllowAllOrigins = true
		} else {
			cfg.AllowOrigins = allowOrigins
		}
	}

	return cors.New(cfg)
}
