package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS allows credentialed requests from domains so the session cookies travel
// with browser calls.
func ConfigCORS(domains []string) gin.HandlerFunc {
	conf := cors.Config{
		AllowOrigins:     domains,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With", csrfHeader, csrfHeaderAlt},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(domains) == 0 {
		conf.AllowOrigins = nil
		conf.AllowOriginFunc = func(string) bool { return false }
	}

	return cors.New(conf)
}
