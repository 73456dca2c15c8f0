package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger writes one line per request. Run it after TraceIDMiddleware
// so the line carries the trace id.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		l := zerolog.Ctx(c.Request.Context())

		var e *zerolog.Event
		switch {
		case status >= 500:
			e = l.Error()
		case status >= 400:
			e = l.Warn()
		default:
			e = l.Info()
		}

		e.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
