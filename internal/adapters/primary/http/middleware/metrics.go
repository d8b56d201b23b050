package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestRecorder is satisfied by metrics.Collector.
type RequestRecorder interface {
	RecordRequest(method, route string, statusCode int, duration time.Duration)
}

func Metrics(rec RequestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rec.RecordRequest(c.Request.Method, routeOf(c), c.Writer.Status(), time.Since(start))
	}
}
