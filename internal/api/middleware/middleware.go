package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestIDKey is the gin context key under which the request id is stored.
const RequestIDKey = "request_id"

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests partitioned by method, route and status code.",
	},
	[]string{"method", "path", "status"},
)

// RequestID attaches a fresh uuid to every request so audit records of
// one request can be correlated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(RequestIDKey, uuid.New().String())
		c.Next()
	}
}

// Metrics counts finished requests by method, route template and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		requestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
