package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"MercadoPagoBridge/pkg/correlation"

	"github.com/gin-gonic/gin"
)

const maxBody = 8 * 1024 // 8KB

func limit(b []byte) []byte {
	if len(b) > maxBody {
		return b[:maxBody]
	}
	return b
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// CorrelationMiddleware takes X-Correlation-ID from the request, falling back
// to Mercado Pago's X-Request-Id, or generates a new one.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		corrID := c.GetHeader(correlation.HeaderName)
		if corrID == "" {
			corrID = c.GetHeader(correlation.ProviderRequestHeader)
		}
		if corrID == "" {
			corrID = correlation.NewID()
		}

		ctx := correlation.WithID(c.Request.Context(), corrID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(correlation.HeaderName, corrID)

		c.Next()
	}
}

// GinBodyLogger logs every request with its request and response bodies.
func GinBodyLogger(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		responseBuffer := &bytes.Buffer{}
		c.Writer = &responseBodyWriter{
			body:           responseBuffer,
			ResponseWriter: c.Writer,
		}

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		} else if status >= 400 {
			level = slog.LevelWarn
		}

		l.LogAttrs(c.Request.Context(), level, "HTTP Request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("query", c.Request.URL.RawQuery),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			bodyAttr("request_body", limit(requestBody)),
			bodyAttr("response_body", limit(responseBuffer.Bytes())),
		)
	}
}

func bodyAttr(key string, b []byte) slog.Attr {
	bb := bytes.TrimSpace(b)

	if len(bb) == 0 {
		return slog.Any(key, nil)
	}

	if json.Valid(bb) {
		return slog.Any(key, json.RawMessage(bb))
	}

	return slog.String(key, string(bb))
}
