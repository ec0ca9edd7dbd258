// Package httputil carries the JSON response envelope, the shared
// request middleware, and request-body checks.
package httputil

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IsBodyTooLarge reports whether reading a request body failed on the
// MaxBytesReader cap. Gin can wrap the error, so the stdlib message is
// matched as a fallback.
func IsBodyTooLarge(err error) bool {
	if err == nil {
		return false
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

// OK writes the success envelope with a data payload.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

// OKEmpty writes the success envelope without data.
func OKEmpty(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Fail writes the error envelope.
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"ok": false, "error": msg})
}

// OpError is an operational error: its status and message are safe to
// show the caller verbatim, in any environment.
type OpError struct {
	Status  int
	Message string
}

func (e *OpError) Error() string {
	return e.Message
}

// E builds an OpError.
func E(status int, format string, args ...any) *OpError {
	return &OpError{Status: status, Message: fmt.Sprintf(format, args...)}
}

// RequestID attaches a request id to the response headers and context,
// honoring one supplied by the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Recovery converts panics into envelope errors. An *OpError keeps its
// status and message; anything else becomes a 500 whose detail is only
// exposed when dev is true.
func Recovery(dev bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			requestID := c.GetString("request_id")
			if op, ok := r.(*OpError); ok {
				log.Printf("request %s: %s", requestID, op.Message)
				Fail(c, op.Status, op.Message)
				c.Abort()
				return
			}
			log.Printf("request %s: panic: %v", requestID, r)
			msg := "internal server error"
			if dev {
				msg = fmt.Sprintf("%v", r)
			}
			Fail(c, http.StatusInternalServerError, msg)
			c.Abort()
		}()
		c.Next()
	}
}
