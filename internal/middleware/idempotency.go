package middleware

import (
	"bytes"
	"context"
	"log"
	"net/http"

	"github.com/eaglebank/bankingsim/internal/idempotency"
	"github.com/gin-gonic/gin"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	ReplayedHeader       = "Idempotent-Replayed"
)

// recordingWriter copies the response body while writing it through.
type recordingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency answers a repeated request carrying the same Idempotency-Key
// with the stored response instead of running the handler again. Keys are
// scoped to method and path. Requests without the header pass through.
func Idempotency(store idempotency.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(IdempotencyKeyHeader)
		if header == "" {
			c.Next()
			return
		}
		key := c.Request.Method + " " + c.Request.URL.Path + " " + header
		ctx := c.Request.Context()

		resp, found, err := store.Get(ctx, key)
		if err != nil {
			log.Printf("Failed to read idempotency key %q: %v", header, err)
			RespondWithError(c, http.StatusServiceUnavailable, "Idempotency store unavailable")
			c.Abort()
			return
		}
		if found {
			c.Header(ReplayedHeader, "true")
			c.Data(resp.Status, resp.ContentType, resp.Body)
			c.Abort()
			return
		}

		reserved, err := store.Reserve(ctx, key)
		if err != nil {
			log.Printf("Failed to reserve idempotency key %q: %v", header, err)
			RespondWithError(c, http.StatusServiceUnavailable, "Idempotency store unavailable")
			c.Abort()
			return
		}
		if !reserved {
			RespondWithError(c, http.StatusConflict, "A request with this Idempotency-Key is already in progress")
			c.Abort()
			return
		}

		// The outcome is stored even if the caller has gone away.
		storeCtx := context.WithoutCancel(ctx)
		saved := false
		// Runs on panic too, so a crashed handler does not hold the key.
		defer func() {
			if saved {
				return
			}
			if err := store.Release(storeCtx, key); err != nil {
				log.Printf("Failed to release idempotency key %q: %v", header, err)
			}
		}()

		w := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		status := w.Status()
		if status >= http.StatusInternalServerError {
			return
		}
		if err := store.Save(storeCtx, key, idempotency.Response{
			Status:      status,
			ContentType: w.Header().Get("Content-Type"),
			Body:        w.body.Bytes(),
		}); err != nil {
			log.Printf("Failed to save response for idempotency key %q: %v", header, err)
			return
		}
		saved = true
	}
}
