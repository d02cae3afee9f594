// Package sinkserver is a local webhook that accepts submitted survey
// records, for trying the client without a hosted endpoint.
package sinkserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/careerform/internal/record"
)

// DefaultKeep is how many records the server holds in memory.
const DefaultKeep = 100

// Receiver stores the records posted to it.
type Receiver struct {
	mu      sync.Mutex
	records []record.FormRecord
	keep    int
	out     io.Writer
	logger  *zap.Logger
}

// NewReceiver returns a Receiver keeping the last keep records. When out
// is non-nil each record is also appended to it as one JSON line.
func NewReceiver(keep int, out io.Writer, logger *zap.Logger) *Receiver {
	if keep <= 0 {
		keep = DefaultKeep
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Receiver{keep: keep, out: out, logger: logger.Named("sinkserver")}
}

// Records returns the held records, oldest first.
func (r *Receiver) Records() []record.FormRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]record.FormRecord, len(r.records))
	copy(out, r.records)
	return out
}

func (r *Receiver) add(rec record.FormRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	if len(r.records) > r.keep {
		r.records = r.records[len(r.records)-r.keep:]
	}
	if r.out == nil {
		return nil
	}
	line, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = r.out.Write(append(line, '\n'))
	return err
}

// Submit handles POST /submit.
func (r *Receiver) Submit(c *gin.Context) {
	var rec record.FormRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(rec.UserID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	if err := r.add(rec); err != nil {
		r.logger.Error("persist record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store record"})
		return
	}
	r.logger.Info("record received",
		zap.String("user_id", rec.UserID),
		zap.String("current_status", rec.CurrentStatus))
	c.JSON(http.StatusOK, gin.H{"user_id": rec.UserID})
}

// List handles GET /submissions.
func (r *Receiver) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"records": r.Records()})
}

// HealthCheck handles GET /healthcheck.
func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// RequestLogger logs one line per request.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		switch {
		case status >= 500:
			logger.Error("HTTP request", fields...)
		case status >= 400:
			logger.Warn("HTTP request", fields...)
		default:
			logger.Info("HTTP request", fields...)
		}
	}
}

// NewRouter wires the receiver's routes.
func NewRouter(r *Receiver) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(r.logger))

	router.GET("/healthcheck", HealthCheck)
	router.POST("/submit", r.Submit)
	router.GET("/submissions", r.List)
	return router
}

// OpenLog opens path for appending received records. An empty path
// returns a nil writer.
func OpenLog(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open record log: %w", err)
	}
	return f, nil
}

// ListenAndServe runs the router on addr until ctx is done or the server
// fails.
func ListenAndServe(ctx context.Context, addr string, r *Receiver) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		r.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
