package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abhisek/careerform/internal/record"
)

// Sink accepts finished records.
type Sink interface {
	Send(ctx context.Context, rec record.FormRecord) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, rec record.FormRecord) error

func (f SinkFunc) Send(ctx context.Context, rec record.FormRecord) error {
	return f(ctx, rec)
}

// DefaultTimeout bounds a single HTTP send.
const DefaultTimeout = 15 * time.Second

// maxErrorBody caps how much of a failed response is quoted in errors.
const maxErrorBody = 512

// HTTPSink posts each record as JSON to a webhook URL.
type HTTPSink struct {
	url     string
	client  *http.Client
	timeout time.Duration
	opaque  bool
}

// HTTPOption configures an HTTPSink.
type HTTPOption func(*HTTPSink)

// WithHTTPClient replaces the HTTP client. A nil client keeps the default.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSink) { s.client = c }
}

// WithTimeout sets the timeout for a single send. It applies to a copy of
// the client, so a shared client is left untouched.
func WithTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPSink) { s.timeout = d }
}

// WithOpaqueResponse makes the sink ignore the response entirely, so only
// transport failures are reported.
func WithOpaqueResponse(opaque bool) HTTPOption {
	return func(s *HTTPSink) { s.opaque = opaque }
}

// NewHTTPSink returns a sink posting to url.
func NewHTTPSink(url string, opts ...HTTPOption) *HTTPSink {
	s := &HTTPSink{url: url}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: DefaultTimeout}
	}
	if s.timeout > 0 {
		c := *s.client
		c.Timeout = s.timeout
		s.client = &c
	}
	return s
}

// Send performs one POST. In readable mode a non-2xx status is an error;
// in opaque mode any response counts as delivered.
func (s *HTTPSink) Send(ctx context.Context, rec record.FormRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if s.opaque {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}
