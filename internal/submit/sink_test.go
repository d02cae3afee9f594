package submit

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerform/internal/record"
	"github.com/abhisek/careerform/internal/store"
)

func TestHTTPSinkPostsJSON(t *testing.T) {
	var gotType string
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewHTTPSink(srv.URL)
	err := sink.Send(context.Background(), record.FormRecord{UserID: "abc", Age: 30})
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "abc", got["user_id"])
	assert.Equal(t, float64(30), got["age"])
}

func TestHTTPSinkReadableModeReportsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := NewHTTPSink(srv.URL).Send(context.Background(), record.FormRecord{})
	var serr *StatusError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusTooManyRequests, serr.StatusCode)
	assert.Equal(t, "quota exceeded", serr.Body)
}

func TestHTTPSinkOpaqueModeIgnoresStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewHTTPSink(srv.URL, WithOpaqueResponse(true)).Send(context.Background(), record.FormRecord{})
	assert.NoError(t, err)
}

func TestHTTPSinkTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewHTTPSink(url, WithOpaqueResponse(true)).Send(context.Background(), record.FormRecord{})
	assert.Error(t, err)
}

type memHistory struct {
	events []store.SubmissionEventData
}

func (h *memHistory) AppendSubmission(_ context.Context, data store.SubmissionEventData) error {
	h.events = append(h.events, data)
	return nil
}

func TestHTTPSinkTimeoutLeavesSharedClient(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}

	sink := NewHTTPSink("http://example.invalid", WithHTTPClient(shared), WithTimeout(time.Second))
	assert.Equal(t, time.Minute, shared.Timeout)
	assert.Equal(t, time.Second, sink.client.Timeout)
	assert.NotSame(t, shared, sink.client)

	sink = NewHTTPSink("http://example.invalid", WithHTTPClient(nil), WithTimeout(time.Second))
	require.NotNil(t, sink.client)
	assert.Equal(t, time.Second, sink.client.Timeout)

	sink = NewHTTPSink("http://example.invalid")
	assert.Equal(t, DefaultTimeout, sink.client.Timeout)
}

func TestWithLoggingRecordsHistory(t *testing.T) {
	hist := &memHistory{}
	fail := errors.New("offline")
	calls := 0
	inner := SinkFunc(func(context.Context, record.FormRecord) error {
		calls++
		if calls == 2 {
			return fail
		}
		return nil
	})
	sink := WithLogging(inner, nil, hist)

	require.NoError(t, sink.Send(context.Background(), record.FormRecord{UserID: "u1"}))
	assert.ErrorIs(t, sink.Send(context.Background(), record.FormRecord{UserID: "u2"}), fail)

	require.Len(t, hist.events, 2)
	assert.Equal(t, "u1", hist.events[0].UserID)
	assert.Equal(t, store.SubmissionSucceeded, hist.events[0].Status)
	assert.Equal(t, store.SubmissionFailed, hist.events[1].Status)
	assert.Equal(t, "offline", hist.events[1].Error)
}
