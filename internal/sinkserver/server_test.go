package sinkserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerform/internal/record"
	"github.com/abhisek/careerform/internal/submit"
)

func TestSubmitStoresRecord(t *testing.T) {
	var out bytes.Buffer
	recv := NewReceiver(0, &out, nil)
	srv := httptest.NewServer(NewRouter(recv))
	defer srv.Close()

	sink := submit.NewHTTPSink(srv.URL + "/submit")
	rec := record.FormRecord{UserID: "u-1", CurrentStatus: "student", CurrentJobRole: "Student"}
	require.NoError(t, sink.Send(context.Background(), rec))

	got := recv.Records()
	require.Len(t, got, 1)
	assert.Equal(t, "u-1", got[0].UserID)
	assert.Equal(t, "Student", got[0].CurrentJobRole)

	var line record.FormRecord
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(out.Bytes()), &line))
	assert.Equal(t, "u-1", line.UserID)
}

func TestSubmitRejectsBadBodies(t *testing.T) {
	recv := NewReceiver(0, nil, nil)
	router := NewRouter(recv)

	for _, body := range []string{`not json`, `{"age": 3}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Empty(t, recv.Records())
}

func TestReceiverKeepsLastN(t *testing.T) {
	recv := NewReceiver(2, nil, nil)
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, recv.add(record.FormRecord{UserID: id}))
	}
	got := recv.Records()
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].UserID)
	assert.Equal(t, "c", got[1].UserID)
}

func TestListAndHealth(t *testing.T) {
	recv := NewReceiver(0, nil, nil)
	require.NoError(t, recv.add(record.FormRecord{UserID: "x"}))
	router := NewRouter(recv)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, "ok", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/submissions", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Records []record.FormRecord `json:"records"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Records, 1)
	assert.Equal(t, "x", body.Records[0].UserID)
}
