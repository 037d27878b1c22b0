package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError_CodeFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		code   string
	}{
		{http.StatusBadRequest, CodeValidation},
		{http.StatusNotFound, CodeNotFound},
		{http.StatusConflict, CodeConflict},
		{http.StatusUnauthorized, CodeUnauthorized},
		{http.StatusForbidden, CodeForbidden},
		{http.StatusTooManyRequests, CodeRateLimited},
		{http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		RespondError(rec, tt.status, "msg")

		assert.Equal(t, tt.status, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tt.code, body.Code)
		assert.Equal(t, "msg", body.Message)
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	var p payload
	require.NoError(t, DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`)), &p))
	assert.Equal(t, "x", p.Name)

	for _, body := range []string{`{"name":"x","extra":1}`, `{"name":"x"}{"name":"y"}`, `nope`} {
		err := DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)), &p)
		assert.Error(t, err, body)
	}
}

func TestPathInt64(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	id, err := PathInt64(req, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"0", "-3", "abc", ""} {
		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": raw})
		_, err := PathInt64(req, "id")
		assert.Error(t, err, raw)
	}
}

func TestParseDateTime(t *testing.T) {
	d, err := ParseDateTime("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDateTime("2025-03-01T10:00:00+03:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 1, 7, 0, 0, 0, time.UTC), d)
	assert.Equal(t, time.UTC, d.Location())

	_, err = ParseDateTime("01/03/2025")
	assert.Error(t, err)
}
