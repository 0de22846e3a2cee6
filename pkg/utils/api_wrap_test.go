package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func recordServiceError(t *testing.T, err error) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("trace_id", "test-trace")

	HandleServiceError(c, err)

	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return w, resp
}

func TestHandleServiceErrorStatusCodes(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{ErrInvalidTripRequest, http.StatusBadRequest},
		{ErrMissingAPIKey, http.StatusInternalServerError},
		{ErrNoBackendAvailable, http.StatusServiceUnavailable},
		{ErrBackendTimeout, http.StatusGatewayTimeout},
		{ErrEmptyResponse, http.StatusBadGateway},
		{&MalformedResponseError{Raw: "not json"}, http.StatusBadGateway},
		{ErrUnrecognizedShape, http.StatusBadGateway},
		{ErrDayNotFound, http.StatusUnprocessableEntity},
		{ErrIncompleteRegeneration, http.StatusUnprocessableEntity},
		{ErrRegenerationInFlight, http.StatusConflict},
		{ErrAccountNotFound, http.StatusNotFound},
		{ErrEmailAlreadyExists, http.StatusConflict},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrWishlistItemNotFound, http.StatusNotFound},
		{ErrDatabaseError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w, resp := recordServiceError(t, tc.err)
		if w.Code != tc.code {
			t.Fatalf("%v: got status %d, want %d", tc.err, w.Code, tc.code)
		}
		if resp.Success {
			t.Fatalf("%v: error response marked successful", tc.err)
		}
		if resp.Error == "" {
			t.Fatalf("%v: error response has no message", tc.err)
		}
		if resp.TraceID != "test-trace" {
			t.Fatalf("%v: trace id not propagated", tc.err)
		}
	}
}

func TestRespondSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondSuccess(c, gin.H{"id": "abc"}, "saved")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}
	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Success || resp.Message != "saved" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
