package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func Test_Auth_RequireAdmin(t *testing.T) {
	h := Auth(RequireAdmin(http.HandlerFunc(okHandler)))

	cases := []struct {
		role string
		want int
	}{
		{role: "", want: http.StatusUnauthorized},
		{role: "guest", want: http.StatusUnauthorized},
		{role: "renter", want: http.StatusForbidden},
		{role: "Admin", want: http.StatusNoContent},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cars", nil)
		if tc.role != "" {
			req.Header.Set(RoleHeader, tc.role)
		}
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, tc.want, rec.Code, "role=%q", tc.role)
	}
}

type recordedRequest struct {
	method, path string
	status       int
}

type fakeHTTPMetrics struct{ requests []recordedRequest }

func (m *fakeHTTPMetrics) RecordHTTPRequest(method, path string, status int, _ time.Duration) {
	m.requests = append(m.requests, recordedRequest{method: method, path: path, status: status})
}

func Test_MetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/cars/{carId}", okHandler).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/cars/42", nil))

	require.Len(t, m.requests, 1)
	assert.Equal(t, recordedRequest{method: http.MethodDelete, path: "/api/v1/cars/{carId}", status: http.StatusNoContent}, m.requests[0])
}
