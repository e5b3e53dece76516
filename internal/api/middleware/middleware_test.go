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

type recordedHTTP struct {
	method string
	route  string
	status int
}

type fakeHTTPMetrics struct{ calls []recordedHTTP }

func (m *fakeHTTPMetrics) ObserveHTTP(method, route string, status int, _ time.Duration) {
	m.calls = append(m.calls, recordedHTTP{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/sessions/{sessionId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/abc", nil))

	require.Len(t, m.calls, 1)
	assert.Equal(t, recordedHTTP{method: http.MethodGet, route: "/api/v1/sessions/{sessionId}", status: http.StatusTeapot}, m.calls[0])
}

func TestConnectivity(t *testing.T) {
	tests := []struct {
		name   string
		force  bool
		header string
		want   bool
	}{
		{name: "online by default", want: false},
		{name: "client offline", header: "true", want: true},
		{name: "garbage header ignored", header: "maybe", want: false},
		{name: "forced offline", force: true, header: "false", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			h := Connectivity(tt.force)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = IsOffline(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(HeaderClientOffline, tt.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSession(t *testing.T) {
	var got string
	r := mux.NewRouter()
	handler := func(_ http.ResponseWriter, r *http.Request) {
		got, _ = GetSessionID(r.Context())
	}
	r.Handle("/sessions/{sessionId}", Session(http.HandlerFunc(handler)))
	r.Handle("/catalog", Session(http.HandlerFunc(handler)))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sessions/from-path", nil))
	assert.Equal(t, "from-path", got)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	req.Header.Set(HeaderSessionID, "from-header")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "from-header", got)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
