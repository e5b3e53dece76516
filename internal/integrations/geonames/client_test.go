package geonames

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_FindNearbyPostalCodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/findNearbyPostalCodesJSON", r.URL.Path)
		assert.Equal(t, "-34.51", q.Get("lat"))
		assert.Equal(t, "-58.5", q.Get("lng"))
		assert.Equal(t, "demo", q.Get("username"))
		assert.Equal(t, "10", q.Get("radius"))
		assert.Equal(t, "10", q.Get("maxRows"))
		_, _ = w.Write([]byte(`{"postalCodes":[{"postalCode":"1636","placeName":"Olivos","adminName1":"Buenos Aires","countryCode":"AR","lat":-34.51,"lng":-58.49,"distance":"0.9"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "demo", time.Second, nopLogger{})
	codes, err := c.FindNearbyPostalCodes(context.Background(), -34.51, -58.5, 10, 10)
	require.NoError(t, err)
	require.Len(t, codes, 1)
	assert.Equal(t, "Olivos", codes[0].PlaceName)
	assert.Equal(t, "Buenos Aires", codes[0].AdminName1)
	assert.InDelta(t, -58.49, codes[0].Lng, 1e-9)
}

func TestClient_FindNearbyPostalCodes_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":{"message":"user account not enabled","value":10}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "demo", time.Second, nopLogger{}).FindNearbyPostalCodes(context.Background(), 1, 1, 10, 10)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
