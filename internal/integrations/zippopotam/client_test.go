package zippopotam

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

func TestClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ar/2000", r.URL.Path)
		_, _ = w.Write([]byte(`{"post code":"2000","country":"Argentina","country abbreviation":"AR","places":[
			{"place name":"Rosario","longitude":"-60.6393","state":"Santa Fe","state abbreviation":"S","latitude":"-32.9468"}]}`))
	}))
	defer srv.Close()

	pc, err := NewClient(srv.URL, time.Second, nopLogger{}).Lookup(context.Background(), "2000")
	require.NoError(t, err)

	assert.Equal(t, "2000", pc.PostCode)
	require.Len(t, pc.Places, 1)
	assert.Equal(t, Place{PlaceName: "Rosario", State: "Santa Fe", Latitude: "-32.9468", Longitude: "-60.6393"}, pc.Places[0])
}

func TestClient_Lookup_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second, nopLogger{}).Lookup(context.Background(), "99999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Lookup_Malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second, nopLogger{}).Lookup(context.Background(), "2000")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
