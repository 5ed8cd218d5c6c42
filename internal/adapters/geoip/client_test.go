package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPResolver_Resolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/81.2.69.142", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","countryCode":"GB"}`))
	}))
	defer srv.Close()

	resolver := NewHTTPResolver(srv.Client(), srv.URL)
	region, err := resolver.Resolve(context.Background(), "81.2.69.142")
	require.NoError(t, err)
	assert.Equal(t, "gb", region)
}

func TestHTTPResolver_Resolve_failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
	}{
		{name: "api failure status", status: http.StatusOK, body: `{"status":"fail"}`},
		{name: "empty country", status: http.StatusOK, body: `{"status":"success","countryCode":""}`},
		{name: "http error", status: http.StatusBadGateway, body: ``},
		{name: "bad json", status: http.StatusOK, body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resolver := NewHTTPResolver(srv.Client(), srv.URL)
			_, err := resolver.Resolve(context.Background(), "1.2.3.4")
			require.Error(t, err)
		})
	}
}
