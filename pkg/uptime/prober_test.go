package uptime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHTTPProber(t *testing.T) {
	tests := []struct {
		name   string
		status int
		wantUp bool
	}{
		{name: "healthy controller", status: http.StatusOK, wantUp: true},
		{name: "error page still counts as up", status: http.StatusInternalServerError, wantUp: true},
		{name: "not found still counts as up", status: http.StatusNotFound, wantUp: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			prober := NewHTTPProber(time.Second)

			err := prober.Probe(context.Background(), srv.URL)
			if tt.wantUp {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestHTTPProberSchemelessAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	prober := NewHTTPProber(time.Second)

	// Screens are addressed as host:port; the prober supplies the scheme.
	address := strings.TrimPrefix(srv.URL, "http://")
	require.NoError(t, prober.Probe(context.Background(), address))
}

func TestHTTPProberTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	srv.Close()

	prober := NewHTTPProber(time.Second)

	require.Error(t, prober.Probe(context.Background(), srv.URL))
}
