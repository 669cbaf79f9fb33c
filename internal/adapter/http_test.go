// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-customer-keeper/internal/config"
	"github.com/MKhiriev/go-customer-keeper/internal/logger"
	"github.com/MKhiriev/go-customer-keeper/models"
)

func newTestAdapter(t *testing.T, serverURL string) HealthProber {
	t.Helper()

	a, err := NewHTTPHealthAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:5000", want: "http://localhost:5000"},
		{raw: " https://api.example.com/ ", want: "https://api.example.com"},
		{raw: "http://127.0.0.1:5000/base/", want: "http://127.0.0.1:5000/base"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPHealthAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPHealthAdapter(config.Adapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestHealth_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/health", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","timestamp":"2026-03-01T10:00:00Z","uptime":3.5,"database":"Connected","version":"1.0.0"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.HealthStatusOK, got.Status)
	assert.Equal(t, models.DatabaseConnected, got.Database)
	assert.Equal(t, 3.5, got.Uptime)
	assert.Equal(t, "1.0.0", got.Version)
}

func TestHealth_Degraded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"DEGRADED","timestamp":"2026-03-01T10:00:00Z","uptime":1,"database":"Disconnected"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Health(context.Background())

	require.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Equal(t, models.HealthStatusDegraded, got.Status)
	assert.Equal(t, models.DatabaseDisconnected, got.Database)
}

func TestHealth_StatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusBadGateway, want: ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("nope"))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Health(context.Background())

			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestHealth_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Health(context.Background())

	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "http 418"), err.Error())
}

func TestHealth_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Customer Management API is running"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Health(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode health response")
}

func TestHealth_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	a, err := NewHTTPHealthAdapter(config.Adapter{HTTPAddress: srv.URL, RequestTimeout: 20 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	_, err = a.Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "health request")
}
