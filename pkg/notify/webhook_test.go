package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monitorai/screenwatch/pkg/config"
)

func TestWebhookAlerterDisabled(t *testing.T) {
	alerter := NewWebhookAlerter(config.WebhookConfig{Enabled: false})

	err := alerter.Alert(context.Background(), &Alert{Title: "test"})
	require.ErrorIs(t, err, ErrWebhookDisabled)
	assert.False(t, alerter.IsEnabled())
}

func TestWebhookAlerterSendsPayload(t *testing.T) {
	var got Alert

	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &got))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	alerter := NewWebhookAlerter(config.WebhookConfig{
		Enabled: true,
		URL:     srv.URL,
		Headers: []config.Header{{Key: "Authorization", Value: "Bearer secret"}},
	})

	err := alerter.Alert(context.Background(), &Alert{
		Level:    Error,
		Title:    "Screen unreachable",
		Message:  "3 consecutive failures",
		ScreenID: 17,
	})
	require.NoError(t, err)

	assert.Equal(t, Error, got.Level)
	assert.Equal(t, "Screen unreachable", got.Title)
	assert.Equal(t, int64(17), got.ScreenID)
	assert.NotEmpty(t, got.Timestamp)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestWebhookAlerterCooldown(t *testing.T) {
	var calls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	alerter := NewWebhookAlerter(config.WebhookConfig{
		Enabled:  true,
		URL:      srv.URL,
		Cooldown: config.Duration(time.Minute),
	})

	require.NoError(t, alerter.Alert(context.Background(), &Alert{Title: "flap"}))

	err := alerter.Alert(context.Background(), &Alert{Title: "flap"})
	require.ErrorIs(t, err, ErrWebhookCooldown)

	// Different titles keep their own cooldown window.
	require.NoError(t, alerter.Alert(context.Background(), &Alert{Title: "other"}))
	assert.Equal(t, 2, calls)
}
