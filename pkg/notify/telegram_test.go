package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramSendText(t *testing.T) {
	var gotPath string

	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &gotBody))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewTelegramClient("test-token", srv.URL)

	err := client.SendText(context.Background(), "1001", "<b>Screen down</b>")
	require.NoError(t, err)

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "1001", gotBody["chat_id"])
	assert.Equal(t, "<b>Screen down</b>", gotBody["text"])
	assert.Equal(t, "HTML", gotBody["parse_mode"])
}

func TestTelegramSendDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "1001", r.FormValue("chat_id"))
		assert.Equal(t, "Uptime report", r.FormValue("caption"))

		file, header, err := r.FormFile("document")
		require.NoError(t, err)

		defer file.Close()

		data, err := io.ReadAll(file)
		require.NoError(t, err)

		assert.Equal(t, "report.csv", header.Filename)
		assert.Equal(t, "screen,uptime\n", string(data))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewTelegramClient("test-token", srv.URL)

	err := client.SendDocument(context.Background(), "1001", "Uptime report", "report.csv", []byte("screen,uptime\n"))
	require.NoError(t, err)
}

func TestTelegramErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer srv.Close()

	client := NewTelegramClient("test-token", srv.URL)

	err := client.SendText(context.Background(), "bogus", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "chat not found")
}
