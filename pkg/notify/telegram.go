package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const defaultTelegramAPI = "https://api.telegram.org"

// TelegramClient talks to the Telegram Bot API directly over HTTP.
type TelegramClient struct {
	token  string
	apiURL string
	client *http.Client
}

func NewTelegramClient(token, apiURL string) *TelegramClient {
	if apiURL == "" {
		apiURL = defaultTelegramAPI
	}

	return &TelegramClient{
		token:  token,
		apiURL: apiURL,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (t *TelegramClient) SendText(ctx context.Context, chatID, html string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id":    chatID,
		"text":       html,
		"parse_mode": "HTML",
	})
	if err != nil {
		return fmt.Errorf("error marshaling telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiURL, t.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error creating telegram request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return t.do(req)
}

func (t *TelegramClient) SendDocument(ctx context.Context, chatID, caption, filename string, data []byte) error {
	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("chat_id", chatID); err != nil {
		return fmt.Errorf("error writing telegram form field: %w", err)
	}

	if caption != "" {
		if err := writer.WriteField("caption", caption); err != nil {
			return fmt.Errorf("error writing telegram form field: %w", err)
		}

		if err := writer.WriteField("parse_mode", "HTML"); err != nil {
			return fmt.Errorf("error writing telegram form field: %w", err)
		}
	}

	part, err := writer.CreateFormFile("document", filename)
	if err != nil {
		return fmt.Errorf("error creating telegram form file: %w", err)
	}

	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("error writing telegram document: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("error finalizing telegram form: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendDocument", t.apiURL, t.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return fmt.Errorf("error creating telegram request: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())

	return t.do(req)
}

func (t *TelegramClient) do(req *http.Request) error {
	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending telegram request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, detail)
	}

	return nil
}
