package uptime

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPProber considers a screen up when its controller answers HTTP at all.
// Any status code is proof of life; error pages still mean the device is
// powered and on the network. Only transport failures count as down.
type HTTPProber struct {
	client *http.Client
}

func NewHTTPProber(timeout time.Duration) *HTTPProber {
	return &HTTPProber{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *HTTPProber) Probe(ctx context.Context, address string) error {
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return fmt.Errorf("invalid probe address %q: %w", address, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("probe failed: %w", err)
	}
	defer resp.Body.Close()

	return nil
}
