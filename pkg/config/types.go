// Package config pkg/config/types.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

var (
	errNoListenAddr = errors.New("listen_addr is required")
	errNoDBPath     = errors.New("db_path is required")
	errNoSMTPHost   = errors.New("smtp host is required when mail is enabled")
)

// SMTPConfig holds the mail transport settings.
type SMTPConfig struct {
	Enabled  bool   `json:"enabled"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	From     string `json:"from"`
}

func (c *SMTPConfig) Validate() error {
	if c.Enabled && c.Host == "" {
		return errNoSMTPHost
	}

	if c.Port == 0 {
		c.Port = 465
	}

	return nil
}

// TelegramConfig holds the messaging transport settings. An empty token
// disables the channel.
type TelegramConfig struct {
	Token  string `json:"token"`
	APIURL string `json:"api_url,omitempty"`
}

// Header represents a custom HTTP header.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// WebhookConfig represents the ops webhook alert configuration.
type WebhookConfig struct {
	Enabled  bool     `json:"enabled"`
	URL      string   `json:"url"`
	Cooldown Duration `json:"cooldown"`
	Headers  []Header `json:"headers,omitempty"`
}

// MonitorConfig configures the availability monitor.
type MonitorConfig struct {
	PingInterval  Duration `json:"ping_interval"`  // how often the ping cycle runs
	ProbeTimeout  Duration `json:"probe_timeout"`  // per-probe deadline
	ProbeMode     string   `json:"probe_mode"`     // "http" or "icmp"
	Concurrency   int      `json:"concurrency"`    // probe worker count
	RatePerSecond float64  `json:"rate_per_second"` // probe rate limit, 0 = unlimited
	FailureWindow int      `json:"failure_window"` // prior down samples before escalation
	UptimeWindow  Duration `json:"uptime_window"`  // trailing window for uptime aggregation
}

func (c *MonitorConfig) Validate() error {
	if c.PingInterval <= 0 {
		c.PingInterval = Duration(5 * time.Minute)
	}

	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = Duration(10 * time.Second)
	}

	if c.ProbeMode == "" {
		c.ProbeMode = "http"
	}

	if c.ProbeMode != "http" && c.ProbeMode != "icmp" {
		return fmt.Errorf("unknown probe_mode %q", c.ProbeMode)
	}

	if c.Concurrency <= 0 {
		c.Concurrency = 10
	}

	if c.FailureWindow <= 0 {
		c.FailureWindow = 2
	}

	if c.UptimeWindow <= 0 {
		c.UptimeWindow = Duration(30 * 24 * time.Hour)
	}

	return nil
}

// ChecksConfig configures check handling policy.
type ChecksConfig struct {
	// NotifyOnAutoResolve sends closure notifications when a passing check
	// auto-resolves incidents, matching the operator-resolve path.
	NotifyOnAutoResolve bool `json:"notify_on_auto_resolve"`
}

// Config is the top-level screenwatch configuration.
type Config struct {
	ListenAddr string         `json:"listen_addr"`
	DBPath     string         `json:"db_path"`
	AssetsDir  string         `json:"assets_dir"`
	PublicURL  string         `json:"public_url"`
	Monitor    MonitorConfig  `json:"monitor"`
	Checks     ChecksConfig   `json:"checks"`
	SMTP       SMTPConfig     `json:"smtp"`
	Telegram   TelegramConfig `json:"telegram"`
	Webhook    WebhookConfig  `json:"webhook"`
}

func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return errNoListenAddr
	}

	if c.DBPath == "" {
		return errNoDBPath
	}

	if err := c.SMTP.Validate(); err != nil {
		return err
	}

	return c.Monitor.Validate()
}
