// cmd/screenwatch/main.go

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/monitorai/screenwatch/pkg/api"
	"github.com/monitorai/screenwatch/pkg/assets"
	"github.com/monitorai/screenwatch/pkg/checks"
	"github.com/monitorai/screenwatch/pkg/config"
	"github.com/monitorai/screenwatch/pkg/db"
	"github.com/monitorai/screenwatch/pkg/incidents"
	"github.com/monitorai/screenwatch/pkg/notify"
	"github.com/monitorai/screenwatch/pkg/uptime"
)

func main() {
	configPath := flag.String("config", "/etc/screenwatch/screenwatch.json", "Path to config file")
	flag.Parse()

	var cfg config.Config

	if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := db.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	var mail notify.MailSender
	if cfg.SMTP.Enabled {
		mail = notify.NewSMTPMailer(&cfg.SMTP)
	}

	var messenger notify.Messenger
	if cfg.Telegram.Token != "" {
		messenger = notify.NewTelegramClient(cfg.Telegram.Token, cfg.Telegram.APIURL)
	}

	sender := notify.NewDispatcher(mail, messenger)

	var alerter notify.AlertService
	if cfg.Webhook.Enabled {
		alerter = notify.NewWebhookAlerter(cfg.Webhook)
	}

	mover := assets.NewManager(store, cfg.AssetsDir)
	incidentSvc := incidents.NewManager(store, sender, mover, cfg.PublicURL)
	checkSvc := checks.NewService(store, mover, sender, cfg.Checks.NotifyOnAutoResolve)

	prober := newProber(&cfg.Monitor)
	monitor := uptime.NewMonitor(store, sender, alerter, prober, cfg.Monitor, cfg.PublicURL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go monitor.Start(ctx)
	go monitor.StartAggregation(ctx)

	apiServer := api.NewAPIServer(incidentSvc, checkSvc, store)

	go func() {
		log.Printf("Starting HTTP server on %s", cfg.ListenAddr)

		if err := apiServer.Start(cfg.ListenAddr); err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	log.Printf("Received signal %v, shutting down", sig)

	cancel()
}

func newProber(conf *config.MonitorConfig) uptime.Prober {
	if conf.ProbeMode == "icmp" {
		return uptime.NewICMPProber(time.Duration(conf.ProbeTimeout))
	}

	return uptime.NewHTTPProber(time.Duration(conf.ProbeTimeout))
}
