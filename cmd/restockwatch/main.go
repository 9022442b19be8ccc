package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"restockwatch/internal/config"
	"restockwatch/internal/detector"
	"restockwatch/internal/extractor"
	"restockwatch/internal/logger"
	"restockwatch/internal/monitor"
	"restockwatch/internal/notifier"
	"restockwatch/internal/rslimiter"
)

func main() {
	flags := parseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load config: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}

	// The webhook URL comes from the environment first, the config file
	// second. Without one there is nowhere to deliver alerts, so startup
	// fails.
	webhookURL := os.Getenv(config.WebhookEnvVar)
	if webhookURL == "" {
		webhookURL = gCfg.NotificationConfig.DiscordWebhookURL
	}
	if webhookURL == "" {
		zLogger.Fatal().Str("env_var", config.WebhookEnvVar).Msg("No Discord webhook URL configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	discordNotifier := notifier.NewDiscordNotifier(zLogger, nil)
	notifHelper := notifier.NewNotificationHelper(discordNotifier, gCfg.NotificationConfig, webhookURL, zLogger)

	fetchClient := &http.Client{Timeout: gCfg.MonitorConfig.HTTPTimeout()}
	fetcher := monitor.NewFetcher(fetchClient, &gCfg.MonitorConfig, zLogger)
	ext := extractor.New(gCfg.ExtractorConfig, zLogger)
	det := detector.New(detector.NewStateStore(), zLogger)
	service := monitor.NewMonitoringService(fetcher, ext, det, notifHelper, zLogger)

	sampler := rslimiter.NewUsageSampler(zLogger, 512)
	scheduler := monitor.NewScheduler(&gCfg.MonitorConfig, service, sampler, zLogger)

	notifHelper.NotifyStartup(ctx, gCfg.MonitorConfig.PageURLs)

	if err := scheduler.Run(ctx); err != nil && ctx.Err() == nil {
		zLogger.Error().Err(err).Msg("Polling loop exited with error")
		os.Exit(1)
	}

	zLogger.Info().Msg("Shutting down")
}
