package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bekwynlaw/law-site-api/internal/api/router"
	appconfig "github.com/bekwynlaw/law-site-api/internal/config"
	"github.com/bekwynlaw/law-site-api/internal/content"
	"github.com/bekwynlaw/law-site-api/internal/intake"
	"github.com/bekwynlaw/law-site-api/internal/newsletter"
	"github.com/bekwynlaw/law-site-api/internal/notify"
	"github.com/bekwynlaw/law-site-api/internal/observability/metrics"
	"github.com/bekwynlaw/law-site-api/internal/strapi"
	"github.com/bekwynlaw/law-site-api/pkg/logging"
)

func main() {
	// Local development reads .env; in deployment the variables come
	// from the environment and the file is absent.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting law-site-api server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	store := strapi.NewClient(cfg.StrapiURL, cfg.StrapiToken, logger)
	if !store.HasToken() {
		logger.Warn("STRAPI_TOKEN not set; form submissions will be rejected")
	}

	sender := buildEmailSender(cfg, logger)
	notifier := notify.NewService(sender, cfg.NotificationEmail, logger)
	if !notifier.Enabled() {
		logger.Warn("email notifications disabled; set SMTP_* or choose another EMAIL_PROVIDER")
	}

	intakeMetrics := metrics.NewIntakeMetrics(nil)
	contentMetrics := metrics.NewContentMetrics(nil)

	contentSvc := content.NewService(store, cfg.ContentCacheTTL, contentMetrics, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		IntakeHandler:      intake.NewHandler(store, notifier, intakeMetrics, logger),
		NewsletterHandler:  newsletter.NewHandler(store, notifier, intakeMetrics, logger),
		ContentHandler:     content.NewHandler(contentSvc, logger),
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSOrigins,
		FormRateLimit:      cfg.IntakeRate,
		FormRateBurst:      cfg.IntakeBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ServerTimeout,
		WriteTimeout: cfg.ServerTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildEmailSender selects the notification transport. SMTP is the
// default because the firm's relay is plain SMTP; SendGrid and SES stay
// available for deployments that already have those accounts.
func buildEmailSender(cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	switch cfg.EmailProvider {
	case "sendgrid":
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender == nil {
			return nil
		}
		return sender
	case "ses":
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(cfg.AWSRegion),
		)
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			return nil
		}
		sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SESFromName,
		}, logger)
		if sender == nil {
			return nil
		}
		return sender
	case "stub":
		return notify.NewStubEmailSender(logger)
	default:
		sender, err := notify.NewSMTPSender(notify.SMTPConfig{
			Host:            cfg.SMTPHost,
			Port:            cfg.SMTPPort,
			User:            cfg.SMTPUser,
			Pass:            cfg.SMTPPass,
			From:            cfg.SMTPFrom,
			Secure:          cfg.SMTPSecure,
			AllowSelfSigned: cfg.SMTPAllowSelfSigned,
		}, logger)
		if err != nil {
			logger.Error("failed to build SMTP sender", "error", err)
			return nil
		}
		if sender == nil {
			return nil
		}
		return sender
	}
}
