package notifier

import (
	"context"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/errnotify/internal/config"
	"github.com/aleister1102/errnotify/internal/counterstore"
	"github.com/aleister1102/errnotify/internal/errorwrapper"
	"github.com/aleister1102/errnotify/internal/httpclient"
	"github.com/aleister1102/errnotify/internal/models"
)

// Dispatcher orchestrates exception notifications: eligibility filtering,
// rate limiting, payload construction and webhook delivery. It runs inline
// on the caller's error-reporting path and never lets a failure escape;
// every outcome is reported through the boolean return of Send.
type Dispatcher struct {
	cfg        config.NotificationConfig
	logger     zerolog.Logger
	httpClient *httpclient.HTTPClient
	builder    *ExceptionPayloadBuilder
	limiter    *RateLimiter
}

// NewDispatcher creates a new notification dispatcher over the given
// counter store
func NewDispatcher(cfg config.NotificationConfig, store counterstore.Store, logger zerolog.Logger) (*Dispatcher, error) {
	moduleLogger := logger.With().Str("module", "Dispatcher").Logger()

	httpClient, err := httpclient.NewHTTPClientBuilder(moduleLogger).
		WithTimeout(deliveryTimeout(cfg)).
		Build()
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to build HTTP client")
	}

	return &Dispatcher{
		cfg:        cfg,
		logger:     moduleLogger,
		httpClient: httpClient,
		builder:    NewExceptionPayloadBuilder(cfg),
		limiter:    NewRateLimiter(cfg.RateLimit, store, logger),
	}, nil
}

// Send reports an error event to the configured webhook. It returns true
// only when the notification was delivered (2xx response); configuration
// skips, rate-limited skips and failures all return false. Send never
// panics past its own boundary.
func (d *Dispatcher) Send(ctx context.Context, event *models.ErrorEvent, request *models.RequestContext) (sent bool) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().Interface("panic", r).Msg("Recovered panic during notification dispatch")
			sent = false
		}
	}()

	if event == nil {
		return false
	}

	// Configuration-gated skips are silent: a false return with no log entry
	if !d.shouldSend(event) {
		return false
	}

	limited, err := d.limiter.IsLimited(ctx)
	if err != nil {
		d.logger.Error().Err(err).Msg("Failed to read rate limit counter")
		return false
	}
	if limited {
		return false
	}

	payload, err := d.builder.Build(event, request)
	if err != nil {
		d.logger.Error().Err(err).Str("exception_type", event.Type).Msg("Failed to build notification payload")
		return false
	}

	resp, err := d.httpClient.PostJSON(ctx, d.cfg.SlackWebhookURL, payload)
	if err != nil {
		d.logger.Error().Err(err).Str("exception_type", event.Type).Msg("Failed to deliver notification")
		return false
	}
	if !resp.IsSuccess() {
		httpErr := errorwrapper.NewHTTPErrorWithURL(resp.StatusCode, "webhook rejected notification", d.cfg.SlackWebhookURL)
		d.logger.Error().Err(httpErr).Str("exception_type", event.Type).Msg("Failed to deliver notification")
		return false
	}

	// Counter moves only after confirmed delivery, never before or on failure
	if err := d.limiter.Increment(ctx); err != nil {
		d.logger.Error().Err(err).Msg("Failed to increment rate limit counter")
	}

	d.logger.Debug().Str("exception_type", event.Type).Msg("Notification delivered")
	return true
}

// shouldSend applies the feature flag and the ignore/allow exception-type
// filter. The ignored list always wins over the notifiable list.
func (d *Dispatcher) shouldSend(event *models.ErrorEvent) bool {
	if !d.cfg.Enabled || d.cfg.SlackWebhookURL == "" {
		return false
	}

	if slices.Contains(d.cfg.IgnoredExceptions, event.Type) {
		return false
	}

	if d.cfg.NotifyAllExceptions {
		return true
	}
	return slices.Contains(d.cfg.NotifiableExceptions, event.Type)
}

// deliveryTimeout returns the configured delivery timeout with the default
// as fallback
func deliveryTimeout(cfg config.NotificationConfig) time.Duration {
	seconds := cfg.DeliveryTimeoutSeconds
	if seconds <= 0 {
		seconds = config.DefaultDeliveryTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}
