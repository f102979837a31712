package config

// NotificationConfig defines configuration for exception notifications.
// The ignored list always wins over the notifiable list.
type NotificationConfig struct {
	Enabled                bool              `json:"enabled" yaml:"enabled"`
	SlackWebhookURL        string            `json:"slack_webhook_url,omitempty" yaml:"slack_webhook_url,omitempty" validate:"omitempty,url"`
	Channel                string            `json:"channel,omitempty" yaml:"channel,omitempty"`
	Username               string            `json:"username,omitempty" yaml:"username,omitempty"`
	IconEmoji              string            `json:"icon_emoji,omitempty" yaml:"icon_emoji,omitempty"`
	Environment            string            `json:"environment,omitempty" yaml:"environment,omitempty"`
	NotifyAllExceptions    bool              `json:"notify_all_exceptions" yaml:"notify_all_exceptions"`
	NotifiableExceptions   []string          `json:"notifiable_exceptions,omitempty" yaml:"notifiable_exceptions,omitempty"`
	IgnoredExceptions      []string          `json:"ignored_exceptions,omitempty" yaml:"ignored_exceptions,omitempty"`
	IncludeStackTrace      bool              `json:"include_stack_trace" yaml:"include_stack_trace"`
	IncludeRequestData     bool              `json:"include_request_data" yaml:"include_request_data"`
	IncludeUserData        bool              `json:"include_user_data" yaml:"include_user_data"`
	ColorMapping           map[string]string `json:"color_mapping,omitempty" yaml:"color_mapping,omitempty" validate:"omitempty,dive,slackcolor"`
	DefaultColors          map[string]string `json:"default_colors,omitempty" yaml:"default_colors,omitempty" validate:"omitempty,dive,slackcolor"`
	DeliveryTimeoutSeconds int               `json:"delivery_timeout_seconds,omitempty" yaml:"delivery_timeout_seconds,omitempty" validate:"min=1"`
	RateLimit              RateLimitConfig   `json:"rate_limit,omitempty" yaml:"rate_limit,omitempty"`
}

// RateLimitConfig defines the approximate fixed-window rate limit for
// outbound notifications.
type RateLimitConfig struct {
	Enabled          bool `json:"enabled" yaml:"enabled"`
	MaxNotifications int  `json:"max_notifications,omitempty" yaml:"max_notifications,omitempty" validate:"min=0"`
	PerMinutes       int  `json:"per_minutes,omitempty" yaml:"per_minutes,omitempty" validate:"min=0"`
}

// Severity keys used in DefaultColors
const (
	SeverityDefault  = "default"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		Enabled:              false,
		SlackWebhookURL:      "",
		Channel:              "",
		Username:             DefaultSlackUsername,
		IconEmoji:            DefaultSlackIconEmoji,
		Environment:          DefaultEnvironment,
		NotifyAllExceptions:  true,
		NotifiableExceptions: []string{},
		IgnoredExceptions:    []string{},
		IncludeStackTrace:    true,
		IncludeRequestData:   true,
		IncludeUserData:      false,
		ColorMapping:         map[string]string{},
		DefaultColors: map[string]string{
			SeverityDefault:  "#2b2d31",
			SeverityWarning:  "#f0ad4e",
			SeverityCritical: "#d9534f",
		},
		DeliveryTimeoutSeconds: DefaultDeliveryTimeoutSeconds,
		RateLimit:              NewDefaultRateLimitConfig(),
	}
}

// NewDefaultRateLimitConfig creates default rate limit configuration
func NewDefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:          true,
		MaxNotifications: DefaultRateLimitMaxNotifications,
		PerMinutes:       DefaultRateLimitPerMinutes,
	}
}
