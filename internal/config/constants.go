package config

// Logging defaults
const (
	DefaultLogFile       = ""
	DefaultLogFormat     = "console"
	DefaultLogLevel      = "info"
	DefaultMaxLogBackups = 3
	DefaultMaxLogSizeMB  = 100
)

// Notification defaults
const (
	DefaultSlackUsername          = "errnotify"
	DefaultSlackIconEmoji         = ":rotating_light:"
	DefaultEnvironment            = "production"
	DefaultDeliveryTimeoutSeconds = 20
)

// Rate limit defaults
const (
	DefaultRateLimitMaxNotifications = 10
	DefaultRateLimitPerMinutes       = 5
)

// Storage defaults
const (
	DefaultCounterDBPath = "data/errnotify.db"
)
