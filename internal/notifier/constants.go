package notifier

// Counter key shared by every dispatcher instance; the rate limit applies
// per store, not per process.
const RateLimitCounterKey = "errnotify:notifications"

// Stack trace formatting constants
const (
	MaxStackTraceLength  = 2500
	StackTruncatedSuffix = "... (truncated)"
)

// Fallback colors used when the configuration carries no palette
const (
	DefaultColor  = "#2b2d31" // Dark neutral
	WarningColor  = "#f0ad4e" // Bootstrap warning orange
	CriticalColor = "#d9534f" // Bootstrap danger red
)

// Field formatting constants
const (
	maxMessageFieldLength = 1500
)
