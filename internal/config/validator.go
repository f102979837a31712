package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aleister1102/errnotify/internal/errorwrapper"
)

var slackColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "error", "fatal", "panic": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	// Register custom validation for LogFormat
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json": // Allow empty for omitempty
			return true
		default:
			return false
		}
	})

	// Register custom validation for Slack attachment colors. Slack accepts
	// the named colors "good", "warning" and "danger" as well as hex codes.
	_ = validate.RegisterValidation("slackcolor", func(fl validator.FieldLevel) bool {
		color := strings.ToLower(fl.Field().String())
		switch color {
		case "good", "warning", "danger":
			return true
		default:
			return slackColorPattern.MatchString(color)
		}
	})

	if err := validate.Struct(cfg); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			var validationErrorMessages []string
			for _, e := range errs {
				msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.StructNamespace(), e.Tag())
				if e.Param() != "" {
					msg += fmt.Sprintf(" (expected: %s)", e.Param())
				}
				if e.Value() != nil && e.Value() != "" {
					msg += fmt.Sprintf(", actual: '%v'", e.Value())
				}
				validationErrorMessages = append(validationErrorMessages, msg)
			}
			return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(validationErrorMessages, "\n  "))
		}
		return fmt.Errorf("configuration validation error: %w", err)
	}

	return validateRateLimit(cfg.NotificationConfig.RateLimit)
}

// validateRateLimit checks cross-field rules the struct tags cannot express:
// an enabled limiter needs a positive ceiling and window.
func validateRateLimit(rl RateLimitConfig) error {
	if !rl.Enabled {
		return nil
	}
	if rl.MaxNotifications < 1 {
		return errorwrapper.NewValidationError("rate_limit.max_notifications", rl.MaxNotifications, "must be at least 1 when rate limiting is enabled")
	}
	if rl.PerMinutes < 1 {
		return errorwrapper.NewValidationError("rate_limit.per_minutes", rl.PerMinutes, "must be at least 1 when rate limiting is enabled")
	}
	return nil
}
