package notifier

import (
	"fmt"
	"time"

	"github.com/aleister1102/errnotify/internal/config"
	"github.com/aleister1102/errnotify/internal/models"
	"github.com/aleister1102/errnotify/internal/notifier/slack"
)

// ExceptionPayloadBuilder transforms an ErrorEvent plus optional request
// context into a Slack message payload. Build is a pure function of its
// inputs and the configuration snapshot.
type ExceptionPayloadBuilder struct {
	cfg config.NotificationConfig
}

// NewExceptionPayloadBuilder creates a new payload builder
func NewExceptionPayloadBuilder(cfg config.NotificationConfig) *ExceptionPayloadBuilder {
	return &ExceptionPayloadBuilder{cfg: cfg}
}

// Build constructs the outbound Slack payload for an error event
func (pb *ExceptionPayloadBuilder) Build(event *models.ErrorEvent, request *models.RequestContext) (slack.MessagePayload, error) {
	attachmentBuilder := slack.NewAttachmentBuilder().
		WithColor(pb.getExceptionColor(event)).
		WithFallback(FallbackText(event)).
		AddBlock(slack.NewHeaderBlock(event.Type)).
		AddBlock(pb.buildHeaderFields(event))

	if pb.cfg.IncludeRequestData && request != nil {
		attachmentBuilder.AddBlock(pb.buildRequestBlock(request))
	}

	if pb.cfg.IncludeUserData && request != nil && request.User != nil {
		attachmentBuilder.AddBlock(pb.buildUserBlock(request.User))
	}

	if pb.cfg.IncludeStackTrace {
		if trace := event.StackTraceText(); trace != "" {
			attachmentBuilder.AddBlock(pb.buildStackTraceBlock(trace))
		}
	}

	attachment, err := attachmentBuilder.Build()
	if err != nil {
		return slack.MessagePayload{}, err
	}

	return slack.NewMessagePayloadBuilder().
		WithChannel(pb.cfg.Channel).
		WithUsername(pb.cfg.Username).
		WithIconEmoji(pb.cfg.IconEmoji).
		AddAttachment(attachment).
		Build(), nil
}

// FallbackText renders the short summary used by chat clients that cannot
// render blocks: "<Type>: <message>".
func FallbackText(event *models.ErrorEvent) string {
	return fmt.Sprintf("%s: %s", event.Type, event.Message)
}

// buildHeaderFields lays out message, source location, environment and
// timestamp. Always included.
func (pb *ExceptionPayloadBuilder) buildHeaderFields(event *models.ErrorEvent) slack.Block {
	fields := []slack.TextObject{
		*slack.NewMarkdownText(fmt.Sprintf("*Message:*\n%s", truncateText(event.Message, maxMessageFieldLength))),
		*slack.NewMarkdownText(fmt.Sprintf("*Location:*\n%s:%d", event.File, event.Line)),
		*slack.NewMarkdownText(fmt.Sprintf("*Environment:*\n%s", pb.cfg.Environment)),
		*slack.NewMarkdownText(fmt.Sprintf("*Occurred:*\n%s", event.OccurredAt.Format(time.RFC3339))),
	}
	return slack.NewFieldsBlock(fields...)
}

// buildRequestBlock carries method and full URL only, never headers or body
func (pb *ExceptionPayloadBuilder) buildRequestBlock(request *models.RequestContext) slack.Block {
	return slack.NewFieldsBlock(
		*slack.NewMarkdownText(fmt.Sprintf("*Method:*\n%s", request.Method)),
		*slack.NewMarkdownText(fmt.Sprintf("*URL:*\n%s", request.URL)),
	)
}

// buildUserBlock carries the authenticated principal's identifier and name
func (pb *ExceptionPayloadBuilder) buildUserBlock(user *models.Principal) slack.Block {
	return slack.NewFieldsBlock(
		*slack.NewMarkdownText(fmt.Sprintf("*User ID:*\n%s", user.ID)),
		*slack.NewMarkdownText(fmt.Sprintf("*User:*\n%s", user.DisplayName)),
	)
}

// buildStackTraceBlock wraps the trace as preformatted text, truncated to
// MaxStackTraceLength characters with a marker when the source trace is
// longer.
func (pb *ExceptionPayloadBuilder) buildStackTraceBlock(trace string) slack.Block {
	if len(trace) > MaxStackTraceLength {
		trace = trace[:MaxStackTraceLength] + StackTruncatedSuffix
	}
	return slack.NewSectionBlock(fmt.Sprintf("```%s```", trace))
}

// getExceptionColor resolves the attachment color: explicit mapping first,
// then HTTP-status-derived severity, then the default severity color.
func (pb *ExceptionPayloadBuilder) getExceptionColor(event *models.ErrorEvent) string {
	if color, ok := pb.cfg.ColorMapping[event.Type]; ok {
		return color
	}

	severity := config.SeverityDefault
	switch {
	case event.StatusCode >= 500:
		severity = config.SeverityCritical
	case event.StatusCode >= 400:
		severity = config.SeverityWarning
	}

	if color, ok := pb.cfg.DefaultColors[severity]; ok {
		return color
	}

	switch severity {
	case config.SeverityCritical:
		return CriticalColor
	case config.SeverityWarning:
		return WarningColor
	default:
		return DefaultColor
	}
}

// truncateText hard-caps a string without a marker
func truncateText(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max]
}
