package slack

// MessagePayload represents the JSON payload sent to a Slack incoming webhook.
type MessagePayload struct {
	Channel     string       `json:"channel,omitempty"`    // Override the default webhook channel
	Username    string       `json:"username,omitempty"`   // Override the default webhook username
	IconEmoji   string       `json:"icon_emoji,omitempty"` // Override the default webhook icon
	Text        string       `json:"text,omitempty"`       // Top-level text (optional)
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment represents a Slack message attachment carrying a color bar,
// a fallback text for clients that cannot render blocks, and the block list.
type Attachment struct {
	Color    string  `json:"color,omitempty"`    // Named color or "#rrggbb"
	Fallback string  `json:"fallback,omitempty"` // Plain-text summary
	Blocks   []Block `json:"blocks,omitempty"`   // Ordered Block Kit blocks
}
