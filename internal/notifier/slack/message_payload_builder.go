package slack

// MessagePayloadBuilder helps in constructing MessagePayload objects.
type MessagePayloadBuilder struct {
	payload MessagePayload
}

// NewMessagePayloadBuilder creates a new instance of MessagePayloadBuilder.
func NewMessagePayloadBuilder() *MessagePayloadBuilder {
	return &MessagePayloadBuilder{
		payload: MessagePayload{},
	}
}

// WithChannel sets the Channel for the MessagePayload.
func (b *MessagePayloadBuilder) WithChannel(channel string) *MessagePayloadBuilder {
	b.payload.Channel = channel
	return b
}

// WithUsername sets the Username for the MessagePayload.
func (b *MessagePayloadBuilder) WithUsername(username string) *MessagePayloadBuilder {
	b.payload.Username = username
	return b
}

// WithIconEmoji sets the IconEmoji for the MessagePayload.
func (b *MessagePayloadBuilder) WithIconEmoji(iconEmoji string) *MessagePayloadBuilder {
	b.payload.IconEmoji = iconEmoji
	return b
}

// WithText sets the top-level Text for the MessagePayload.
func (b *MessagePayloadBuilder) WithText(text string) *MessagePayloadBuilder {
	b.payload.Text = text
	return b
}

// AddAttachment adds an Attachment to the MessagePayload.
func (b *MessagePayloadBuilder) AddAttachment(attachment Attachment) *MessagePayloadBuilder {
	b.payload.Attachments = append(b.payload.Attachments, attachment)
	return b
}

// Build returns the constructed MessagePayload object.
func (b *MessagePayloadBuilder) Build() MessagePayload {
	return b.payload
}
