package slack

// AttachmentBuilder helps in constructing Attachment objects.
type AttachmentBuilder struct {
	attachment Attachment
	validator  *AttachmentValidator
}

// NewAttachmentBuilder creates a new attachment builder
func NewAttachmentBuilder() *AttachmentBuilder {
	return &AttachmentBuilder{
		attachment: Attachment{},
		validator:  NewAttachmentValidator(),
	}
}

// WithColor sets the attachment color bar
func (ab *AttachmentBuilder) WithColor(color string) *AttachmentBuilder {
	ab.attachment.Color = color
	return ab
}

// WithFallback sets the plain-text fallback
func (ab *AttachmentBuilder) WithFallback(fallback string) *AttachmentBuilder {
	ab.attachment.Fallback = fallback
	return ab
}

// AddBlock appends a block to the attachment
func (ab *AttachmentBuilder) AddBlock(block Block) *AttachmentBuilder {
	ab.attachment.Blocks = append(ab.attachment.Blocks, block)
	return ab
}

// Validate validates the current attachment
func (ab *AttachmentBuilder) Validate() error {
	return ab.validator.ValidateAttachment(ab.attachment)
}

// Build builds the attachment with validation
func (ab *AttachmentBuilder) Build() (Attachment, error) {
	if err := ab.Validate(); err != nil {
		return Attachment{}, err
	}
	return ab.attachment, nil
}
