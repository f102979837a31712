package slack

import (
	"fmt"

	"github.com/aleister1102/errnotify/internal/errorwrapper"
)

// Slack Block Kit limits
const (
	maxBlocksPerAttachment = 50
	maxHeaderTextLength    = 150
	maxSectionTextLength   = 3000
	maxFieldsPerSection    = 10
	maxFieldTextLength     = 2000
)

// AttachmentValidator validates Slack attachments against Block Kit limits
type AttachmentValidator struct{}

// NewAttachmentValidator creates a new attachment validator
func NewAttachmentValidator() *AttachmentValidator {
	return &AttachmentValidator{}
}

// ValidateAttachment validates a Slack attachment
func (av *AttachmentValidator) ValidateAttachment(attachment Attachment) error {
	if len(attachment.Blocks) > maxBlocksPerAttachment {
		return errorwrapper.NewValidationError("blocks", len(attachment.Blocks), fmt.Sprintf("cannot have more than %d blocks", maxBlocksPerAttachment))
	}

	for i, block := range attachment.Blocks {
		if err := av.validateBlock(i, block); err != nil {
			return err
		}
	}
	return nil
}

// validateBlock validates a single block
func (av *AttachmentValidator) validateBlock(index int, block Block) error {
	switch block.Type {
	case BlockTypeHeader:
		if block.Text == nil || block.Text.Text == "" {
			return errorwrapper.NewValidationError("block_text", block.Text, fmt.Sprintf("block %d header text cannot be empty", index))
		}
		if len(block.Text.Text) > maxHeaderTextLength {
			return errorwrapper.NewValidationError("block_text", block.Text.Text, fmt.Sprintf("block %d header text cannot exceed %d characters", index, maxHeaderTextLength))
		}
	case BlockTypeSection:
		if block.Text == nil && len(block.Fields) == 0 {
			return errorwrapper.NewValidationError("block", block, fmt.Sprintf("block %d section needs text or fields", index))
		}
		if block.Text != nil && len(block.Text.Text) > maxSectionTextLength {
			return errorwrapper.NewValidationError("block_text", block.Text.Text, fmt.Sprintf("block %d section text cannot exceed %d characters", index, maxSectionTextLength))
		}
		if len(block.Fields) > maxFieldsPerSection {
			return errorwrapper.NewValidationError("block_fields", len(block.Fields), fmt.Sprintf("block %d cannot have more than %d fields", index, maxFieldsPerSection))
		}
		for j, field := range block.Fields {
			if field.Text == "" {
				return errorwrapper.NewValidationError("field_text", field.Text, fmt.Sprintf("block %d field %d text cannot be empty", index, j))
			}
			if len(field.Text) > maxFieldTextLength {
				return errorwrapper.NewValidationError("field_text", field.Text, fmt.Sprintf("block %d field %d text cannot exceed %d characters", index, j, maxFieldTextLength))
			}
		}
	default:
		return errorwrapper.NewValidationError("block_type", block.Type, fmt.Sprintf("block %d has unsupported type", index))
	}
	return nil
}
