package slack

// Block type identifiers
const (
	BlockTypeHeader  = "header"
	BlockTypeSection = "section"
)

// Text object type identifiers
const (
	TextTypePlain    = "plain_text"
	TextTypeMarkdown = "mrkdwn"
)

// TextObject represents a Block Kit text composition object.
type TextObject struct {
	Type  string `json:"type"`            // "plain_text" or "mrkdwn"
	Text  string `json:"text"`            // Text content
	Emoji bool   `json:"emoji,omitempty"` // Render emoji shortcodes (plain_text only)
}

// NewPlainText creates a plain_text text object
func NewPlainText(text string) *TextObject {
	return &TextObject{
		Type:  TextTypePlain,
		Text:  text,
		Emoji: true,
	}
}

// NewMarkdownText creates a mrkdwn text object
func NewMarkdownText(text string) *TextObject {
	return &TextObject{
		Type: TextTypeMarkdown,
		Text: text,
	}
}

// Block represents a Block Kit layout block.
type Block struct {
	Type   string       `json:"type"`
	Text   *TextObject  `json:"text,omitempty"`
	Fields []TextObject `json:"fields,omitempty"` // Two-column field layout (section only)
}

// NewHeaderBlock creates a header block with plain text
func NewHeaderBlock(text string) Block {
	return Block{
		Type: BlockTypeHeader,
		Text: NewPlainText(text),
	}
}

// NewSectionBlock creates a section block with mrkdwn text
func NewSectionBlock(text string) Block {
	return Block{
		Type: BlockTypeSection,
		Text: NewMarkdownText(text),
	}
}

// NewFieldsBlock creates a section block laying out fields in two columns
func NewFieldsBlock(fields ...TextObject) Block {
	return Block{
		Type:   BlockTypeSection,
		Fields: fields,
	}
}
