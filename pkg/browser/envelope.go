package browser

import (
	"fmt"
	"strings"
)

// ContentItem is one typed payload entry in a result envelope: either a
// text segment or a binary image.
type ContentItem interface {
	contentItem()
}

// TextContent is a text payload item.
type TextContent struct {
	Text string
}

func (TextContent) contentItem() {}

// ImageContent is a binary image payload item.
type ImageContent struct {
	Data     []byte
	MimeType string
}

func (ImageContent) contentItem() {}

// Envelope is the uniform result returned by every action. On success
// Content carries the operation's payload and Details its structured
// metadata. On failure IsError is true, Content carries a human-readable
// description, and Details["error"] carries the error kind. Error
// envelopes never carry binary payloads.
type Envelope struct {
	Content []ContentItem
	Details map[string]interface{}
	IsError bool
}

// Text returns the concatenated text items of the envelope.
func (e *Envelope) Text() string {
	var parts []string
	for _, item := range e.Content {
		if text, ok := item.(TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// ErrorKind returns the classified kind of an error envelope, or "" for
// success envelopes.
func (e *Envelope) ErrorKind() Kind {
	if !e.IsError {
		return ""
	}
	kind, _ := e.Details["error"].(string)
	return Kind(kind)
}

// textEnvelope builds a success envelope with a single text item.
func textEnvelope(text string, details map[string]interface{}) *Envelope {
	return &Envelope{
		Content: []ContentItem{TextContent{Text: text}},
		Details: details,
	}
}

// errorEnvelope normalizes a failure into the uniform envelope shape.
func errorEnvelope(err error) *Envelope {
	kind := KindOf(err)
	return &Envelope{
		Content: []ContentItem{TextContent{Text: fmt.Sprintf("[%s] %v", kind, err)}},
		Details: map[string]interface{}{"error": string(kind)},
		IsError: true,
	}
}
