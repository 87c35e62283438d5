package domain

import (
	"fmt"
	"time"
)

// Payload encodes the chunk as the stored point payload. The key names are
// part of the collection's on-disk schema and must not change between
// releases, or previously indexed payloads stop validating.
func (c DocumentChunk) Payload() map[string]any {
	p := map[string]any{
		"_type":     PayloadType,
		"text":      c.Text,
		"url":       c.URL,
		"title":     c.Title,
		"timestamp": c.Timestamp.UTC().Format(time.RFC3339),
	}
	if c.IsPDF {
		p["_pdf"] = true
		p["page"] = c.PageNumber
		p["pageCount"] = c.PageCount
		p["author"] = c.Author
	}
	return p
}

// DecodeChunkPayload validates a stored payload against the discriminator
// tag and required-field shape, and decodes it into a DocumentChunk.
// Untagged or mis-shaped payloads yield an error wrapping
// ErrSchemaValidation rather than a best-effort guess.
func DecodeChunkPayload(p map[string]any) (DocumentChunk, error) {
	if p == nil {
		return DocumentChunk{}, fmt.Errorf("%w: payload is empty", ErrSchemaValidation)
	}
	if tag, _ := p["_type"].(string); tag != PayloadType {
		return DocumentChunk{}, fmt.Errorf("%w: missing %q discriminator", ErrSchemaValidation, PayloadType)
	}

	var c DocumentChunk
	var ok bool
	if c.Text, ok = p["text"].(string); !ok {
		return DocumentChunk{}, fmt.Errorf("%w: text field missing or not a string", ErrSchemaValidation)
	}
	if c.URL, ok = p["url"].(string); !ok {
		return DocumentChunk{}, fmt.Errorf("%w: url field missing or not a string", ErrSchemaValidation)
	}
	if c.Title, ok = p["title"].(string); !ok {
		return DocumentChunk{}, fmt.Errorf("%w: title field missing or not a string", ErrSchemaValidation)
	}

	ts, ok := p["timestamp"].(string)
	if !ok {
		return DocumentChunk{}, fmt.Errorf("%w: timestamp field missing or not a string", ErrSchemaValidation)
	}
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return DocumentChunk{}, fmt.Errorf("%w: timestamp %q is not RFC 3339", ErrSchemaValidation, ts)
	}
	c.Timestamp = parsed

	// PDF fields are optional. JSON decoding yields float64 for numbers.
	c.IsPDF, _ = p["_pdf"].(bool)
	c.Author, _ = p["author"].(string)
	c.PageNumber = intField(p["page"])
	c.PageCount = intField(p["pageCount"])

	return c, nil
}

func intField(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
