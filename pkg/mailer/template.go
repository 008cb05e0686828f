package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// Template is a parsed email template: YAML frontmatter plus a markdown body.
type Template struct {
	Metadata map[string]any
	Body     string
}

// Subject returns the "Subject" frontmatter key, if it is a string.
func (t *Template) Subject() (string, bool) {
	s, ok := t.Metadata["Subject"].(string)
	return s, ok && s != ""
}

// ParseTemplate splits template content into frontmatter metadata and markdown body.
// Content without a leading "---" has no metadata.
func ParseTemplate(content []byte) (*Template, error) {
	rest, ok := bytes.CutPrefix(content, []byte(frontmatterDelimiter))
	if !ok {
		return &Template{Metadata: map[string]any{}, Body: string(content)}, nil
	}

	rest = bytes.TrimLeft(rest, "\r\n")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	front, body, found := bytes.Cut(rest, []byte(frontmatterDelimiter))
	if !found {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	// one line break after the closing delimiter belongs to it
	if b, ok := bytes.CutPrefix(body, []byte("\r\n")); ok {
		body = b
	} else if b, ok := bytes.CutPrefix(body, []byte("\n")); ok {
		body = b
	}

	metadata := map[string]any{}
	if len(bytes.TrimSpace(front)) > 0 {
		if err := yaml.Unmarshal(front, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Template{Metadata: metadata, Body: string(body)}, nil
}
