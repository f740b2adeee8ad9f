package mailform

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// frontmatter is envelope metadata carried at the top of a markdown body
// between `---` delimiters. Only recognized keys are extracted; there is no
// variable interpolation.
type frontmatter struct {
	Subject string `yaml:"Subject"`
}

var fmDelimiter = []byte("---")

// splitFrontmatter extracts an optional YAML frontmatter block from a
// markdown body. A body not starting with the delimiter is returned
// unchanged with empty metadata. An opened but unterminated or malformed
// block is an error.
func splitFrontmatter(body string) (frontmatter, string, error) {
	content := []byte(body)
	if !bytes.HasPrefix(content, fmDelimiter) {
		return frontmatter{}, body, nil
	}

	rest := bytes.TrimPrefix(content, fmDelimiter)
	rest = bytes.TrimLeft(rest, "\r\n")
	end := bytes.Index(rest, fmDelimiter)
	if end == -1 {
		return frontmatter{}, "", fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	var meta frontmatter
	if block := bytes.TrimSpace(rest[:end]); len(block) > 0 {
		if err := yaml.Unmarshal(block, &meta); err != nil {
			return frontmatter{}, "", fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	md := rest[end+len(fmDelimiter):]
	// Skip the single newline following the closing delimiter.
	if bytes.HasPrefix(md, []byte("\r\n")) {
		md = md[2:]
	} else if bytes.HasPrefix(md, []byte("\n")) {
		md = md[1:]
	}

	return meta, string(md), nil
}
