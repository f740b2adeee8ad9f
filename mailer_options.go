package mailform

import "github.com/microcosm-cc/bluemonday"

// Option configures the Mailer.
type Option func(*Mailer)

// WithDelimiter sets the section delimiter used in form keys.
// Defaults to ":".
func WithDelimiter(d string) Option {
	return func(m *Mailer) {
		if d != "" {
			m.delimiter = d
		}
	}
}

// WithMarkdown enables markdown rendering for literal message bodies.
// The body converts to HTML (with [!button|Label](url) call-to-action
// support) and may open with a YAML frontmatter block carrying a Subject.
// Form submissions are unaffected.
func WithMarkdown() Option {
	return func(m *Mailer) {
		m.markdown = newMarkdown()
	}
}

// WithValueSanitizer strips markup from submitted form values with the
// given bluemonday policy before grouping. Without it, values are only
// HTML-escaped at render time.
func WithValueSanitizer(policy *bluemonday.Policy) Option {
	return func(m *Mailer) {
		m.sanitizer = policy
	}
}
