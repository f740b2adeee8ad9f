package mailform

import "errors"

var (
	// ErrNoRecipient indicates no recipient address could be resolved from
	// the message, the form control fields, or the configured defaults.
	ErrNoRecipient = errors.New("message must have at least one recipient")

	// ErrNoSender indicates no sender address could be resolved.
	ErrNoSender = errors.New("message must have a sender address")

	// ErrSendFailed indicates the transport reported a delivery failure.
	ErrSendFailed = errors.New("failed to send email")

	// ErrInvalidFrontmatter indicates a markdown body opened a frontmatter
	// block that could not be parsed.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")

	// ErrRenderFailed indicates markdown body conversion failed.
	ErrRenderFailed = errors.New("failed to render body")
)
