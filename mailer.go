package mailform

import (
	"context"
	"errors"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Mailer is the public entry point of the pipeline. It merges explicit
// message fields with form-extracted values and configured defaults,
// renders form submissions into an HTML table, and hands the finished
// Email to a Sender. A Mailer holds no per-call state and is safe for
// concurrent use.
type Mailer struct {
	sender    Sender
	config    Config
	delimiter string
	sanitizer *bluemonday.Policy
	markdown  goldmark.Markdown
}

// New creates a Mailer delivering through the given sender.
func New(sender Sender, cfg Config, opts ...Option) *Mailer {
	if cfg.FallbackSubject == "" {
		cfg.FallbackSubject = "New message"
	}
	m := &Mailer{
		sender:    sender,
		config:    cfg,
		delimiter: DefaultDelimiter,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Prepare resolves a message into a provider-neutral Email without sending
// it. Form submissions are parsed, grouped, and rendered; envelope fields
// are merged (explicit values win, form-extracted values fill gaps, then
// configured defaults); addresses are normalized; file inputs collected
// from the form become the attachments, overriding any explicit ones.
// Fails with ErrNoRecipient or ErrNoSender before any transport contact.
func (m *Mailer) Prepare(msg Message) (*Email, error) {
	email := &Email{
		From:        msg.From,
		To:          msg.To,
		ReplyTo:     msg.ReplyTo,
		CC:          msg.CC,
		BCC:         msg.BCC,
		Subject:     msg.Subject,
		Attachments: msg.Attachments,
	}

	if msg.Fields != nil {
		parsed := parseForm(msg.Fields, m.delimiter, m.sanitizer)
		mergeEnvelope(email, parsed.env)
		email.HTML = renderTable(parsed.data, msg.Formatting)
		if len(parsed.files) > 0 {
			email.Attachments = encodeFiles(parsed.files)
		}
	} else if err := m.renderBody(email, msg.Body); err != nil {
		return nil, err
	}

	if len(email.To) == 0 && m.config.DefaultTo != "" {
		email.To = ParseAddressList(m.config.DefaultTo)
	}
	if email.From.IsZero() && m.config.DefaultFrom != "" {
		email.From = ParseAddress(m.config.DefaultFrom)
	}
	if email.Subject == "" {
		email.Subject = m.config.FallbackSubject
	}

	if len(email.To) == 0 {
		return nil, ErrNoRecipient
	}
	if email.From.IsZero() {
		return nil, ErrNoSender
	}

	return email, nil
}

// Send prepares the message and delivers it through the transport.
// Validation failures surface before the transport is contacted; transport
// failures are wrapped with ErrSendFailed and bubbled up otherwise
// unchanged.
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	email, err := m.Prepare(msg)
	if err != nil {
		return err
	}
	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

// renderBody fills the body of a non-form message. With markdown enabled,
// an optional frontmatter block may supply the subject (lowest precedence
// above the config fallback) and the body converts to HTML with the
// markdown source kept as the plain text alternative. Otherwise the body
// passes through literally.
func (m *Mailer) renderBody(email *Email, body string) error {
	if m.markdown == nil {
		email.HTML = body
		return nil
	}

	meta, md, err := splitFrontmatter(body)
	if err != nil {
		return err
	}
	html, err := renderMarkdown(m.markdown, md)
	if err != nil {
		return err
	}
	email.HTML = html
	email.Text = md
	if email.Subject == "" {
		email.Subject = meta.Subject
	}
	return nil
}

// mergeEnvelope fills absent message fields from form-extracted control
// values. All explicit-vs-extracted precedence lives here so it stays
// auditable in one place: extracted values never override explicit ones.
func mergeEnvelope(email *Email, env envelope) {
	if len(email.To) == 0 && env.To != "" {
		email.To = ParseAddressList(env.To)
	}
	if email.From.IsZero() && env.From != "" {
		email.From = ParseAddress(env.From)
	}
	if email.Subject == "" {
		email.Subject = env.Subject
	}
	if len(email.ReplyTo) == 0 && env.ReplyTo != "" {
		email.ReplyTo = []Address{ParseAddress(env.ReplyTo)}
	}
	if len(email.CC) == 0 && env.CC != "" {
		email.CC = ParseAddressList(env.CC)
	}
	if len(email.BCC) == 0 && env.BCC != "" {
		email.BCC = ParseAddressList(env.BCC)
	}
}
