package resend

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/mailform"
)

// Sender implements mailform.Sender using the Resend API.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) *Sender {
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}
}

// Send implements mailform.Sender.
func (s *Sender) Send(ctx context.Context, email *mailform.Email) error {
	from := email.From.String()
	if from == "" {
		from = mailform.Address{Email: s.config.SenderEmail, Name: s.config.SenderName}.String()
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      addressStrings(email.To),
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: joinAddresses(email.ReplyTo),
		Cc:      addressStrings(email.CC),
		Bcc:     addressStrings(email.BCC),
	}

	if len(email.Attachments) > 0 {
		attachments, err := convertAttachments(email.Attachments)
		if err != nil {
			return fmt.Errorf("resend: %w", err)
		}
		req.Attachments = attachments
	}

	_, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}

	return nil
}

func addressStrings(addrs []mailform.Address) []string {
	if len(addrs) == 0 {
		return nil
	}
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}

// joinAddresses flattens a reply-to list into the single header value the
// Resend API accepts.
func joinAddresses(addrs []mailform.Address) string {
	return strings.Join(addressStrings(addrs), ", ")
}

// convertAttachments decodes the provider-neutral base64 content back into
// the raw bytes the SDK expects.
func convertAttachments(attachments []mailform.Attachment) ([]*resend.Attachment, error) {
	result := make([]*resend.Attachment, len(attachments))
	for i, a := range attachments {
		content, err := base64.StdEncoding.DecodeString(a.Content)
		if err != nil {
			return nil, fmt.Errorf("decode attachment %q: %w", a.Filename, err)
		}
		result[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     content,
			ContentType: a.ContentType,
		}
	}
	return result, nil
}
