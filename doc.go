// Package mailform turns flexible send requests — including raw browser
// form submissions — into provider-neutral emails and hands them to a
// pluggable transport.
//
// The pipeline normalizes heterogeneous address inputs, groups submitted
// form fields into named sections, renders the groups into a deterministic
// HTML table, and assembles a finished Email. Delivery itself is delegated
// to a Sender implementation; the built-in Resend transport lives in the
// resend subpackage.
//
// # Usage
//
// Sending a contact form submission:
//
//	import (
//		"context"
//		"os"
//
//		"github.com/dmitrymomot/mailform"
//		"github.com/dmitrymomot/mailform/resend"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		sender := resend.New(resend.Config{
//			APIKey:      os.Getenv("RESEND_API_KEY"),
//			SenderEmail: "forms@example.com",
//			SenderName:  "Contact Form",
//		})
//
//		m := mailform.New(sender, mailform.Config{
//			DefaultTo:       "inbox@example.com",
//			FallbackSubject: "New form submission",
//		})
//
//		err := m.Send(ctx, mailform.Message{
//			Fields: []mailform.Field{
//				{Key: "contact:name", Value: "Jo"},
//				{Key: "contact:email", Value: "jo@example.com"},
//				{Key: "message", Value: "Hello!"},
//			},
//		})
//		if err != nil {
//			panic(err)
//		}
//	}
//
// # Form submissions
//
// A Message with Fields set is treated as a form submission. Keys split on
// the section delimiter (default ":") into section and field label, so
// "contact:email" renders under a "Contact" heading; keys without the
// delimiter land in an implicit general group. Repeated labels within one
// section accumulate into a list. Six reserved keys configure the envelope
// instead of appearing in the body: _to, _from, _subject, _reply_to, _cc
// and _bcc. Their values may be base64-encoded (common for hidden inputs)
// and are decoded transparently. File inputs become base64 attachments;
// empty or unnamed file inputs are dropped.
//
// Envelope precedence is fixed: explicit Message fields win, form control
// fields fill gaps, configured defaults fill what remains. A message that
// still lacks a recipient or sender fails with ErrNoRecipient or
// ErrNoSender before the transport is contacted.
//
// # Addresses
//
// Address inputs are normalized once at the boundary via ParseAddress and
// ParseAddressList, which understand the "Name <addr>" display-name
// convention and comma-separated lists. No RFC 5322 validation is applied
// beyond that; malformed input passes through for the transport to reject.
//
// # Label formatting
//
// Rendered section and field labels are title-cased by default. Formatting
// accepts a per-kind policy: CustomLabels applies a caller function,
// RawLabels renders labels verbatim, and NoFormatting disables both kinds
// at once.
//
// # Custom transports
//
// Implement the Sender interface to deliver through another provider:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, email *mailform.Email) error {
//		// deliver via your provider's API
//		return nil
//	}
package mailform
