package mailform

import "fmt"

// Address is a single email address with an optional display name.
// No syntactic validation is applied beyond what ParseAddress extracts;
// malformed addresses pass through as-is and are the transport's problem.
type Address struct {
	Email string // bare address, e.g. "jo@example.com"
	Name  string // optional display name
}

// String formats the address in RFC 5322 style.
// Returns "Name <email>" if a name is set, otherwise just the email.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool {
	return a.Email == "" && a.Name == ""
}

// Attachment is a provider-neutral file attachment.
// Content holds the full file bytes encoded as standard base64.
type Attachment struct {
	Filename    string // original filename
	ContentType string // MIME type (e.g. "application/pdf")
	Content     string // base64-encoded file content
}

// Email is a fully-prepared, provider-neutral message ready for a Sender.
// From and To are always populated before the message reaches a transport.
type Email struct {
	From        Address
	To          []Address
	ReplyTo     []Address
	CC          []Address
	BCC         []Address
	Subject     string
	HTML        string // HTML body content
	Text        string // plain text alternative (optional)
	Attachments []Attachment
}

// Field is one submitted form field in encounter order.
// Exactly one of Value or File is meaningful: File non-nil marks a file
// upload, otherwise Value carries the submitted text.
type Field struct {
	Key   string
	Value string
	File  *FileInput
}

// FileInput is a raw uploaded file. Content is fully materialized in
// memory; target use cases are small form attachments.
type FileInput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is the caller-supplied send request. All fields are optional;
// missing envelope values are filled from form control fields and then
// from the Mailer's configured defaults.
type Message struct {
	From        Address
	To          []Address
	ReplyTo     []Address
	CC          []Address
	BCC         []Address
	Subject     string
	Body        string     // literal body; ignored when Fields is set
	Fields      []Field    // form submission, ordered; triggers table rendering
	Formatting  Formatting // label formatting policy for the rendered table
	Attachments []Attachment
}
