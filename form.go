package mailform

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// DefaultDelimiter separates the section name from the field label in a
// form key, e.g. "contact:email".
const DefaultDelimiter = ":"

// generalSection collects fields whose key carries no section delimiter.
const generalSection = "general"

// Reserved control keys. Their values configure the envelope instead of
// contributing to the rendered body. Exact, case-sensitive match.
const (
	keyTo      = "_to"
	keyFrom    = "_from"
	keySubject = "_subject"
	keyReplyTo = "_reply_to"
	keyCC      = "_cc"
	keyBCC     = "_bcc"
)

// envelope holds the raw control-field values extracted from a submission.
type envelope struct {
	To      string
	From    string
	Subject string
	ReplyTo string
	CC      string
	BCC     string
}

// formData is the grouped form structure: sections in first-encounter
// order, each holding its fields in first-encounter order. Rendering order
// is a correctness requirement, so this is never a plain map.
type formData struct {
	sections []*section
	index    map[string]*section
}

type section struct {
	name   string
	fields []*fieldValues
	index  map[string]*fieldValues
}

// fieldValues accumulates one or more values for a field label.
// A repeated label within the same section appends here in encounter order.
type fieldValues struct {
	label  string
	values []string
}

func newFormData() *formData {
	return &formData{index: make(map[string]*section)}
}

func (d *formData) section(name string) *section {
	if s, ok := d.index[name]; ok {
		return s
	}
	s := &section{name: name, index: make(map[string]*fieldValues)}
	d.sections = append(d.sections, s)
	d.index[name] = s
	return s
}

func (s *section) add(label, value string) {
	if f, ok := s.index[label]; ok {
		f.values = append(f.values, value)
		return
	}
	f := &fieldValues{label: label, values: []string{value}}
	s.fields = append(s.fields, f)
	s.index[label] = f
}

// parsedForm is the result of scanning a submission: extracted envelope
// options, the grouped content fields, and collected file inputs.
type parsedForm struct {
	env   envelope
	data  *formData
	files []FileInput
}

// parseForm scans submitted fields in encounter order, separating reserved
// control fields from content fields and grouping the latter by delimiter.
// File inputs with no name or zero bytes are treated as empty/unused form
// controls and dropped. An optional sanitizer strips markup from submitted
// text values before grouping.
func parseForm(fields []Field, delimiter string, sanitizer *bluemonday.Policy) *parsedForm {
	p := &parsedForm{data: newFormData()}

	for _, f := range fields {
		if f.File != nil {
			if f.File.Filename == "" || len(f.File.Content) == 0 {
				continue
			}
			p.files = append(p.files, *f.File)
			continue
		}

		if dst := p.env.control(f.Key); dst != nil {
			*dst = decodeIfBase64(f.Value)
			continue
		}

		value := f.Value
		if sanitizer != nil {
			value = sanitizer.Sanitize(value)
		}

		sec, label := generalSection, f.Key
		if before, after, ok := strings.Cut(f.Key, delimiter); ok {
			sec, label = before, after
		}
		p.data.section(sec).add(label, value)
	}

	return p
}

// control maps a reserved key to its envelope slot, or nil for content keys.
func (e *envelope) control(key string) *string {
	switch key {
	case keyTo:
		return &e.To
	case keyFrom:
		return &e.From
	case keySubject:
		return &e.Subject
	case keyReplyTo:
		return &e.ReplyTo
	case keyCC:
		return &e.CC
	case keyBCC:
		return &e.BCC
	}
	return nil
}
