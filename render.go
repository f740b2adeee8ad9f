package mailform

import (
	"html"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LabelFunc transforms a raw section or field label for display.
type LabelFunc func(string) string

// LabelPolicy controls how one kind of label (section or field) is
// formatted. The zero value applies the default title-casing transform;
// Disabled renders labels verbatim; Custom applies a caller function.
type LabelPolicy struct {
	custom   LabelFunc
	disabled bool
}

// CustomLabels returns a policy applying fn to every label.
// A nil fn behaves like the default policy.
func CustomLabels(fn LabelFunc) LabelPolicy {
	return LabelPolicy{custom: fn}
}

// RawLabels returns a policy that renders labels verbatim.
func RawLabels() LabelPolicy {
	return LabelPolicy{disabled: true}
}

func (p LabelPolicy) apply(label string) string {
	switch {
	case p.disabled:
		return label
	case p.custom != nil:
		return p.custom(label)
	default:
		return titleCase(label)
	}
}

// Formatting is the label-formatting policy for a rendered form table,
// set independently per label kind. The zero value title-cases both.
type Formatting struct {
	Section LabelPolicy
	Field   LabelPolicy
}

// NoFormatting disables label formatting for both sections and fields.
func NoFormatting() Formatting {
	return Formatting{Section: RawLabels(), Field: RawLabels()}
}

// titleCase is the default label transform: underscores and hyphens become
// spaces, then each word is capitalized without lowercasing the rest
// ("reply_to" -> "Reply To"). A fresh Caser per call: cases.Caser carries
// transform state and is not safe for concurrent use.
func titleCase(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return cases.Title(language.English, cases.NoLower).String(s)
}

// Inline styles for the rendered table. Email clients ignore stylesheets,
// so everything is carried on the elements themselves.
const (
	styleHeaderCell = "text-align:left;padding:8px 12px;border-bottom:1px solid #dddddd"
	styleLabelCell  = "text-align:left;vertical-align:top;padding:4px 12px"
	styleValueCell  = "text-align:left;padding:4px 12px"
)

// renderTable renders grouped form data into a single two-column HTML
// table. Sections iterate in insertion order; a non-"general" section with
// at least one field gets a full-width header row before its fields and a
// spacer row after them. The "general" section renders bare field rows at
// the position it was first encountered. Output is deterministic: the same
// data and policy always produce byte-identical HTML.
func renderTable(data *formData, f Formatting) string {
	var b strings.Builder
	b.WriteString(`<table border="0" cellpadding="0" cellspacing="0">`)

	for _, sec := range data.sections {
		if len(sec.fields) == 0 {
			continue
		}
		general := sec.name == generalSection
		if !general {
			b.WriteString(`<tr><th colspan="2" style="` + styleHeaderCell + `">`)
			b.WriteString(html.EscapeString(f.Section.apply(sec.name)))
			b.WriteString(`</th></tr>`)
		}
		for _, field := range sec.fields {
			b.WriteString(`<tr><td style="` + styleLabelCell + `">`)
			b.WriteString(html.EscapeString(f.Field.apply(field.label)))
			b.WriteString(`</td><td style="` + styleValueCell + `">`)
			writeValues(&b, field.values)
			b.WriteString(`</td></tr>`)
		}
		if !general {
			b.WriteString(`<tr><td colspan="2">&nbsp;</td></tr>`)
		}
	}

	b.WriteString(`</table>`)
	return b.String()
}

// writeValues renders a single value as plain text and a multi-value field
// as an unordered list, one item per value, in encounter order.
func writeValues(b *strings.Builder, values []string) {
	if len(values) == 1 {
		b.WriteString(html.EscapeString(values[0]))
		return
	}
	b.WriteString(`<ul style="margin:0;padding-left:16px">`)
	for _, v := range values {
		b.WriteString(`<li>`)
		b.WriteString(html.EscapeString(v))
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
}
