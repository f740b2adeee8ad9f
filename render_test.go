package mailform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderTable_Deterministic(t *testing.T) {
	t.Parallel()

	p := parseForm([]Field{
		{Key: "contact:name", Value: "Jo"},
		{Key: "message", Value: "Hello"},
		{Key: "contact:tag", Value: "a"},
		{Key: "contact:tag", Value: "b"},
	}, DefaultDelimiter, nil)

	first := renderTable(p.data, Formatting{})
	for range 5 {
		require.Equal(t, first, renderTable(p.data, Formatting{}))
	}
}

func TestRenderTable_SectionHeaderAndSpacer(t *testing.T) {
	t.Parallel()

	p := parseForm([]Field{
		{Key: "contact:name", Value: "Jo"},
	}, DefaultDelimiter, nil)

	out := renderTable(p.data, Formatting{})

	header := strings.Index(out, ">Contact</th>")
	row := strings.Index(out, ">Name</td>")
	spacer := strings.Index(out, `<tr><td colspan="2">&nbsp;</td></tr>`)
	require.Positive(t, header)
	require.Greater(t, row, header, "header row must precede field rows")
	require.Greater(t, spacer, row, "spacer row must follow field rows")
	require.Contains(t, out, "border-bottom")
}

func TestRenderTable_GeneralSectionHasNoHeader(t *testing.T) {
	t.Parallel()

	p := parseForm([]Field{
		{Key: "message", Value: "Hello"},
	}, DefaultDelimiter, nil)

	out := renderTable(p.data, Formatting{})

	require.NotContains(t, out, "<th")
	require.NotContains(t, out, "General")
	require.Contains(t, out, ">Message</td>")
	require.NotContains(t, out, "&nbsp;")
}

func TestRenderTable_GeneralInterleavedAtFirstEncounter(t *testing.T) {
	t.Parallel()

	p := parseForm([]Field{
		{Key: "contact:name", Value: "Jo"},
		{Key: "message", Value: "Hello"},
	}, DefaultDelimiter, nil)

	out := renderTable(p.data, Formatting{})

	require.Greater(t, strings.Index(out, ">Message</td>"), strings.Index(out, ">Contact</th>"))
}

func TestRenderTable_MultiValueRendersAsList(t *testing.T) {
	t.Parallel()

	p := parseForm([]Field{
		{Key: "order:topping", Value: "cheese"},
		{Key: "order:topping", Value: "olives"},
	}, DefaultDelimiter, nil)

	out := renderTable(p.data, Formatting{})

	require.Contains(t, out, "<ul")
	olives := strings.Index(out, "<li>olives</li>")
	cheese := strings.Index(out, "<li>cheese</li>")
	require.Positive(t, cheese)
	require.Greater(t, olives, cheese, "list items keep encounter order")
}

func TestRenderTable_SingleValueRendersAsText(t *testing.T) {
	t.Parallel()

	p := parseForm([]Field{
		{Key: "name", Value: "Jo"},
	}, DefaultDelimiter, nil)

	out := renderTable(p.data, Formatting{})

	require.NotContains(t, out, "<ul")
	require.Contains(t, out, ">Jo</td>")
}

func TestRenderTable_EscapesValues(t *testing.T) {
	t.Parallel()

	p := parseForm([]Field{
		{Key: "note", Value: `<b>"bold"</b>`},
	}, DefaultDelimiter, nil)

	out := renderTable(p.data, Formatting{})

	require.NotContains(t, out, "<b>")
	require.Contains(t, out, "&lt;b&gt;")
}

func TestRenderTable_SkipsEmptySections(t *testing.T) {
	t.Parallel()

	data := newFormData()
	data.section("empty")
	data.section("filled").add("name", "Jo")

	out := renderTable(data, Formatting{})

	require.NotContains(t, out, "Empty")
	require.Contains(t, out, ">Filled</th>")
}

func TestRenderTable_DefaultTitleCasing(t *testing.T) {
	t.Parallel()

	p := parseForm([]Field{
		{Key: "contact:reply_to", Value: "r@x.com"},
		{Key: "contact:home-page", Value: "https://x.com"},
	}, DefaultDelimiter, nil)

	out := renderTable(p.data, Formatting{})

	require.Contains(t, out, ">Reply To</td>")
	require.Contains(t, out, ">Home Page</td>")
}

func TestRenderTable_RawLabels(t *testing.T) {
	t.Parallel()

	p := parseForm([]Field{
		{Key: "contact:reply_to", Value: "r@x.com"},
	}, DefaultDelimiter, nil)

	out := renderTable(p.data, NoFormatting())

	require.Contains(t, out, ">contact</th>")
	require.Contains(t, out, ">reply_to</td>")
}

func TestRenderTable_CustomLabels(t *testing.T) {
	t.Parallel()

	p := parseForm([]Field{
		{Key: "contact:name", Value: "Jo"},
	}, DefaultDelimiter, nil)

	out := renderTable(p.data, Formatting{
		Section: CustomLabels(strings.ToUpper),
		Field:   RawLabels(),
	})

	require.Contains(t, out, ">CONTACT</th>")
	require.Contains(t, out, ">name</td>")
}

func TestRenderTable_SingleTwoColumnTable(t *testing.T) {
	t.Parallel()

	p := parseForm([]Field{
		{Key: "contact:name", Value: "Jo"},
		{Key: "order:item", Value: "Widget"},
	}, DefaultDelimiter, nil)

	out := renderTable(p.data, Formatting{})

	require.Equal(t, 1, strings.Count(out, "<table"))
	require.True(t, strings.HasPrefix(out, "<table"))
	require.True(t, strings.HasSuffix(out, "</table>"))
}
