package mailform

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAttachment_EncodesContent(t *testing.T) {
	t.Parallel()

	content := []byte("hello attachment")
	att, err := NewAttachment("notes.txt", "text/plain", bytes.NewReader(content))

	require.NoError(t, err)
	require.Equal(t, "notes.txt", att.Filename)
	require.Equal(t, "text/plain", att.ContentType)

	decoded, err := base64.StdEncoding.DecodeString(att.Content)
	require.NoError(t, err)
	require.Equal(t, content, decoded)
}

func TestNewAttachment_SniffsMissingContentType(t *testing.T) {
	t.Parallel()

	// PNG magic bytes.
	content := append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 32)...)
	att, err := NewAttachment("pic.png", "", bytes.NewReader(content))

	require.NoError(t, err)
	require.Equal(t, "image/png", att.ContentType)
}

func TestNewAttachment_EmptyContentFallsBackToOctetStream(t *testing.T) {
	t.Parallel()

	att, err := NewAttachment("empty.bin", "", strings.NewReader(""))

	require.NoError(t, err)
	require.Equal(t, "application/octet-stream", att.ContentType)
	require.Empty(t, att.Content)
}

func TestEncodeFiles_PreservesOrder(t *testing.T) {
	t.Parallel()

	files := []FileInput{
		{Filename: "a.txt", ContentType: "text/plain", Content: []byte("a")},
		{Filename: "b.txt", ContentType: "text/plain", Content: []byte("b")},
	}

	atts := encodeFiles(files)

	require.Len(t, atts, 2)
	require.Equal(t, "a.txt", atts[0].Filename)
	require.Equal(t, "b.txt", atts[1].Filename)
}

func TestEncodeFiles_Empty(t *testing.T) {
	t.Parallel()

	require.Nil(t, encodeFiles(nil))
}
