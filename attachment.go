package mailform

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
)

const (
	mimeOctetStream    = "application/octet-stream"
	mimeDetectionBytes = 512 // http.DetectContentType needs up to 512 bytes
)

// NewAttachment reads the full content of r, base64-encodes it and pairs it
// with the given filename and MIME type. An empty contentType is sniffed
// from the content's magic bytes, falling back to application/octet-stream.
func NewAttachment(filename, contentType string, r io.Reader) (Attachment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Attachment{}, fmt.Errorf("read attachment %q: %w", filename, err)
	}
	return newAttachmentBytes(filename, contentType, data), nil
}

func newAttachmentBytes(filename, contentType string, data []byte) Attachment {
	if contentType == "" {
		contentType = detectMIME(data)
	}
	return Attachment{
		Filename:    filename,
		ContentType: contentType,
		Content:     base64.StdEncoding.EncodeToString(data),
	}
}

// encodeFiles converts collected file inputs into attachments,
// preserving order.
func encodeFiles(files []FileInput) []Attachment {
	if len(files) == 0 {
		return nil
	}
	out := make([]Attachment, len(files))
	for i, f := range files {
		out[i] = newAttachmentBytes(f.Filename, f.ContentType, f.Content)
	}
	return out
}

// detectMIME detects the MIME type of content by its magic bytes.
// Returns "application/octet-stream" for empty content.
func detectMIME(data []byte) string {
	if len(data) == 0 {
		return mimeOctetStream
	}
	if len(data) > mimeDetectionBytes {
		data = data[:mimeDetectionBytes]
	}
	return http.DetectContentType(data)
}
