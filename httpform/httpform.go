package httpform

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/mailform"
)

var (
	// ErrUnsupportedMediaType indicates the request body is neither
	// multipart/form-data nor application/x-www-form-urlencoded.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrBodyTooLarge indicates the submission exceeded the size limit.
	ErrBodyTooLarge = errors.New("form body too large")
)

// DefaultMaxMemory caps how many body bytes Fields reads (32 MB).
const DefaultMaxMemory int64 = 32 << 20

// Fields extracts the submitted form fields from an HTTP request in their
// original wire order. The standard ParseForm helpers collect values into
// url.Values, a map that forgets field order; the grouped email body
// depends on encounter order, so the body is walked sequentially instead.
// maxMemory limits the total bytes read; values <= 0 use DefaultMaxMemory.
func Fields(r *http.Request, maxMemory int64) ([]mailform.Field, error) {
	if maxMemory <= 0 {
		maxMemory = DefaultMaxMemory
	}

	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("parse content type: %w", err)
	}

	switch mediaType {
	case "multipart/form-data":
		boundary := params["boundary"]
		if boundary == "" {
			return nil, fmt.Errorf("%w: missing multipart boundary", ErrUnsupportedMediaType)
		}
		return multipartFields(r.Body, boundary, maxMemory)
	case "application/x-www-form-urlencoded":
		return urlencodedFields(r.Body, maxMemory)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
}

// multipartFields walks multipart parts sequentially. A part whose
// Content-Disposition carries a filename parameter is a file field, even
// when the filename is empty (an unused file input); text parts carry
// their content as the field value.
func multipartFields(body io.Reader, boundary string, maxMemory int64) ([]mailform.Field, error) {
	mr := multipart.NewReader(body, boundary)
	remaining := maxMemory

	var fields []mailform.Field
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return fields, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read multipart body: %w", err)
		}

		_, cdParams, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
		if err != nil {
			part.Close()
			return nil, fmt.Errorf("read multipart body: %w", err)
		}

		content, err := readLimited(part, &remaining)
		part.Close()
		if err != nil {
			return nil, err
		}

		filename, isFile := cdParams["filename"]
		if isFile {
			fields = append(fields, mailform.Field{
				Key: cdParams["name"],
				File: &mailform.FileInput{
					Filename:    filename,
					ContentType: part.Header.Get("Content-Type"),
					Content:     content,
				},
			})
			continue
		}
		fields = append(fields, mailform.Field{
			Key:   cdParams["name"],
			Value: string(content),
		})
	}
}

// urlencodedFields parses an urlencoded body pair by pair, preserving
// order. Undecodable keys or values are skipped the way url.ParseQuery
// skips them.
func urlencodedFields(body io.Reader, maxMemory int64) ([]mailform.Field, error) {
	remaining := maxMemory
	raw, err := readLimited(body, &remaining)
	if err != nil {
		return nil, err
	}

	var fields []mailform.Field
	for _, pair := range strings.Split(string(raw), "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}
		fields = append(fields, mailform.Field{Key: key, Value: value})
	}
	return fields, nil
}

// readLimited reads all of r, charging against the shared remaining budget.
func readLimited(r io.Reader, remaining *int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, *remaining+1))
	if err != nil {
		return nil, fmt.Errorf("read form body: %w", err)
	}
	if int64(len(data)) > *remaining {
		return nil, ErrBodyTooLarge
	}
	*remaining -= int64(len(data))
	return data, nil
}
